package constpool

// Item is implemented by every constant pool variant. Items are immutable
// after decoding; the pool hands them out as shared pointers, so the same
// decoded entry can back any number of cross-references without copying.
type Item interface {
	Tag() Tag
}

// Utf8 holds a decoded modified UTF-8 string (tag 1).
type Utf8 struct {
	Value string
}

func (*Utf8) Tag() Tag { return TagUtf8 }

// Integer holds a 32-bit integer constant (tag 3).
type Integer struct {
	Value int32
}

func (*Integer) Tag() Tag { return TagInteger }

// Float holds a 32-bit IEEE 754 constant (tag 4).
type Float struct {
	Value float32
}

func (*Float) Tag() Tag { return TagFloat }

// Long holds a 64-bit integer constant (tag 5). It occupies two pool slots;
// the slot after it is an Empty placeholder.
type Long struct {
	Value int64
}

func (*Long) Tag() Tag { return TagLong }

// Double holds a 64-bit IEEE 754 constant (tag 6). It occupies two pool
// slots; the slot after it is an Empty placeholder.
type Double struct {
	Value float64
}

func (*Double) Tag() Tag { return TagDouble }

// Class references the Utf8 entry holding a class name (tag 7).
type Class struct {
	NameIndex uint16
}

func (*Class) Tag() Tag { return TagClass }

// String references the Utf8 entry holding a string literal (tag 8).
type String struct {
	StringIndex uint16
}

func (*String) Tag() Tag { return TagString }

// FieldRef references a field through a Class and a NameAndType (tag 9).
type FieldRef struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (*FieldRef) Tag() Tag { return TagFieldRef }

// MethodRef references a method through a Class and a NameAndType (tag 10).
type MethodRef struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (*MethodRef) Tag() Tag { return TagMethodRef }

// InterfaceMethodRef references an interface method (tag 11).
type InterfaceMethodRef struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (*InterfaceMethodRef) Tag() Tag { return TagInterfaceMethodRef }

// NameAndType pairs a name with a descriptor, both Utf8 indices (tag 12).
type NameAndType struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (*NameAndType) Tag() Tag { return TagNameAndType }

// MethodHandle describes a method handle constant (tag 15). ReferenceIndex
// names a FieldRef, MethodRef or InterfaceMethodRef entry depending on
// ReferenceKind.
type MethodHandle struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

func (*MethodHandle) Tag() Tag { return TagMethodHandle }

// MethodType references the Utf8 entry holding a method descriptor (tag 16).
type MethodType struct {
	DescriptorIndex uint16
}

func (*MethodType) Tag() Tag { return TagMethodType }

// Dynamic describes a dynamically-computed constant (tag 17).
type Dynamic struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (*Dynamic) Tag() Tag { return TagDynamic }

// InvokeDynamic describes an invokedynamic call site (tag 18).
type InvokeDynamic struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (*InvokeDynamic) Tag() Tag { return TagInvokeDynamic }

// Empty is the synthetic placeholder occupying the second slot of a Long or
// Double entry. Any index resolving to it is invalid.
type Empty struct{}

func (*Empty) Tag() Tag { return TagEmpty }
