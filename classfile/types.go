package classfile

import (
	"github.com/javabin/jclass/constpool"
)

// ClassFile is the decoded form of one .class file. It is built in a single
// pass by Decode and immutable afterwards; there is no update or
// re-serialization API.
type ClassFile struct {
	Magic        uint32
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool *constpool.Pool
	AccessFlags  uint16
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []Field
	Methods      []Method
	Attributes   []Attribute
}

// Field is a field_info structure. Name and Descriptor are resolved once at
// decode time and shared with the constant pool.
type Field struct {
	AccessFlags uint16
	Name        *constpool.Utf8
	Descriptor  *constpool.Utf8
	Attributes  []Attribute
}

// Method is a method_info structure. It has the same wire shape as Field;
// the two are distinct types so downstream consumers cannot mix them up.
type Method struct {
	AccessFlags uint16
	Name        *constpool.Utf8
	Descriptor  *constpool.Utf8
	Attributes  []Attribute
}

// Code returns the method's Code attribute, or nil for methods without one
// (abstract and native methods).
func (m *Method) Code() *CodeAttribute {
	for _, attr := range m.Attributes {
		if code, ok := attr.(*CodeAttribute); ok {
			return code
		}
	}
	return nil
}

// Attribute is implemented by every decoded attribute. Exactly one kind is
// recognized structurally (Code); everything else is carried as a
// RawAttribute. Adding a recognized kind is a pure extension: a new type
// plus a dispatch arm in the attribute decoder.
type Attribute interface {
	AttributeName() string
}

// RawAttribute is an attribute whose body format this decoder does not
// interpret: the resolved name plus the body bytes exactly as declared.
type RawAttribute struct {
	Name *constpool.Utf8
	Data []byte
}

func (a *RawAttribute) AttributeName() string { return a.Name.Value }

// CodeAttribute is a method body: operand stack and local sizes, raw
// instruction bytes (instruction semantics are out of scope here), the
// exception handler table, and nested attributes.
type CodeAttribute struct {
	Name           *constpool.Utf8
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionHandler
	Attributes     []Attribute
}

func (a *CodeAttribute) AttributeName() string { return a.Name.Value }

// ExceptionHandler is one exception_table record. CatchType 0 means
// catch-all; a nonzero CatchType names a Class entry, which consumers
// resolve when they need it.
type ExceptionHandler struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16
}

// CatchAll reports whether the handler catches every throwable type.
func (h ExceptionHandler) CatchAll() bool {
	return h.CatchType == 0
}

// ClassName resolves the name of this class through the constant pool.
func (cf *ClassFile) ClassName() (string, error) {
	return cf.ConstantPool.ClassName(cf.ThisClass)
}

// SuperClassName resolves the name of the superclass. It returns "" for
// java/lang/Object, the only class with super_class 0.
func (cf *ClassFile) SuperClassName() (string, error) {
	if cf.SuperClass == 0 {
		return "", nil
	}
	return cf.ConstantPool.ClassName(cf.SuperClass)
}

// InterfaceNames resolves the names of all direct superinterfaces.
func (cf *ClassFile) InterfaceNames() ([]string, error) {
	names := make([]string, len(cf.Interfaces))
	for i, index := range cf.Interfaces {
		name, err := cf.ConstantPool.ClassName(index)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// MethodByName returns the first method with the given name. Absence is a
// normal outcome, not an error.
func (cf *ClassFile) MethodByName(name string) (*Method, bool) {
	for i := range cf.Methods {
		if cf.Methods[i].Name.Value == name {
			return &cf.Methods[i], true
		}
	}
	return nil, false
}

// Method returns the method with the given name and descriptor.
func (cf *ClassFile) Method(name, descriptor string) (*Method, bool) {
	for i := range cf.Methods {
		if cf.Methods[i].Name.Value == name && cf.Methods[i].Descriptor.Value == descriptor {
			return &cf.Methods[i], true
		}
	}
	return nil, false
}

// FieldByName returns the first field with the given name.
func (cf *ClassFile) FieldByName(name string) (*Field, bool) {
	for i := range cf.Fields {
		if cf.Fields[i].Name.Value == name {
			return &cf.Fields[i], true
		}
	}
	return nil, false
}
