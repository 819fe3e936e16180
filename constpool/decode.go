package constpool

import (
	"math"

	"github.com/javabin/jclass/errors"
	"github.com/javabin/jclass/internal/bigendian"
)

// Decode reads constant_pool_count-1 slots from the cursor and returns the
// fully built pool. The pool is complete before any index resolution
// happens: entries may reference each other out of positional order.
func Decode(r *bigendian.Reader, count uint16) (*Pool, error) {
	if count == 0 {
		return nil, errors.InvalidData(errors.PhasePool, "constant_pool_count is zero")
	}

	b := newBuilder(count)
	for b.more() {
		item, err := readItem(r, b.index())
		if err != nil {
			return nil, err
		}
		b.push(item)
	}

	return b.pool(), nil
}

// eofErr reports a stream that died mid-field, tagging the cause with the
// byte offset the cursor had reached.
func eofErr(r *bigendian.Reader, what string, err error) *errors.Error {
	return errors.UnexpectedEOF(errors.PhasePool, what, r.WrapError(what, err))
}

// builder constructs the pool slot by slot, tracking the declared index of
// the next slot. Pushing a Long or Double also claims the following slot
// with an Empty placeholder so later indices stay aligned with the wire.
type builder struct {
	items []Item
	next  int // declared index of the next slot to fill, starts at 1
	count int // declared constant_pool_count
}

func newBuilder(count uint16) *builder {
	return &builder{
		items: make([]Item, 0, int(count)-1),
		next:  1,
		count: int(count),
	}
}

func (b *builder) more() bool {
	return b.next < b.count
}

func (b *builder) index() int {
	return b.next
}

func (b *builder) push(item Item) {
	b.items = append(b.items, item)
	b.next++
	if t := item.Tag(); t == TagLong || t == TagDouble {
		b.items = append(b.items, &Empty{})
		b.next++
	}
}

func (b *builder) pool() *Pool {
	return &Pool{items: b.items}
}

// readItem decodes one constant pool item: a tag byte followed by the
// tag-specific payload. Unknown tags are a hard failure; this format has no
// tag that is safe to skip.
func readItem(r *bigendian.Reader, index int) (Item, error) {
	tag, err := r.U1()
	if err != nil {
		return nil, eofErr(r, "tag byte", err)
	}

	switch Tag(tag) {
	case TagUtf8:
		length, err := r.U2()
		if err != nil {
			return nil, eofErr(r, "Utf8 length", err)
		}
		raw, err := r.Bytes(int(length))
		if err != nil {
			return nil, eofErr(r, "Utf8 bytes", err)
		}
		value, uerr := decodeModifiedUTF8(raw)
		if uerr != nil {
			preview := raw
			if len(preview) > 32 {
				preview = preview[:32]
			}
			return nil, errors.New(errors.PhasePool, errors.KindInvalidUTF8).
				Index(index).
				Detail("invalid modified UTF-8 sequence: %x", preview).
				Cause(uerr).
				Build()
		}
		return &Utf8{Value: value}, nil

	case TagInteger:
		bits, err := r.U4()
		if err != nil {
			return nil, eofErr(r, "Integer bytes", err)
		}
		return &Integer{Value: int32(bits)}, nil

	case TagFloat:
		bits, err := r.U4()
		if err != nil {
			return nil, eofErr(r, "Float bytes", err)
		}
		return &Float{Value: math.Float32frombits(bits)}, nil

	case TagLong:
		bits, err := r.U8()
		if err != nil {
			return nil, eofErr(r, "Long bytes", err)
		}
		return &Long{Value: int64(bits)}, nil

	case TagDouble:
		bits, err := r.U8()
		if err != nil {
			return nil, eofErr(r, "Double bytes", err)
		}
		return &Double{Value: math.Float64frombits(bits)}, nil

	case TagClass:
		nameIndex, err := r.U2()
		if err != nil {
			return nil, eofErr(r, "Class name_index", err)
		}
		return &Class{NameIndex: nameIndex}, nil

	case TagString:
		stringIndex, err := r.U2()
		if err != nil {
			return nil, eofErr(r, "String string_index", err)
		}
		return &String{StringIndex: stringIndex}, nil

	case TagFieldRef:
		classIndex, natIndex, err := readRefIndices(r, "Fieldref")
		if err != nil {
			return nil, err
		}
		return &FieldRef{ClassIndex: classIndex, NameAndTypeIndex: natIndex}, nil

	case TagMethodRef:
		classIndex, natIndex, err := readRefIndices(r, "Methodref")
		if err != nil {
			return nil, err
		}
		return &MethodRef{ClassIndex: classIndex, NameAndTypeIndex: natIndex}, nil

	case TagInterfaceMethodRef:
		classIndex, natIndex, err := readRefIndices(r, "InterfaceMethodref")
		if err != nil {
			return nil, err
		}
		return &InterfaceMethodRef{ClassIndex: classIndex, NameAndTypeIndex: natIndex}, nil

	case TagNameAndType:
		nameIndex, err := r.U2()
		if err != nil {
			return nil, eofErr(r, "NameAndType name_index", err)
		}
		descIndex, err := r.U2()
		if err != nil {
			return nil, eofErr(r, "NameAndType descriptor_index", err)
		}
		return &NameAndType{NameIndex: nameIndex, DescriptorIndex: descIndex}, nil

	case TagMethodHandle:
		kind, err := r.U1()
		if err != nil {
			return nil, eofErr(r, "MethodHandle reference_kind", err)
		}
		refIndex, err := r.U2()
		if err != nil {
			return nil, eofErr(r, "MethodHandle reference_index", err)
		}
		return &MethodHandle{ReferenceKind: kind, ReferenceIndex: refIndex}, nil

	case TagMethodType:
		descIndex, err := r.U2()
		if err != nil {
			return nil, eofErr(r, "MethodType descriptor_index", err)
		}
		return &MethodType{DescriptorIndex: descIndex}, nil

	case TagDynamic:
		bootstrapIndex, natIndex, err := readDynamicIndices(r, "Dynamic")
		if err != nil {
			return nil, err
		}
		return &Dynamic{BootstrapMethodAttrIndex: bootstrapIndex, NameAndTypeIndex: natIndex}, nil

	case TagInvokeDynamic:
		bootstrapIndex, natIndex, err := readDynamicIndices(r, "InvokeDynamic")
		if err != nil {
			return nil, err
		}
		return &InvokeDynamic{BootstrapMethodAttrIndex: bootstrapIndex, NameAndTypeIndex: natIndex}, nil

	default:
		return nil, errors.UnknownTag(index, tag)
	}
}

func readRefIndices(r *bigendian.Reader, what string) (uint16, uint16, error) {
	classIndex, err := r.U2()
	if err != nil {
		return 0, 0, eofErr(r, what+" class_index", err)
	}
	natIndex, err := r.U2()
	if err != nil {
		return 0, 0, eofErr(r, what+" name_and_type_index", err)
	}
	return classIndex, natIndex, nil
}

func readDynamicIndices(r *bigendian.Reader, what string) (uint16, uint16, error) {
	bootstrapIndex, err := r.U2()
	if err != nil {
		return 0, 0, eofErr(r, what+" bootstrap_method_attr_index", err)
	}
	natIndex, err := r.U2()
	if err != nil {
		return 0, 0, eofErr(r, what+" name_and_type_index", err)
	}
	return bootstrapIndex, natIndex, nil
}
