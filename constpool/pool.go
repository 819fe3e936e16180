package constpool

import (
	"github.com/javabin/jclass/errors"
)

// Pool is the class file's constant pool. It is built once by Decode and
// read-only afterwards. Wire indices are 1-based: declared index i lives at
// position i-1, and declared index 0 is always invalid.
type Pool struct {
	items []Item
}

// Len returns the number of slots, including Empty placeholders. For a file
// with constant_pool_count = n this is n-1.
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns the pool's slots in declared order. The returned slice is
// shared with the pool and must not be modified.
func (p *Pool) Items() []Item {
	return p.items
}

// Item returns the slot at the given declared index with bounds checking
// only; callers that expect a specific variant should use the typed
// accessors instead.
func (p *Pool) Item(index uint16) (Item, error) {
	return p.entry(index)
}

// entry is the single choke point for index arithmetic: declared indices
// are 1-based, so slot lookup shifts by one.
func (p *Pool) entry(index uint16) (Item, error) {
	if index == 0 || int(index) > len(p.items) {
		return nil, errors.IndexOutOfBounds(errors.PhaseResolve, int(index), len(p.items))
	}
	return p.items[index-1], nil
}

// Typed accessors. Each names the variant it expects; a mismatch (including
// hitting the Empty slot after a Long or Double) is a decode-time contract
// violation, never a silently wrong value.

// Utf8 resolves index to a Utf8 entry.
func (p *Pool) Utf8(index uint16) (*Utf8, error) {
	item, err := p.entry(index)
	if err != nil {
		return nil, err
	}
	u, ok := item.(*Utf8)
	if !ok {
		return nil, errors.UnexpectedItem(errors.PhaseResolve, int(index), TagUtf8.String(), item.Tag().String())
	}
	return u, nil
}

// Class resolves index to a Class entry.
func (p *Pool) Class(index uint16) (*Class, error) {
	item, err := p.entry(index)
	if err != nil {
		return nil, err
	}
	c, ok := item.(*Class)
	if !ok {
		return nil, errors.UnexpectedItem(errors.PhaseResolve, int(index), TagClass.String(), item.Tag().String())
	}
	return c, nil
}

// NameAndType resolves index to a NameAndType entry.
func (p *Pool) NameAndType(index uint16) (*NameAndType, error) {
	item, err := p.entry(index)
	if err != nil {
		return nil, err
	}
	nat, ok := item.(*NameAndType)
	if !ok {
		return nil, errors.UnexpectedItem(errors.PhaseResolve, int(index), TagNameAndType.String(), item.Tag().String())
	}
	return nat, nil
}

// FieldRef resolves index to a Fieldref entry.
func (p *Pool) FieldRef(index uint16) (*FieldRef, error) {
	item, err := p.entry(index)
	if err != nil {
		return nil, err
	}
	ref, ok := item.(*FieldRef)
	if !ok {
		return nil, errors.UnexpectedItem(errors.PhaseResolve, int(index), TagFieldRef.String(), item.Tag().String())
	}
	return ref, nil
}

// MethodRef resolves index to a Methodref entry.
func (p *Pool) MethodRef(index uint16) (*MethodRef, error) {
	item, err := p.entry(index)
	if err != nil {
		return nil, err
	}
	ref, ok := item.(*MethodRef)
	if !ok {
		return nil, errors.UnexpectedItem(errors.PhaseResolve, int(index), TagMethodRef.String(), item.Tag().String())
	}
	return ref, nil
}

// InterfaceMethodRef resolves index to an InterfaceMethodref entry.
func (p *Pool) InterfaceMethodRef(index uint16) (*InterfaceMethodRef, error) {
	item, err := p.entry(index)
	if err != nil {
		return nil, err
	}
	ref, ok := item.(*InterfaceMethodRef)
	if !ok {
		return nil, errors.UnexpectedItem(errors.PhaseResolve, int(index), TagInterfaceMethodRef.String(), item.Tag().String())
	}
	return ref, nil
}

// Derived resolution helpers built on the typed accessors.

// ClassName resolves a Class entry's name: index -> Class -> Utf8.
func (p *Pool) ClassName(index uint16) (string, error) {
	c, err := p.Class(index)
	if err != nil {
		return "", err
	}
	u, err := p.Utf8(c.NameIndex)
	if err != nil {
		return "", err
	}
	return u.Value, nil
}

// StringValue resolves a String entry's backing text: index -> String -> Utf8.
func (p *Pool) StringValue(index uint16) (string, error) {
	item, err := p.entry(index)
	if err != nil {
		return "", err
	}
	s, ok := item.(*String)
	if !ok {
		return "", errors.UnexpectedItem(errors.PhaseResolve, int(index), TagString.String(), item.Tag().String())
	}
	u, err := p.Utf8(s.StringIndex)
	if err != nil {
		return "", err
	}
	return u.Value, nil
}

// RefInfo is a fully resolved field or method reference.
type RefInfo struct {
	ClassName  string
	Name       string
	Descriptor string
}

// ResolveFieldRef resolves a Fieldref entry through its Class and
// NameAndType references.
func (p *Pool) ResolveFieldRef(index uint16) (*RefInfo, error) {
	ref, err := p.FieldRef(index)
	if err != nil {
		return nil, err
	}
	return p.resolveRef(ref.ClassIndex, ref.NameAndTypeIndex)
}

// ResolveMethodRef resolves a Methodref entry through its Class and
// NameAndType references.
func (p *Pool) ResolveMethodRef(index uint16) (*RefInfo, error) {
	ref, err := p.MethodRef(index)
	if err != nil {
		return nil, err
	}
	return p.resolveRef(ref.ClassIndex, ref.NameAndTypeIndex)
}

// ResolveInterfaceMethodRef resolves an InterfaceMethodref entry through its
// Class and NameAndType references.
func (p *Pool) ResolveInterfaceMethodRef(index uint16) (*RefInfo, error) {
	ref, err := p.InterfaceMethodRef(index)
	if err != nil {
		return nil, err
	}
	return p.resolveRef(ref.ClassIndex, ref.NameAndTypeIndex)
}

func (p *Pool) resolveRef(classIndex, natIndex uint16) (*RefInfo, error) {
	className, err := p.ClassName(classIndex)
	if err != nil {
		return nil, err
	}
	nat, err := p.NameAndType(natIndex)
	if err != nil {
		return nil, err
	}
	name, err := p.Utf8(nat.NameIndex)
	if err != nil {
		return nil, err
	}
	desc, err := p.Utf8(nat.DescriptorIndex)
	if err != nil {
		return nil, err
	}
	return &RefInfo{
		ClassName:  className,
		Name:       name.Value,
		Descriptor: desc.Value,
	}, nil
}
