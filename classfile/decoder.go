package classfile

import (
	"bufio"
	"encoding/binary"
	"io"

	"go.uber.org/zap"

	"github.com/javabin/jclass/constpool"
	"github.com/javabin/jclass/errors"
	"github.com/javabin/jclass/internal/bigendian"
)

// IsClassFile reports whether data starts with the class file magic. It is
// a cheap sniff, not a validation.
func IsClassFile(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return binary.BigEndian.Uint32(data[:4]) == Magic
}

// eofErr reports a stream that died mid-field, tagging the cause with the
// byte offset the cursor had reached.
func eofErr(r *bigendian.Reader, phase errors.Phase, what string, err error) *errors.Error {
	return errors.UnexpectedEOF(phase, what, r.WrapError(what, err))
}

// Decode decodes a complete class file from data. Decoding is strictly
// sequential and fail-fast: on any error no partial ClassFile is returned.
func Decode(data []byte) (*ClassFile, error) {
	br := getReader(data)
	defer putReader(br)
	return decode(bigendian.NewReader(br))
}

// DecodeReader decodes a complete class file from r, buffering as needed.
func DecodeReader(r io.Reader) (*ClassFile, error) {
	if br, ok := r.(io.ByteReader); ok {
		return decode(bigendian.NewReader(br))
	}
	return decode(bigendian.NewReader(bufio.NewReader(r)))
}

// decode runs the fixed decode sequence: magic, version, constant pool,
// access flags, this/super class, interfaces, fields, methods, class
// attributes. The pool is fully built before anything resolves into it.
func decode(r *bigendian.Reader) (*ClassFile, error) {
	magic, err := r.U4()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "magic", err)
	}
	if magic != Magic {
		return nil, errors.BadMagic(magic)
	}

	minor, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "minor_version", err)
	}
	major, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "major_version", err)
	}

	cpCount, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "constant_pool_count", err)
	}
	pool, err := constpool.Decode(r, cpCount)
	if err != nil {
		return nil, err
	}
	Logger().Debug("constant pool decoded",
		zap.Int("slots", pool.Len()),
		zap.Uint16("declared_count", cpCount))

	accessFlags, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "access_flags", err)
	}
	thisClass, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "this_class", err)
	}
	superClass, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "super_class", err)
	}

	// this_class must name a Class entry; super_class too, except the 0 of
	// java/lang/Object.
	if _, err := pool.Class(thisClass); err != nil {
		return nil, err
	}
	if superClass != 0 {
		if _, err := pool.Class(superClass); err != nil {
			return nil, err
		}
	}

	interfacesCount, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseHeader, "interfaces_count", err)
	}
	interfaces := make([]uint16, interfacesCount)
	for i := range interfaces {
		interfaces[i], err = r.U2()
		if err != nil {
			return nil, eofErr(r, errors.PhaseHeader, "interface index", err)
		}
	}

	fieldsCount, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseMember, "fields_count", err)
	}
	fields, err := readFields(r, pool, int(fieldsCount))
	if err != nil {
		return nil, err
	}

	methodsCount, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseMember, "methods_count", err)
	}
	methods, err := readMethods(r, pool, int(methodsCount))
	if err != nil {
		return nil, err
	}

	attributesCount, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseAttribute, "attributes_count", err)
	}
	attributes, err := readAttributes(r, pool, int(attributesCount))
	if err != nil {
		return nil, err
	}

	Logger().Debug("class file decoded",
		zap.Int("bytes", r.Position()),
		zap.Uint16("major", major),
		zap.Int("fields", len(fields)),
		zap.Int("methods", len(methods)),
		zap.Int("class_attributes", len(attributes)))

	return &ClassFile{
		Magic:        magic,
		MinorVersion: minor,
		MajorVersion: major,
		ConstantPool: pool,
		AccessFlags:  accessFlags,
		ThisClass:    thisClass,
		SuperClass:   superClass,
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Attributes:   attributes,
	}, nil
}

func readFields(r *bigendian.Reader, pool *constpool.Pool, count int) ([]Field, error) {
	fields := make([]Field, count)
	for i := range fields {
		flags, name, desc, attrs, err := readMember(r, pool)
		if err != nil {
			return nil, err
		}
		fields[i] = Field{
			AccessFlags: flags,
			Name:        name,
			Descriptor:  desc,
			Attributes:  attrs,
		}
	}
	return fields, nil
}

func readMethods(r *bigendian.Reader, pool *constpool.Pool, count int) ([]Method, error) {
	methods := make([]Method, count)
	for i := range methods {
		flags, name, desc, attrs, err := readMember(r, pool)
		if err != nil {
			return nil, err
		}
		methods[i] = Method{
			AccessFlags: flags,
			Name:        name,
			Descriptor:  desc,
			Attributes:  attrs,
		}
	}
	return methods, nil
}

// readMember decodes the shape fields and methods share: flags, name,
// descriptor, attributes. Name and descriptor must resolve to Utf8 entries;
// a member without a resolvable name or descriptor is malformed.
func readMember(r *bigendian.Reader, pool *constpool.Pool) (uint16, *constpool.Utf8, *constpool.Utf8, []Attribute, error) {
	flags, err := r.U2()
	if err != nil {
		return 0, nil, nil, nil, eofErr(r, errors.PhaseMember, "access_flags", err)
	}
	nameIndex, err := r.U2()
	if err != nil {
		return 0, nil, nil, nil, eofErr(r, errors.PhaseMember, "name_index", err)
	}
	descIndex, err := r.U2()
	if err != nil {
		return 0, nil, nil, nil, eofErr(r, errors.PhaseMember, "descriptor_index", err)
	}

	name, err := pool.Utf8(nameIndex)
	if err != nil {
		return 0, nil, nil, nil, err
	}
	desc, err := pool.Utf8(descIndex)
	if err != nil {
		return 0, nil, nil, nil, err
	}

	attrCount, err := r.U2()
	if err != nil {
		return 0, nil, nil, nil, eofErr(r, errors.PhaseMember, "attributes_count", err)
	}
	attrs, err := readAttributes(r, pool, int(attrCount))
	if err != nil {
		return 0, nil, nil, nil, err
	}

	return flags, name, desc, attrs, nil
}
