package classfile

import (
	"github.com/javabin/jclass/constpool"
	"github.com/javabin/jclass/errors"
	"github.com/javabin/jclass/internal/bigendian"
)

// codeAttributeName is the one attribute kind decoded structurally.
const codeAttributeName = "Code"

func readAttributes(r *bigendian.Reader, pool *constpool.Pool, count int) ([]Attribute, error) {
	attrs := make([]Attribute, 0, count)
	for i := 0; i < count; i++ {
		attr, err := readAttribute(r, pool)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// readAttribute decodes one attribute: name index, 4-byte length, body. The
// body is always consumed in full per the declared length, so the cursor
// stays aligned whether or not the attribute kind is recognized.
func readAttribute(r *bigendian.Reader, pool *constpool.Pool) (Attribute, error) {
	nameIndex, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseAttribute, "attribute_name_index", err)
	}
	name, err := pool.Utf8(nameIndex)
	if err != nil {
		return nil, err
	}

	length, err := r.U4()
	if err != nil {
		return nil, eofErr(r, errors.PhaseAttribute, "attribute_length", err)
	}
	data, err := r.Bytes(int(length))
	if err != nil {
		return nil, eofErr(r, errors.PhaseAttribute, name.Value+" body", err)
	}

	if name.Value == codeAttributeName {
		return readCode(name, data, pool)
	}
	return &RawAttribute{Name: name, Data: data}, nil
}

// readCode decodes a Code attribute body. It reuses the name handle already
// resolved by readAttribute. Nested attributes recurse through
// readAttributes; recursion terminates because every nested attribute
// consumes a bounded, self-declared length.
func readCode(name *constpool.Utf8, data []byte, pool *constpool.Pool) (*CodeAttribute, error) {
	br := getReader(data)
	defer putReader(br)
	r := bigendian.NewReader(br)

	maxStack, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseCode, "max_stack", err)
	}
	maxLocals, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseCode, "max_locals", err)
	}

	codeLength, err := r.U4()
	if err != nil {
		return nil, eofErr(r, errors.PhaseCode, "code_length", err)
	}
	code, err := r.Bytes(int(codeLength))
	if err != nil {
		return nil, eofErr(r, errors.PhaseCode, "code bytes", err)
	}

	tableLength, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseCode, "exception_table_length", err)
	}
	table := make([]ExceptionHandler, tableLength)
	for i := range table {
		h, err := readExceptionHandler(r)
		if err != nil {
			return nil, err
		}
		table[i] = h
	}

	attrCount, err := r.U2()
	if err != nil {
		return nil, eofErr(r, errors.PhaseCode, "attributes_count", err)
	}
	nested, err := readAttributes(r, pool, int(attrCount))
	if err != nil {
		return nil, err
	}

	return &CodeAttribute{
		Name:           name,
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           code,
		ExceptionTable: table,
		Attributes:     nested,
	}, nil
}

func readExceptionHandler(r *bigendian.Reader) (ExceptionHandler, error) {
	var h ExceptionHandler
	var err error
	if h.StartPC, err = r.U2(); err != nil {
		return h, eofErr(r, errors.PhaseCode, "exception handler start_pc", err)
	}
	if h.EndPC, err = r.U2(); err != nil {
		return h, eofErr(r, errors.PhaseCode, "exception handler end_pc", err)
	}
	if h.HandlerPC, err = r.U2(); err != nil {
		return h, eofErr(r, errors.PhaseCode, "exception handler handler_pc", err)
	}
	if h.CatchType, err = r.U2(); err != nil {
		return h, eofErr(r, errors.PhaseCode, "exception handler catch_type", err)
	}
	return h, nil
}
