// Package classfile decodes JVM .class files into an immutable in-memory
// representation.
//
// Use Decode for in-memory data or DecodeReader for a stream:
//
//	cf, err := classfile.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := cf.ClassName()
//	if m, ok := cf.MethodByName("main"); ok {
//	    code := m.Code()
//	    fmt.Println(name, code.MaxStack, len(code.Code))
//	}
//
// Decoding is strictly sequential and fail-fast: the constant pool is
// materialized first (entries may cross-reference each other out of
// positional order), then header fields, interfaces, fields, methods, and
// class attributes. On any malformed input the first error propagates and
// no partial ClassFile is exposed.
//
// Only the Code attribute is decoded structurally; every other attribute is
// preserved as a RawAttribute with its resolved name and raw body. That is
// a deliberate contract, not a gap: the length prefix lets the decoder skip
// bodies it does not understand while keeping the cursor aligned, which is
// what keeps the format forward-compatible.
package classfile
