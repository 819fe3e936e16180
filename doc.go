// Package jclass decodes JVM class files into an immutable in-memory model.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	jclass/              Root package with the Open and Decode entry points
//	├── classfile/       Class file decoding: header, members, attributes
//	├── constpool/       Constant pool construction and typed resolution
//	├── errors/          Structured error types for debugging
//	└── internal/        Big-endian cursor shared by the decoders
//
// # Quick Start
//
// Decode a class file and inspect it:
//
//	cf, err := jclass.Open("HelloWorld.class")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := cf.ClassName()
//	fmt.Println(name, classfile.JavaRelease(cf.MajorVersion))
//
//	if m, ok := cf.MethodByName("main"); ok {
//	    code := m.Code()
//	    fmt.Println(code.MaxStack, code.MaxLocals, len(code.Code))
//	}
//
// # Decoding Model
//
// Decoding is a single strict pass: constant pool first, then header fields,
// interfaces, fields, methods, and class attributes. The first malformed
// byte aborts the decode with a structured error from the errors package;
// there is no partial result and no recovery mode.
//
// The decoded model is read-only. Mutating or re-serializing class files is
// out of scope, which is what lets pool entries be shared as plain pointers
// throughout the structure.
//
// # Thread Safety
//
// A decoded ClassFile and its constant pool are immutable and safe for
// concurrent readers. Decoding itself is also safe to run concurrently on
// separate inputs.
package jclass
