// Package constpool decodes and resolves the class file constant pool.
//
// The pool is a tagged-union wire format: each slot starts with a 1-byte tag
// followed by a tag-specific payload. Decode builds the full pool in one
// pass before anything references into it, tracking the quirk that Long and
// Double entries reserve two slots (the second is an Empty placeholder).
//
// Declared indices are 1-based; index 0 and indices landing on an Empty
// placeholder are invalid. All dereferencing goes through the Pool's typed
// accessors (Utf8, Class, NameAndType, ...), which check both bounds and
// the expected variant so a wrong-kind reference surfaces as an error
// instead of a wrong-typed value.
//
// Utf8 payloads use the JVM's modified UTF-8 encoding, which this package
// decodes exactly (two-byte NUL, six-byte surrogate pairs, no four-byte
// forms).
package constpool
