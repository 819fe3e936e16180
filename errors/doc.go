// Package errors provides structured error types for the class file decoder.
//
// Errors are categorized by Phase (where in decoding the error occurred) and
// Kind (error category). The Error type includes rich context: the constant
// pool index involved, the expected versus actual item kind, and a cause
// chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindUnexpectedItem).
//		Index(5).
//		Expected("Utf8").
//		Actual("Class").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownTag(3, 2)
//	err := errors.IndexOutOfBounds(errors.PhaseResolve, 40, 25)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind so callers can test for a category without
// caring about the specific index or detail.
package errors
