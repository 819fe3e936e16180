package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in decoding the error occurred
type Phase string

const (
	PhaseHeader    Phase = "header"    // magic and version
	PhasePool      Phase = "pool"      // constant pool construction
	PhaseResolve   Phase = "resolve"   // constant pool index resolution
	PhaseMember    Phase = "member"    // field and method decoding
	PhaseAttribute Phase = "attribute" // attribute decoding
	PhaseCode      Phase = "code"      // Code attribute decoding
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownTag     Kind = "unknown_constant_pool_tag"
	KindUnexpectedItem Kind = "unexpected_constant_pool_item"
	KindOutOfBounds    Kind = "constant_pool_index_out_of_bounds"
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindUnexpectedEOF  Kind = "unexpected_end_of_input"
	KindBadMagic       Kind = "bad_magic"
	KindInvalidData    Kind = "invalid_data"
)

// Error is the structured error type used throughout the decoder
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Expected string
	Actual   string
	Detail   string
	Index    int // constant pool index, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}

	if e.Expected != "" || e.Actual != "" {
		b.WriteString(": ")
		if e.Expected != "" && e.Actual != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
			b.WriteString(", actual ")
			b.WriteString(e.Actual)
		} else if e.Expected != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		} else {
			b.WriteString("actual ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Index: -1,
		},
	}
}

// Index sets the constant pool index
func (b *Builder) Index(index int) *Builder {
	b.err.Index = index
	return b
}

// Expected sets the expected item kind
func (b *Builder) Expected(kind string) *Builder {
	b.err.Expected = kind
	return b
}

// Actual sets the actual item kind
func (b *Builder) Actual(kind string) *Builder {
	b.err.Actual = kind
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownTag creates an error for an unrecognized constant pool tag byte
func UnknownTag(index int, tag uint8) *Error {
	return &Error{
		Phase:  PhasePool,
		Kind:   KindUnknownTag,
		Index:  index,
		Detail: fmt.Sprintf("unrecognized tag %d", tag),
		Value:  tag,
	}
}

// UnexpectedItem creates an error for an index that resolved to the wrong item kind
func UnexpectedItem(phase Phase, index int, expected, actual string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnexpectedItem,
		Index:    index,
		Expected: expected,
		Actual:   actual,
	}
}

// IndexOutOfBounds creates an error for an index outside the constant pool
func IndexOutOfBounds(phase Phase, index, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Index:  index,
		Detail: fmt.Sprintf("pool holds %d entries", size),
		Value:  index,
	}
}

// InvalidUTF8 creates an invalid modified UTF-8 error
func InvalidUTF8(index int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhasePool,
		Kind:   KindInvalidUTF8,
		Index:  index,
		Detail: fmt.Sprintf("invalid modified UTF-8 sequence: %x", preview),
	}
}

// UnexpectedEOF creates an error for a stream exhausted mid-field
func UnexpectedEOF(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnexpectedEOF,
		Index:  -1,
		Detail: fmt.Sprintf("reading %s", what),
		Cause:  cause,
	}
}

// BadMagic creates an error for a file that does not start with 0xCAFEBABE
func BadMagic(got uint32) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindBadMagic,
		Index:  -1,
		Detail: fmt.Sprintf("magic 0x%08X", got),
		Value:  got,
	}
}

// InvalidData creates an error for structurally malformed input
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Index:  -1,
		Detail: detail,
	}
}
