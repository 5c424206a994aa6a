package seqgen

import (
	"errors"
	"fmt"
)

// ErrorCode classifies errors of generators and of the input surface.
type ErrorCode int

// Error codes. The first three make up the error taxonomy of the repetition expander,
// the others are raised by scanning, splicing and configuration.
const (
	NoError          ErrorCode = iota
	HeaderSyntax               // header does not match `ident in int .. [=] int`
	MissingBody                // invocation lacks a brace-delimited body
	RangeConversion            // range literal does not fit into an unsigned 64-bit integer
	Lexical                    // input contains text the tokenizer cannot match
	Delimiter                  // unbalanced or mismatched delimiters
	ExpansionDepth             // nested invocations expand too deeply
	UnknownGenerator           // no generator registered for an invocation name
	Config                     // invalid configuration value
)

// Error is the diagnostic type shared by all generators: a human-readable message
// together with the span of the offending construct.
type Error struct {
	Code ErrorCode // error classification
	Msg  string    // human-readable message
	Span Span      // best-known source position
	Err  error     // underlying error, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s: %v", e.Code, e.Span, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Span, e.Msg)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a diagnostic with a formatted message.
func Errorf(code ErrorCode, span Span, format string, args ...interface{}) error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
		Span: span,
	}
}

// Wrap creates a diagnostic wrapping an existing error.
func Wrap(code ErrorCode, span Span, msg string, err error) error {
	return &Error{
		Code: code,
		Msg:  msg,
		Span: span,
		Err:  err,
	}
}

// CodeOf extracts the error code from an error chain.
// Returns NoError for nil and for errors not created by this module.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return NoError
}

// SpanOf extracts the span of a diagnostic from an error chain.
// The second return value is false if err does not carry a diagnostic.
func SpanOf(err error) (Span, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Span, true
	}
	return Span{}, false
}
