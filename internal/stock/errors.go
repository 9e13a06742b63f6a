package stock

import "fmt"

// Kind classifies request-level failures so the boundary layer can pick a
// status code without parsing message text.
type Kind int

const (
	// KindValidation is bad caller input, surfaced verbatim.
	KindValidation Kind = iota
	// KindNotFound is an upstream that has no rows for the ticker/period.
	KindNotFound
	// KindUpstream is any other provider failure.
	KindUpstream
)

// Error is a user-visible request failure. Message is the complete text
// shown to the caller; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func upstreamf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}
