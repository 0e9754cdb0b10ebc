package types

import "fmt"

// Kind classifies a nibble error
type Kind int

const (
	KindTerminalInit Kind = iota + 1
	KindRender
	KindInvalidColor
	KindInvalidBorderType
	KindInvalidDimensions
	KindIO
	KindConfig
)

// String returns the human-readable label used as the error message prefix
func (k Kind) String() string {
	switch k {
	case KindTerminalInit:
		return "terminal initialization failed"
	case KindRender:
		return "rendering failed"
	case KindInvalidColor:
		return "invalid color"
	case KindInvalidBorderType:
		return "invalid border type"
	case KindInvalidDimensions:
		return "invalid dimensions"
	case KindIO:
		return "io error"
	case KindConfig:
		return "widget configuration error"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by nibble packages
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Sentinels for errors.Is matching. Only the Kind is compared.
var (
	ErrTerminalInit      = &Error{Kind: KindTerminalInit}
	ErrRender            = &Error{Kind: KindRender}
	ErrInvalidColor      = &Error{Kind: KindInvalidColor}
	ErrInvalidBorderType = &Error{Kind: KindInvalidBorderType}
	ErrInvalidDimensions = &Error{Kind: KindInvalidDimensions}
	ErrIO                = &Error{Kind: KindIO}
	ErrConfig            = &Error{Kind: KindConfig}
)

// New creates an error of the given kind
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates an error of the given kind with a formatted message
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind that keeps err as its cause
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
