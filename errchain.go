package errchain

import (
	"errors"
	"fmt"
)

// Basic error check functions from standard library
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// chainError is a single link in a context chain. It wraps at most one
// cause and never changes after construction; attaching more context
// allocates a new link on top instead.
type chainError struct {
	msg   string
	cause error
}

// compile-time guarantee that *chainError implements Error
var _ Error = (*chainError)(nil)

func (e *chainError) Error() string {
	switch {
	case e.cause == nil:
		return e.msg
	case e.msg == "":
		return e.cause.Error()
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *chainError) Message() string { return e.msg }

func (e *chainError) Unwrap() error { return e.cause }

// New creates a one-off failure from an ad-hoc description. Use it for
// failures no caller will ever branch on; a failure worth matching
// belongs in a typed variant in the package that produces it.
func New(text string) error {
	return &chainError{msg: text}
}

// Newf creates a one-off failure from a format string.
func Newf(format string, args ...any) error {
	return &chainError{msg: fmt.Sprintf(format, args...)}
}

// From adapts any error into the canonical container.
//
// Behavior:
//   - nil input => nil output
//   - an error produced by this package is returned as-is
//   - anything else becomes the root cause of a fresh container,
//     keeping its concrete identity intact for later downcast
func From(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := err.(*chainError); ok {
		return err
	}

	return &chainError{cause: err}
}

// Wrap attaches one layer of context to err, describing what the
// caller was doing when the failure surfaced. It returns a new
// container whose cause is err; the input is never modified. A nil err
// yields nil so call sites can wrap unconditionally.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}

	return &chainError{msg: context, cause: err}
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return &chainError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Render produces the full text of a chain: context messages outermost
// first, root cause last, joined by ": ". The output depends only on
// the chain itself, so repeated calls yield identical strings.
func Render(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

// Messages splits a chain into its per-layer texts, outermost context
// first. A foreign root cause contributes its own Error() text as the
// final entry.
func Messages(err error) []string {
	var out []string

	for err != nil {
		ce, ok := err.(*chainError)
		if !ok {
			out = append(out, err.Error())
			break
		}

		if ce.msg != "" || ce.cause == nil {
			out = append(out, ce.msg)
		}

		err = ce.cause
	}

	return out
}

// Root returns the terminal cause of a chain: the first error that is
// not a container, or the innermost container when the chain was built
// from ad-hoc messages only.
func Root(err error) error {
	for err != nil {
		ce, ok := err.(*chainError)
		if !ok {
			return err
		}

		if ce.cause == nil {
			return ce
		}

		err = ce.cause
	}

	return nil
}

// AsType walks err's chain from the outside in and returns the first
// cause of concrete type T. The second return reports whether a match
// was found; no match is not a failure.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)

	return target, ok
}
