// This package implements functions which manipulate errors and provide stack
// trace information.
//
// NOTE: This package intentionally mirrors the standard "errors" module.
// Both hash backends and every utility package in this repository report
// failures through it, so equivalent failure conditions surface the same way
// regardless of backend.
package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"runtime"
)

// This interface exposes additional information about the error.
type Error interface {
	// This returns the error message without the stack trace.
	GetMessage() string

	// This returns the wrapped error.  This returns nil if this does not wrap
	// another error.
	GetInner() error

	// Implements the built-in error interface.
	Error() string

	// Returns a string representation of the stack trace captured when the
	// error was created.
	GetStack() string
}

// Standard struct for general types of errors.
type baseError struct {
	msg   string
	inner error
	stack []uintptr
}

// This returns the error string without stack trace information.
func GetMessage(err interface{}) string {
	switch e := err.(type) {
	case Error:
		return extractFullErrorMessage(e, false)
	case runtime.Error:
		return runtime.Error(e).Error()
	case error:
		return e.Error()
	default:
		return "Passed a non-error to GetMessage"
	}
}

// This returns a string with all available error information, including inner
// errors that are wrapped by this errors.
func (e *baseError) Error() string {
	return extractFullErrorMessage(e, true)
}

// Implements Error interface.
func (e *baseError) GetMessage() string {
	return e.msg
}

// Implements Error interface.
func (e *baseError) GetInner() error {
	return e.inner
}

// Implements the standard library's unwrap convention so errors.Is and
// errors.As see through wrapped chains.
func (e *baseError) Unwrap() error {
	return e.inner
}

// Implements Error interface.
func (e *baseError) GetStack() string {
	buf := bytes.NewBuffer(make([]byte, 0, 256))
	frames := runtime.CallersFrames(e.stack)
	for {
		frame, more := frames.Next()
		_, _ = buf.WriteString(frame.Function)
		_, _ = buf.WriteString("\n")
		fmt.Fprintf(buf, "\t%s:%d\n", frame.File, frame.Line)
		if !more {
			break
		}
	}
	return buf.String()
}

// This returns a new baseError initialized with the given message and
// the current stack trace.
func New(msg string) Error {
	return newBaseError(nil, msg)
}

// Same as New, but with fmt.Printf-style parameters.
func Newf(format string, args ...interface{}) Error {
	return newBaseError(nil, fmt.Sprintf(format, args...))
}

// Wraps another error in a new baseError.
func Wrap(err error, msg string) Error {
	return newBaseError(err, msg)
}

// Same as Wrap, but with fmt.Printf-style parameters.
func Wrapf(err error, format string, args ...interface{}) Error {
	return newBaseError(err, fmt.Sprintf(format, args...))
}

// Internal helper function to create new baseError objects,
// note that if there is more than one level of redirection to call this
// function, stack frame information will include that level too.
func newBaseError(err error, msg string) *baseError {
	stack := make([]uintptr, 64)
	stackLength := runtime.Callers(3, stack)
	return &baseError{
		msg:   msg,
		stack: stack[:stackLength],
		inner: err,
	}
}

// Constructs full error message for a given Error by traversing
// all of its inner errors. If includeStack is True it will also include
// stack trace from deepest Error in the chain.
func extractFullErrorMessage(e Error, includeStack bool) string {
	var ok bool
	var lastErr Error
	errMsg := bytes.NewBuffer(make([]byte, 0, 1024))

	cur := e
	for {
		lastErr = cur
		errMsg.WriteString(cur.GetMessage())

		innerErr := cur.GetInner()
		if innerErr == nil {
			break
		}
		cur, ok = innerErr.(Error)
		if !ok {
			// We have reached the end and traversed all inner errors.
			// Add last message and exit loop.
			errMsg.WriteString("\n")
			errMsg.WriteString(innerErr.Error())
			break
		}
		errMsg.WriteString("\n")
	}
	if includeStack {
		errMsg.WriteString("\nORIGINAL STACK TRACE:\n")
		errMsg.WriteString(lastErr.GetStack())
	}
	return errMsg.String()
}

// Keep peeling away layers of context until a primitive error is revealed.
func RootError(ierr error) (nerr error) {
	nerr = ierr
	for i := 0; i < 20; i++ {
		terr := stderrors.Unwrap(nerr)
		if terr == nil {
			return nerr
		}
		nerr = terr
	}
	return fmt.Errorf("too many iterations: %T", nerr)
}

// Perform a deep check, unwrapping errors as much as possible and
// comparing the string version of the error.
func IsError(err, errConst error) bool {
	if err == errConst {
		return true
	}
	// Must rely on string equivalence, otherwise a value is not equal
	// to its pointer value.
	rootErrStr := ""
	rootErr := RootError(err)
	if rootErr != nil {
		rootErrStr = rootErr.Error()
	}
	errConstStr := ""
	if errConst != nil {
		errConstStr = errConst.Error()
	}
	return rootErrStr == errConstStr
}
