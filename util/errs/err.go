package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Coded error used across timedial.
//
//	Use NewErrfCode(...) to declare an error kind, and WithInternalMsg(...) or Wrapf(...) to
//	create an instance carrying context.
type DialErr struct {
	code        string // error code, used for errors.Is matching.
	msg         string // error message.
	internalMsg string // context, e.g., the offending value.
	stack       string
	err         error
}

func (e *DialErr) Cause() error {
	return e.err
}

func (e *DialErr) InternalMsg() string {
	return e.internalMsg
}

func (e *DialErr) Msg() string {
	return e.msg
}

func (e *DialErr) Code() string {
	return e.code
}

func (e *DialErr) StackTrace() string {
	return e.stack
}

func (e *DialErr) HasCode() bool {
	return strings.TrimSpace(e.code) != ""
}

func (e *DialErr) Error() string {
	tok := []string{}
	if e.msg != "" {
		tok = append(tok, e.msg)
	}
	if e.internalMsg != "" {
		tok = append(tok, e.internalMsg)
	}
	if e.err != nil {
		tok = append(tok, e.err.Error())
	}
	return strings.Join(tok, ", ")
}

// Implements *DialErr Is check.
//
// Returns true, if both are *DialErr and the code matches.
//
// WithInternalMsg always create new error, so the declared error kind can be reused:
//
//	var ErrInvalidUnit = errs.NewErrfCode("INVALID_UNIT", "invalid unit")
//
//	err := ErrInvalidUnit.WithInternalMsg("unit: %q", "fortnight")
//	errors.Is(err, ErrInvalidUnit) // true
func (e *DialErr) Is(target error) bool {
	if te, ok := target.(*DialErr); ok && e.code != "" && e.code == te.code {
		return true
	}
	return false
}

func (e *DialErr) Unwrap() error {
	return e.err
}

// Create new *DialErr with the internal message and a fresh stack trace.
func (e *DialErr) WithInternalMsg(msg string, args ...any) *DialErr {
	n := e.copyNew()
	if len(args) > 0 {
		n.internalMsg = fmt.Sprintf(msg, args...)
	} else {
		n.internalMsg = msg
	}
	n.withStack()
	return n
}

// Create new *DialErr to wrap the cause error
//
// if cause is nil, nil is returned.
func (e *DialErr) Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	return n
}

// Create new *DialErr to wrap the cause error with an internal message.
//
// if cause is nil, nil is returned.
func (e *DialErr) Wrapf(cause error, internalMsg string, args ...any) error {
	if cause == nil {
		return nil
	}
	n := e.WithInternalMsg(internalMsg, args...)
	n.err = cause
	return n
}

func (e *DialErr) copyNew() *DialErr {
	n := new(DialErr)
	n.code = e.code
	n.msg = e.msg
	n.internalMsg = e.internalMsg
	n.stack = e.stack
	n.err = e.err
	return n
}

func (e *DialErr) withStack() *DialErr {
	e.stack = stack(4)
	return e
}

// Create new *DialErr with message.
func NewErrf(msg string, args ...any) *DialErr {
	return NewErrfCode("", msg, args...)
}

// Create new *DialErr with message and error code.
func NewErrfCode(code string, msg string, args ...any) *DialErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &DialErr{code: code, msg: msg}
}

// Wrap an error to create new *DialErr with message.
//
// If the wrapped err is nil, nil is returned.
func WrapErrf(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &DialErr{msg: msg, err: err}
	me.withStack()
	return me
}

// Find the stack trace of the outermost *DialErr carrying one.
func UnwrapErrStack(err error) (string, bool) {
	var de *DialErr
	if errors.As(err, &de) && de != nil && de.stack != "" {
		return de.stack, true
	}
	return "", false
}

func ErrorStackTrace(err error) string {
	if err == nil {
		return "nil"
	}
	m := err.Error()
	if st, ok := UnwrapErrStack(err); ok {
		m += st
	}
	return m
}

var stackPool = sync.Pool{
	New: func() any {
		var v []uintptr = make([]uintptr, 50)
		return &v
	},
}

func stack(n int) string {
	stack := stackPool.Get().(*[]uintptr)
	defer func() {
		clear(*stack)
		stackPool.Put(stack)
	}()

	length := runtime.Callers(n, *stack)
	frames := runtime.CallersFrames((*stack)[:length])
	b := strings.Builder{}

	for {
		f, next := frames.Next()
		b.WriteString(fmt.Sprintf("\n\t%v\n\t\t%v:%v", f.Function, f.File, f.Line))
		if !next {
			break
		}
	}
	return b.String()
}
