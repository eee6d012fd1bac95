package utils

import "fmt"

// OpError is a failure in a named internal operation. The operation keeps its
// identity when the error crosses package boundaries, so log lines and wrap
// chains stay attributable.
type OpError struct {
	Op  string // failing operation, e.g. "cache.connect"
	Msg string
	Err error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError wraps err with the operation and message. A nil err is allowed
// for failures with no underlying cause.
func NewOpError(op, msg string, err error) error {
	return &OpError{Op: op, Msg: msg, Err: err}
}
