// Package errors builds formatted errors that keep a wrapped cause.
package errors

import (
	"fmt"
)

type err struct {
	msg  string
	args []interface{}
}

func (err err) Error() string {
	return fmt.Sprintf(err.msg, err.args...)
}

func (err err) Unwrap() error {
	for _, arg := range err.args {
		if wrapped, ok := arg.(error); ok {
			return wrapped
		}
	}
	return nil
}

// New creates an error with a printf-style message. If any arg is itself an
// error, it becomes the wrapped cause reported by Unwrap.
func New(msg string, args ...interface{}) error {
	return err{msg, args}
}
