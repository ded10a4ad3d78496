package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Code categorizes a connector failure
type Code int

const (
	Internal   Code = http.StatusInternalServerError
	NotFound   Code = http.StatusNotFound
	Forbidden  Code = http.StatusForbidden
	Validation Code = http.StatusBadRequest
)

// Error is a coded connector error
type Error struct {
	Code     Code     `json:"code"`
	Messages []string `json:"messages"`
	Err      error    `json:"err,omitempty"`
}

// Error returns the Error as a json string
func (e *Error) Error() string {
	if e.Code == 0 {
		e.Code = http.StatusOK
	}
	bits, _ := json.Marshal(e)
	return string(bits)
}

// Unwrap returns the wrapped error (if one exists)
func (e *Error) Unwrap() error {
	return e.Err
}

// RemoveError removes the wrapped error from the Error and leaves its messages and code
func (e *Error) RemoveError() *Error {
	return &Error{
		Code:     e.Code,
		Messages: e.Messages,
		Err:      nil,
	}
}

// New creates a new Error with the given code and formatted message
func New(code Code, msg string, args ...any) error {
	return &Error{
		Code:     code,
		Messages: []string{fmt.Sprintf(msg, args...)},
	}
}

// Extract extracts the custom Error from the given error
func Extract(err error) *Error {
	e, ok := err.(*Error)
	if !ok {
		return &Error{
			Code: 0,
			Err:  err,
		}
	}
	return e
}

// Wrap wraps the given error with the code and formatted message - nil errors stay nil
func Wrap(err error, code Code, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		if msg != "" {
			e.Messages = append(e.Messages, fmt.Sprintf(msg, args...))
		}
		if code > 0 {
			e.Code = code
		}
		return e
	}
	e := &Error{
		Code: code,
		Err:  err,
	}
	if msg != "" {
		e.Messages = append(e.Messages, fmt.Sprintf(msg, args...))
	}
	return e
}

// HasCode returns true if the error carries the given code
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return Extract(err).Code == code
}
