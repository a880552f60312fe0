package types

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error
type ErrorType string

// Error types
const (
	ConfigError ErrorType = "config"
	DecodeError ErrorType = "decode"
	ParseError  ErrorType = "parse"
	IOError     ErrorType = "io"
)

// Common errors that can be used throughout the library
var (
	ErrDocumentLarge   = errors.New("document too large")
	ErrBinaryContent   = errors.New("document is not text")
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Error tags an underlying error with its category and the function that
// produced it.
type Error struct {
	Type    ErrorType
	Func    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s:%s] %v", e.Type, e.Func, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Func, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with context information
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Func: funcName, Message: message, Err: err}
}

// WrapConfigError wraps a configuration error
func WrapConfigError(err error, funcName, message string) error {
	return WrapError(err, ConfigError, funcName, message)
}

// WrapDecodeError wraps a decoding error
func WrapDecodeError(err error, funcName, message string) error {
	return WrapError(err, DecodeError, funcName, message)
}

// WrapParseError wraps a parsing error
func WrapParseError(err error, funcName, message string) error {
	return WrapError(err, ParseError, funcName, message)
}

// WrapIOError wraps a read error
func WrapIOError(err error, funcName, message string) error {
	return WrapError(err, IOError, funcName, message)
}

// IsErrorType checks if any error in the chain is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Type == errorType {
			return true
		}
		err = e.Err
	}
	return false
}

// IsConfigError returns true if the error is a configuration error
func IsConfigError(err error) bool {
	return IsErrorType(err, ConfigError)
}

// IsDecodeError returns true if the error is a decoding error
func IsDecodeError(err error) bool {
	return IsErrorType(err, DecodeError)
}
