package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindNotFound         Kind = "NOT_FOUND"
	KindInvalidReference Kind = "INVALID_REFERENCE"
	KindConnectivity     Kind = "CONNECTIVITY"
	KindExecution        Kind = "EXECUTION"
)

// MsgConnectionFailed is the only text clients see for connectivity errors.
const MsgConnectionFailed = "Database connection failed"

type Error struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StackTrace() []byte {
	return e.Stack
}

func New(kind Kind, message string, err error) *Error {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Validation(message string) *Error {
	return New(KindValidation, message, nil)
}

func NotFound(message string, err error) *Error {
	return New(KindNotFound, message, err)
}

func InvalidReference(message string, err error) *Error {
	return New(KindInvalidReference, message, err)
}

func Connectivity(err error) *Error {
	return New(KindConnectivity, MsgConnectionFailed, err)
}

// Execution keeps the driver's text as the client message.
func Execution(err error) *Error {
	return New(KindExecution, err.Error(), err)
}

// As extracts an *Error from err. Anything that is not one is reported as an
// execution error so callers never have to handle a third case.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Execution(err)
}

// HTTPStatus maps a kind to the response code handlers send.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindInvalidReference:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
