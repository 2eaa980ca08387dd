package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode says why a quiz or account operation failed. The HTTP layer maps
// each code to one status.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeConflict           ErrorCode = "conflict"
	CodeUnauthorized       ErrorCode = "unauthorized"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Error tags a failure with its code and the operation that raised it.
// Cause stays reachable through errors.Is and errors.As.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

// Error renders "op: message (code)", dropping whichever parts are empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	head := e.Op
	if e.Message != "" {
		if head != "" {
			head += ": "
		}
		head += e.Message
	}
	if head == "" {
		return string(e.Code)
	}
	return head + " (" + string(e.Code) + ")"
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap gives err a code, reusing its text as the message.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// Invalid is a validation failure raised before anything is written.
func Invalid(op, message string) error {
	return NewError(CodeValidation, op, message, nil)
}

// QuizNotFound is returned for missing quizzes and for quizzes owned by
// someone else, so foreign ids look the same as missing ones.
func QuizNotFound(op string, quizID uint) error {
	return NewError(CodeNotFound, op, fmt.Sprintf("quiz %d not found", quizID), nil)
}

// CodeOf returns the code of the outermost *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsCode(err error, code ErrorCode) bool { return err != nil && CodeOf(err) == code }

func IsNotFound(err error) bool { return IsCode(err, CodeNotFound) }
