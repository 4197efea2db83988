package domain

import (
	"errors"
	"net/http"
)

// Error codes carried by AppError.
const (
	CodeNotFound          = 1
	CodeAlreadyExists     = 2
	CodeValidation        = 3
	CodeInternal          = 4
	CodeInsufficientStock = 5
)

// AppError is a business error with a code, a client-facing message and an
// optional wrapped cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Sentinel errors. Match categories with the Is* helpers, which compare
// codes, rather than errors.Is, which compares pointers.
var (
	ErrNotFound          = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrAlreadyExists     = &AppError{Code: CodeAlreadyExists, Message: "already exists"}
	ErrValidation        = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrInternal          = &AppError{Code: CodeInternal, Message: "internal error"}
	ErrInsufficientStock = &AppError{Code: CodeInsufficientStock, Message: "insufficient stock"}
)

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists reports whether err is or wraps an AppError with CodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// IsInsufficientStock reports whether err is or wraps an AppError with
// CodeInsufficientStock.
func IsInsufficientStock(err error) bool {
	return hasCode(err, CodeInsufficientStock)
}

func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps an error to an HTTP status. Anything that is not an
// *AppError is a 500.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeAlreadyExists:
			return http.StatusConflict
		case CodeValidation:
			return http.StatusBadRequest
		case CodeInsufficientStock:
			return http.StatusUnprocessableEntity
		case CodeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
