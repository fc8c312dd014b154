package pkg

import (
	"fmt"

	"golang.org/x/text/message"
)

// AppError is a domain error carrying the HTTP status it maps to.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body returned for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError never exposes the wrapped error.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// Localized is ToHTTPError with the message translated by p.
func (e *AppError) Localized(p *message.Printer) HTTPError {
	if p == nil {
		return e.ToHTTPError()
	}
	return HTTPError{Code: e.Code, Message: p.Sprintf(e.Message)}
}
