package pkg

import "fmt"

// AppError is the application-level error carried from handlers to the wire.
//
// Code identifies the failure for logs; the HTTP body exposes only the
// human-readable message (pt-BR), matching the public contract.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON error body: {"mensagem": "..."}.
type HTTPError struct {
	Mensagem string `json:"mensagem"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Mensagem: e.Message}
}
