package pkg

import "log"

// AppError is the HTTP-facing error envelope used by handlers.
//
// Code is a stable machine-readable identifier, Message is safe for end
// users, Err (optional) keeps the underlying cause for logging only.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body returned to clients. Details carries the
// structured remediation payload (flagged items, required verification
// kinds, remaining balance) when the rejection has one.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	if err != nil {
		log.Printf("[error] code=%s cause=%v", code, err)
	}
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// ToHTTPErrorWithDetails attaches a structured payload to the response body.
func (e *AppError) ToHTTPErrorWithDetails(details any) HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: details}
}
