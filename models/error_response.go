package models

import "net/http"

// ErrorResponse is an error that carries the HTTP status it should be reported with.
type ErrorResponse struct {
	StatusCode int
	Message    string
}

func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: statusCode, Message: message}
}

func BadRequest(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusBadRequest, message)
}

func NotFound(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusNotFound, message)
}

func (e *ErrorResponse) Error() string {
	return e.Message
}
