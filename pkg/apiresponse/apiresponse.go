// Package apiresponse implements the uniform response envelope used by every
// portal API endpoint. The transport status is always 200; the real outcome
// lives in the body's errorCode field.
package apiresponse

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the envelope's errorCode field.
const (
	CodeSuccess             = 0
	CodeUserNotExist        = 101
	CodeInvalidPassword     = 102
	CodeUserDisabled        = 103
	CodeTokenGenerateFailed = 104
	CodeUnauthorized        = 401
	CodeForbidden           = 403
	CodeNotFound            = 404
	CodeUserAlreadyExist    = 409
	CodeValidationError     = 422
	CodeServerError         = 500
)

// Response is the envelope wrapping every API payload.
type Response struct {
	Status    int    `json:"status"`
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
}

// Success wraps data in a success envelope.
func Success(data any, message string) *Response {
	return &Response{
		Status:    http.StatusOK,
		ErrorCode: CodeSuccess,
		Message:   message,
		Data:      data,
	}
}

// Error builds an error envelope. Data is always null for errors.
func Error(errorCode int, message string) *Response {
	return &Response{
		Status:    http.StatusOK,
		ErrorCode: errorCode,
		Message:   message,
		Data:      nil,
	}
}

// ValidationError builds a 422 envelope with a field-specific message.
func ValidationError(message string) *Response {
	return Error(CodeValidationError, message)
}

// NotFound builds a 404 envelope.
func NotFound(message string) *Response {
	return Error(CodeNotFound, message)
}

// ServerError builds a 500 envelope with a generic message.
func ServerError(message string) *Response {
	if message == "" {
		message = "internal server error"
	}
	return Error(CodeServerError, message)
}

// Write serializes the envelope. The HTTP status is always 200 regardless of
// the outcome carried in the body.
func Write(w http.ResponseWriter, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
