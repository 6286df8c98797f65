package serverutils

import (
	"fmt"
	"net/http"
)

// ApiError is an error a controller can return to pick its own HTTP status.
// Anything else that escapes the handler chain becomes a 500.
type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func NewApiError(code int, message, detail string) *ApiError {
	return &ApiError{Code: code, Message: message, Detail: detail}
}

func ErrBadRequest(detail string) *ApiError {
	return NewApiError(http.StatusBadRequest, "Bad Request", detail)
}

func ErrNotFound(detail string) *ApiError {
	return NewApiError(http.StatusNotFound, "Not Found", detail)
}

func ErrConflict(detail string) *ApiError {
	return NewApiError(http.StatusConflict, "Conflict", detail)
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}
