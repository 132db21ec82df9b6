// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns the message suffix of a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return fmt.Sprintf(" must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf(" must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf(" must be one of [%s]", fe.Param())
	case "amount":
		return " must be a positive amount with at most 2 decimal places"
	}

	return " is invalid"
}

// BindErrorMsg turns a binding error into a client message.
// Validation errors report their first field; anything else means a malformed body.
func BindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return "malformed request"
}
