// Package handlers provides HTTP handlers for the loan decision engine.
package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response represents a standard API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// okResponse wraps data in a successful Response.
func okResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// errorResponse builds a failed Response with the given message.
func errorResponse(msg string) Response {
	return Response{
		Success: false,
		Error:   msg,
	}
}

// validationErrorResponse turns validator violations into a human-readable
// error Response, one fragment per failed field.
func validationErrorResponse(errs validator.ValidationErrors) Response {
	var msgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "numeric":
			msgs = append(msgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		case "len":
			msgs = append(msgs, fmt.Sprintf("field %s must be %s characters long", err.Field(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Response{
		Success: false,
		Error:   strings.Join(msgs, ", "),
	}
}
