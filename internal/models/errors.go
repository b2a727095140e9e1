// Package models defines the data structures for the loan decision engine.
package models

import "errors"

// Decision errors. The message texts are user-facing and are rendered
// verbatim by the HTTP layer.
var (
	ErrInvalidPersonalCode = errors.New("Invalid personal ID code!")
	ErrInvalidAge          = errors.New("You are not approved for a loan due to age.")
	ErrInvalidLoanAmount   = errors.New("Invalid loan amount!")
	ErrInvalidLoanPeriod   = errors.New("Invalid loan period!")
	ErrNoValidLoan         = errors.New("You are not approved for a loan.")
)
