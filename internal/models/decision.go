// Package models defines the data structures for the loan decision engine.
package models

// CreditSegment classifies an applicant by the last four digits of their
// personal code.
type CreditSegment string

const (
	SegmentDebt CreditSegment = "debt"
	Segment1    CreditSegment = "segment_1"
	Segment2    CreditSegment = "segment_2"
	Segment3    CreditSegment = "segment_3"
)

// LoanRequest is the input to a single decision computation.
type LoanRequest struct {
	PersonalCode string `json:"personal_code" validate:"required"`
	LoanAmount   int    `json:"loan_amount"`
	LoanPeriod   int    `json:"loan_period"`
}

// Decision is a positive decision: the maximum amount the applicant is
// approved for and the period it was found at. Negative outcomes are
// returned as errors (see errors.go), never as a partially filled Decision.
type Decision struct {
	LoanAmount int `json:"loan_amount"`
	LoanPeriod int `json:"loan_period"`
}
