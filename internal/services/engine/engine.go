// Package engine implements the loan decision algorithm: input validation,
// credit segment lookup, credit score computation and the search for the
// highest approvable amount and period.
package engine

import (
	"math"
	"time"

	"go.uber.org/zap"

	"loan-decision-engine/internal/config"
	"loan-decision-engine/internal/models"
	"loan-decision-engine/internal/personalcode"
	"loan-decision-engine/internal/utils"
)

// Engine computes loan decisions. It holds configuration only; all
// per-request state (including the credit modifier) lives in locals, so a
// single Engine is safe for concurrent use.
type Engine struct {
	cfg *config.Config

	// now is the clock used for age computation. Tests pin it.
	now func() time.Time
}

// New creates a decision engine with the given configuration.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg: cfg,
		now: time.Now,
	}
}

// Decide calculates the maximum approvable loan amount and period for the
// applicant identified by personalCode, given the requested amount and
// period in months.
//
// The approved amount may exceed the requested one when the applicant's
// segment allows it, and the approved period may exceed the requested one
// when no amount is approvable at it. Negative outcomes are returned as one
// of the models.Err* values.
func (e *Engine) Decide(personalCode string, loanAmount, loanPeriod int) (models.Decision, error) {
	if err := e.verifyInputs(personalCode, loanAmount, loanPeriod); err != nil {
		return models.Decision{}, err
	}

	segment, modifier := e.creditSegment(personalCode)
	if modifier == 0 {
		// Debt segment: never approved, no amount of searching helps.
		return models.Decision{}, models.ErrNoValidLoan
	}

	period := loanPeriod
	highest := e.highestValidAmount(modifier, period, loanAmount)
	for highest < e.cfg.MinLoanAmount {
		period++
		if period > e.cfg.MaxLoanPeriod {
			return models.Decision{}, models.ErrNoValidLoan
		}
		highest = e.highestValidAmount(modifier, period, loanAmount)
	}

	if highest > e.cfg.MaxLoanAmount {
		highest = e.cfg.MaxLoanAmount
	}

	utils.GetLogger().Debug("loan decision computed",
		zap.String("segment", string(segment)),
		zap.Int("requested_amount", loanAmount),
		zap.Int("requested_period", loanPeriod),
		zap.Int("approved_amount", highest),
		zap.Int("approved_period", period),
	)

	return models.Decision{LoanAmount: highest, LoanPeriod: period}, nil
}

// verifyInputs checks the request against business rules, failing fast with
// the first violation. The order (personal code, age, amount, period)
// determines which message the applicant sees.
func (e *Engine) verifyInputs(personalCode string, loanAmount, loanPeriod int) error {
	if !personalcode.IsValid(personalCode) {
		return models.ErrInvalidPersonalCode
	}

	age, err := personalcode.Age(personalCode, e.now())
	if err != nil {
		return models.ErrInvalidPersonalCode
	}
	if age < e.cfg.MinAge || age > e.cfg.MaxAge {
		return models.ErrInvalidAge
	}

	if loanAmount < e.cfg.MinLoanAmount || loanAmount > e.cfg.MaxLoanAmount {
		return models.ErrInvalidLoanAmount
	}

	if loanPeriod < e.cfg.MinLoanPeriod || loanPeriod > e.cfg.MaxLoanPeriod {
		return models.ErrInvalidLoanPeriod
	}

	return nil
}

// creditSegment maps the last four digits of the personal code to the
// applicant's segment and its credit modifier:
//
//	0000-2499  debt       modifier 0
//	2500-4999  segment 1
//	5000-7499  segment 2
//	7500-9999  segment 3
func (e *Engine) creditSegment(personalCode string) (models.CreditSegment, int) {
	tail := 0
	for _, r := range personalCode[len(personalCode)-4:] {
		tail = tail*10 + int(r-'0')
	}

	switch {
	case tail < 2500:
		return models.SegmentDebt, 0
	case tail < 5000:
		return models.Segment1, e.cfg.Segment1Modifier
	case tail < 7500:
		return models.Segment2, e.cfg.Segment2Modifier
	default:
		return models.Segment3, e.cfg.Segment3Modifier
	}
}

// creditScore is the eligibility ratio for a given modifier, period and
// amount. A combination is approvable when the score is at least 1.
func creditScore(modifier, period, amount int) float64 {
	return float64(modifier) * float64(period) / float64(amount)
}

// highestValidAmount finds the largest approvable amount at a fixed period
// by walking the requested amount in AmountStep increments until the score
// crosses the approval threshold, then snapping the result down to the step
// grid: floor(modifier * period / score / step) * step.
//
// The caller guarantees modifier > 0. A result of 0 means no amount at or
// above one step is approvable at this period.
func (e *Engine) highestValidAmount(modifier, period, loanAmount int) int {
	step := e.cfg.AmountStep
	amount := loanAmount
	score := creditScore(modifier, period, amount)

	switch {
	case score > 1:
		// Requested amount under-uses eligibility: walk up until the
		// score is no longer above the threshold.
		for score > 1 {
			amount += step
			score = creditScore(modifier, period, amount)
		}
	case score < 1:
		// Requested amount exceeds eligibility: walk down until the
		// score reaches the threshold. The zero floor keeps the walk
		// finite for any configured step size.
		for score < 1 {
			amount -= step
			if amount <= 0 {
				return 0
			}
			score = creditScore(modifier, period, amount)
		}
	}

	fstep := float64(step)
	return int(math.Floor(float64(modifier)*float64(period)/score/fstep) * fstep)
}
