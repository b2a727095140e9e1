// Package handlers provides HTTP handlers for the loan decision engine.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-decision-engine/internal/metrics"
	"loan-decision-engine/internal/models"
	"loan-decision-engine/internal/utils"
)

// DecisionService is the decision engine as seen by the HTTP layer.
type DecisionService interface {
	Decide(personalCode string, loanAmount, loanPeriod int) (models.Decision, error)
}

// DecisionHandler handles loan decision requests.
type DecisionHandler struct {
	service  DecisionService
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewDecisionHandler creates a new decision handler.
func NewDecisionHandler(service DecisionService, m *metrics.Metrics) *DecisionHandler {
	return &DecisionHandler{
		service:  service,
		metrics:  m,
		validate: validator.New(),
	}
}

// Register mounts the decision endpoint on the router.
func (h *DecisionHandler) Register(r chi.Router) {
	r.Post("/loan/decision", h.HandleDecision)
}

// DecisionResponse is the payload of a computed decision. On approval the
// amount and period are set; on rejection only the error message is.
type DecisionResponse struct {
	DecisionID   string `json:"decision_id"`
	LoanAmount   *int   `json:"loan_amount,omitempty"`
	LoanPeriod   *int   `json:"loan_period,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// HandleDecision processes POST /loan/decision requests.
func (h *DecisionHandler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	decisionID := uuid.New().String()
	log := utils.GetLogger().With(
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("decision_id", decisionID),
	)

	var req models.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, errorResponse("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Warn("request validation failed", zap.Error(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, validationErrorResponse(verrs))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, errorResponse("invalid request"))
		return
	}

	decision, err := h.service.Decide(req.PersonalCode, req.LoanAmount, req.LoanPeriod)

	h.metrics.ObserveLatency(time.Since(start))

	if err != nil {
		outcome, status := classifyDecisionError(err)
		h.metrics.IncrementOutcome(outcome)

		log.Info("loan rejected",
			zap.String("outcome", outcome),
			zap.Int("requested_amount", req.LoanAmount),
			zap.Int("requested_period", req.LoanPeriod),
		)

		w.WriteHeader(status)
		render.JSON(w, r, Response{
			Success: false,
			Data:    DecisionResponse{DecisionID: decisionID, ErrorMessage: err.Error()},
			Error:   err.Error(),
		})
		return
	}

	h.metrics.IncrementOutcome("approved")

	log.Info("loan approved",
		zap.Int("requested_amount", req.LoanAmount),
		zap.Int("requested_period", req.LoanPeriod),
		zap.Int("approved_amount", decision.LoanAmount),
		zap.Int("approved_period", decision.LoanPeriod),
		zap.Duration("duration", time.Since(start)),
	)

	render.JSON(w, r, okResponse(DecisionResponse{
		DecisionID: decisionID,
		LoanAmount: &decision.LoanAmount,
		LoanPeriod: &decision.LoanPeriod,
	}))
}

// classifyDecisionError maps a decision error to a metrics outcome label and
// an HTTP status. Input violations are 400, a business rejection is 404, and
// anything unexpected is 500.
func classifyDecisionError(err error) (string, int) {
	switch {
	case errors.Is(err, models.ErrInvalidPersonalCode):
		return "invalid_personal_code", http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidAge):
		return "invalid_age", http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidLoanAmount):
		return "invalid_loan_amount", http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidLoanPeriod):
		return "invalid_loan_period", http.StatusBadRequest
	case errors.Is(err, models.ErrNoValidLoan):
		return "no_valid_loan", http.StatusNotFound
	default:
		return "internal_error", http.StatusInternalServerError
	}
}
