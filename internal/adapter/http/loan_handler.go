package http

import (
	"errors"
	"net/http"

	domainLoan "loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	BorrowerID            string  `json:"borrower_id"             validate:"required"`
	BorrowerName          string  `json:"borrower_name"`
	Amount                int64   `json:"amount"                  validate:"required,gt=0"`
	Purpose               string  `json:"purpose"                 validate:"required"`
	RequestedInterestRate float64 `json:"requested_interest_rate" validate:"gte=0,dec2"`
	Duration              int     `json:"duration"                validate:"required,gt=0"`
	CIBILScore            int     `json:"cibil_score"             validate:"gte=0,lte=900"`
	MonthlyIncome         int64   `json:"monthly_income"          validate:"gte=0"`
}

type riskEvaluationReq struct {
	Decision        string   `json:"decision"         validate:"required"`
	Reason          string   `json:"reason"`
	RecommendedRate *float64 `json:"recommended_rate" validate:"omitempty,gt=0,dec2"`
}

type offerTermsReq struct {
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
	Duration     int     `json:"duration"      validate:"gte=0"`
}

type lenderDecisionReq struct {
	Decision     string         `json:"decision" validate:"required"`
	LenderID     string         `json:"lender_id"`
	LenderName   string         `json:"lender_name"`
	MatchedOffer *offerTermsReq `json:"matched_offer"`
}

func (h *LoanHandler) ApplyLoan(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		BorrowerID:            req.BorrowerID,
		BorrowerName:          req.BorrowerName,
		Amount:                req.Amount,
		Purpose:               req.Purpose,
		RequestedInterestRate: req.RequestedInterestRate,
		Duration:              req.Duration,
		CIBILScore:            req.CIBILScore,
		MonthlyIncome:         req.MonthlyIncome,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

// RiskEvaluation records the analyst verdict. A miss is reported as a
// soft no-op, matching the source system's silent-update behavior.
func (h *LoanHandler) RiskEvaluation(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req riskEvaluationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.EvaluateRisk(c.Request().Context(), loan.RiskInput{
		LoanID:          loanID,
		Decision:        req.Decision,
		Reason:          req.Reason,
		RecommendedRate: req.RecommendedRate,
	})
	if err != nil {
		return loanMutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "loan": dto})
}

func (h *LoanHandler) LenderDecision(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req lenderDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := loan.DecisionInput{
		LoanID:     loanID,
		Decision:   req.Decision,
		LenderID:   req.LenderID,
		LenderName: req.LenderName,
	}
	if req.MatchedOffer != nil {
		in.MatchedOffer = &loan.OfferTerms{
			InterestRate: req.MatchedOffer.InterestRate,
			Duration:     req.MatchedOffer.Duration,
		}
	}

	dto, err := h.uc.LenderDecision(c.Request().Context(), in)
	if err != nil {
		return loanMutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "loan": dto})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		out []loan.LoanDTO
		err error
	)
	switch {
	case c.QueryParam("borrower_id") != "":
		out, err = h.uc.ListByBorrower(ctx, c.QueryParam("borrower_id"))
	case c.QueryParam("status") == string(domainLoan.StatusPendingAnalyst):
		out, err = h.uc.ListPendingAnalyst(ctx)
	default:
		out, err = h.uc.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Schedule(c echo.Context) error {
	rows, err := h.uc.Schedule(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, rows)
}

func loanMutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainLoan.ErrNotFound):
		return c.JSON(http.StatusOK, map[string]any{"applied": false})
	case errors.Is(err, domainLoan.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "invalid state transition"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
