package http

import (
	"errors"
	"net/http"

	domainPayment "loanledger-backend/internal/domain/payment"
	"loanledger-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type addPaymentReq struct {
	LoanID     string `json:"loan_id"     validate:"required"`
	BorrowerID string `json:"borrower_id"`
	Amount     int64  `json:"amount"      validate:"required,gt=0"`
	Method     string `json:"method"`
}

func (h *PaymentHandler) AddPayment(c echo.Context) error {
	var req addPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Add(c.Request().Context(), payment.AddInput{
		LoanID:     req.LoanID,
		BorrowerID: req.BorrowerID,
		Amount:     req.Amount,
		Method:     req.Method,
	})
	if err != nil {
		return paymentMutationError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	dto, err := h.uc.Verify(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return paymentMutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "payment": dto})
}

func (h *PaymentHandler) RejectPayment(c echo.Context) error {
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return paymentMutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "payment": dto})
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		out []payment.PaymentDTO
		err error
	)
	switch {
	case c.QueryParam("loan_id") != "":
		out, err = h.uc.ListByLoan(ctx, c.QueryParam("loan_id"))
	case c.QueryParam("borrower_id") != "":
		out, err = h.uc.ListByBorrower(ctx, c.QueryParam("borrower_id"))
	default:
		out, err = h.uc.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

func paymentMutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainPayment.ErrNotFound):
		return c.JSON(http.StatusOK, map[string]any{"applied": false})
	case errors.Is(err, domainPayment.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "invalid state transition"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
