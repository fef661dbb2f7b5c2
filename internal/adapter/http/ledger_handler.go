package http

import (
	"net/http"

	"loanledger-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type addFundsReq struct {
	LenderName string `json:"lender_name" validate:"required"`
	Amount     int64  `json:"amount"      validate:"required,gt=0"`
}

func (h *LedgerHandler) AddFunds(c echo.Context) error {
	var req addFundsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	balance, err := h.uc.AddFunds(c.Request().Context(), req.LenderName, req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "balance": balance})
}

func (h *LedgerHandler) ListBalances(c echo.Context) error {
	balances, err := h.uc.Balances(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "query failed"})
	}
	return c.JSON(http.StatusOK, balances)
}

func (h *LedgerHandler) ListAuditLogs(c echo.Context) error {
	logs, err := h.uc.AuditLogs(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "query failed"})
	}
	return c.JSON(http.StatusOK, logs)
}
