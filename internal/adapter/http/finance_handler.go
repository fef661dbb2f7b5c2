package http

import (
	"errors"
	"net/http"
	"strconv"

	"loanledger-backend/pkg/finance"

	"github.com/labstack/echo/v4"
)

// FinanceHandler exposes the stateless calculator endpoints. Inputs come
// as query params so the UI can call them without a body.
type FinanceHandler struct{}

func NewFinanceHandler() *FinanceHandler { return &FinanceHandler{} }

func (h *FinanceHandler) EMI(c echo.Context) error {
	principal, rate, months, err := calculatorParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, finance.ComputeEMI(principal, rate, months))
}

func (h *FinanceHandler) Schedule(c echo.Context) error {
	principal, rate, months, err := calculatorParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, finance.AmortizationSchedule(principal, rate, months))
}

func (h *FinanceHandler) Earnings(c echo.Context) error {
	principal, rate, months, err := calculatorParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, finance.LenderEarnings(principal, rate, months))
}

func calculatorParams(c echo.Context) (principal int64, rate float64, months int, err error) {
	principal, err = strconv.ParseInt(c.QueryParam("principal"), 10, 64)
	if err != nil {
		return 0, 0, 0, errors.New("invalid principal")
	}
	rate, err = strconv.ParseFloat(c.QueryParam("rate"), 64)
	if err != nil {
		return 0, 0, 0, errors.New("invalid rate")
	}
	months, err = strconv.Atoi(c.QueryParam("months"))
	if err != nil {
		return 0, 0, 0, errors.New("invalid months")
	}
	return principal, rate, months, nil
}
