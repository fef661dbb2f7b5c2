package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"testing"

	domainLoan "loanledger-backend/internal/domain/loan"
	domainPayment "loanledger-backend/internal/domain/payment"
	uc "loanledger-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type staticReportRepo struct{ fail bool }

func (s *staticReportRepo) UsersByRole(ctx context.Context) (map[string]int64, error) {
	if s.fail {
		return nil, errors.New("db down")
	}
	return map[string]int64{"borrower": 5, "lender": 3}, nil
}

func (s *staticReportRepo) LoansByStatus(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{"active": 2, "closed": 1}, nil
}

func (s *staticReportRepo) SumLoanAmount(ctx context.Context, statuses []domainLoan.Status) (int64, error) {
	return 650000, nil
}

func (s *staticReportRepo) SumRemainingBalance(ctx context.Context, statuses []domainLoan.Status) (int64, error) {
	return 420000, nil
}

func (s *staticReportRepo) SumPaymentAmount(ctx context.Context, statuses []domainPayment.Status) (int64, error) {
	return 84000, nil
}

func (s *staticReportRepo) LenderBalances(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{"Capital Partner A": 1_500_000}, nil
}

func TestReportSummary(t *testing.T) {
	e := echo.New()
	h := NewReportHandler(uc.NewUsecase(&staticReportRepo{}))

	req := newGetRequest(e, "/reports/summary")
	if err := h.Summary(req.ctx); err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if req.rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", req.rec.Code)
	}
	var s uc.Summary
	if err := json.Unmarshal(req.rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if s.DisbursedPrincipal != 650000 || s.OutstandingBalance != 420000 || s.PaymentVolume != 84000 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.UsersByRole["borrower"] != 5 {
		t.Fatalf("users_by_role missing: %+v", s.UsersByRole)
	}
}

func TestReportSummary_RepoFailure(t *testing.T) {
	e := echo.New()
	h := NewReportHandler(uc.NewUsecase(&staticReportRepo{fail: true}))

	req := newGetRequest(e, "/reports/summary")
	if err := h.Summary(req.ctx); err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if req.rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", req.rec.Code)
	}
}
