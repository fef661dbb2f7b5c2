package report

import (
	"context"

	domainLoan "loanledger-backend/internal/domain/loan"
	domainPayment "loanledger-backend/internal/domain/payment"
)

// Repository is the read-only aggregate surface the summary needs.
type Repository interface {
	UsersByRole(ctx context.Context) (map[string]int64, error)
	LoansByStatus(ctx context.Context) (map[string]int64, error)
	SumLoanAmount(ctx context.Context, statuses []domainLoan.Status) (int64, error)
	SumRemainingBalance(ctx context.Context, statuses []domainLoan.Status) (int64, error)
	SumPaymentAmount(ctx context.Context, statuses []domainPayment.Status) (int64, error)
	LenderBalances(ctx context.Context) (map[string]int64, error)
}

type Summary struct {
	UsersByRole        map[string]int64 `json:"users_by_role"`
	LoansByStatus      map[string]int64 `json:"loans_by_status"`
	DisbursedPrincipal int64            `json:"disbursed_principal"`
	OutstandingBalance int64            `json:"outstanding_balance"`
	PaymentVolume      int64            `json:"payment_volume"`
	LenderBalances     map[string]int64 `json:"lender_balances"`
}

type Usecase struct{ repo Repository }

func NewUsecase(repo Repository) *Usecase { return &Usecase{repo: repo} }

// fundedStatuses are the loans whose principal has actually moved.
var fundedStatuses = []domainLoan.Status{
	domainLoan.StatusApproved,
	domainLoan.StatusActive,
	domainLoan.StatusClosed,
}

var settledPaymentStatuses = []domainPayment.Status{
	domainPayment.StatusCompleted,
	domainPayment.StatusVerified,
}

// Summary assembles the admin dashboard totals.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	users, err := u.repo.UsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.repo.LoansByStatus(ctx)
	if err != nil {
		return nil, err
	}
	disbursed, err := u.repo.SumLoanAmount(ctx, fundedStatuses)
	if err != nil {
		return nil, err
	}
	outstanding, err := u.repo.SumRemainingBalance(ctx, []domainLoan.Status{
		domainLoan.StatusApproved, domainLoan.StatusActive,
	})
	if err != nil {
		return nil, err
	}
	volume, err := u.repo.SumPaymentAmount(ctx, settledPaymentStatuses)
	if err != nil {
		return nil, err
	}
	balances, err := u.repo.LenderBalances(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		UsersByRole:        users,
		LoansByStatus:      loans,
		DisbursedPrincipal: disbursed,
		OutstandingBalance: outstanding,
		PaymentVolume:      volume,
		LenderBalances:     balances,
	}, nil
}
