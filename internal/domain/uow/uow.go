package uow

import (
	"context"

	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/offer"
	"loanledger-backend/internal/domain/payment"
	"loanledger-backend/internal/domain/user"
)

type Repos struct {
	Users    user.Repository
	Loans    loan.Repository
	Offers   offer.Repository
	Payments payment.Repository
	Ledger   ledger.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
