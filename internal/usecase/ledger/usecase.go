package ledger

import (
	"context"
	"errors"
	"fmt"

	domainLedger "loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/notification"
)

type Usecase struct {
	repo   domainLedger.Repository
	notify notification.Publisher
}

func NewUsecase(repo domainLedger.Repository, notify notification.Publisher) *Usecase {
	return &Usecase{repo: repo, notify: notify}
}

// AddFunds tops up a lender's capital balance, creating the row on first
// deposit.
func (u *Usecase) AddFunds(ctx context.Context, lenderName string, amount int64) (*domainLedger.LenderBalance, error) {
	if lenderName == "" || amount <= 0 {
		return nil, errors.New("invalid input")
	}
	b, err := u.repo.AddFunds(ctx, lenderName, amount)
	if err != nil {
		return nil, err
	}

	if u.notify != nil {
		u.notify.Publish(ctx, "Funds Added",
			fmt.Sprintf("%s deposited %d", lenderName, amount), "success")
	}
	return b, nil
}

func (u *Usecase) Balances(ctx context.Context) ([]domainLedger.LenderBalance, error) {
	return u.repo.ListBalances(ctx)
}

func (u *Usecase) AuditLogs(ctx context.Context) ([]domainLedger.AuditLog, error) {
	return u.repo.ListLogs(ctx)
}
