package ledgermock

import (
	"context"

	domain "loanledger-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AddFundsFn      func(ctx context.Context, lenderName string, amount int64) (*domain.LenderBalance, error)
	GetBalanceFn    func(ctx context.Context, lenderName string) (*domain.LenderBalance, error)
	RenameBalanceFn func(ctx context.Context, fromName, toName string) error
	CreateBalanceFn func(ctx context.Context, b *domain.LenderBalance) error
	ListBalancesFn  func(ctx context.Context) ([]domain.LenderBalance, error)
	CreateLogFn     func(ctx context.Context, l *domain.AuditLog) error
	ListLogsFn      func(ctx context.Context) ([]domain.AuditLog, error)
}

func (m *Repo) AddFunds(ctx context.Context, lenderName string, amount int64) (*domain.LenderBalance, error) {
	if m.AddFundsFn != nil {
		return m.AddFundsFn(ctx, lenderName, amount)
	}
	return &domain.LenderBalance{LenderName: lenderName, Balance: amount}, nil
}

func (m *Repo) GetBalance(ctx context.Context, lenderName string) (*domain.LenderBalance, error) {
	if m.GetBalanceFn != nil {
		return m.GetBalanceFn(ctx, lenderName)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) RenameBalance(ctx context.Context, fromName, toName string) error {
	if m.RenameBalanceFn != nil {
		return m.RenameBalanceFn(ctx, fromName, toName)
	}
	return nil
}

func (m *Repo) CreateBalance(ctx context.Context, b *domain.LenderBalance) error {
	if m.CreateBalanceFn != nil {
		return m.CreateBalanceFn(ctx, b)
	}
	return nil
}

func (m *Repo) ListBalances(ctx context.Context) ([]domain.LenderBalance, error) {
	if m.ListBalancesFn != nil {
		return m.ListBalancesFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CreateLog(ctx context.Context, l *domain.AuditLog) error {
	if m.CreateLogFn != nil {
		return m.CreateLogFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListLogs(ctx context.Context) ([]domain.AuditLog, error) {
	if m.ListLogsFn != nil {
		return m.ListLogsFn(ctx)
	}
	return nil, nil
}
