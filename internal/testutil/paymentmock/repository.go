package paymentmock

import (
	"context"

	domain "loanledger-backend/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, p *domain.Payment) error
	SaveFn             func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn   func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListFn             func(ctx context.Context) ([]domain.Payment, error)
	ListByLoanIDFn     func(ctx context.Context, loanID string) ([]domain.Payment, error)
	ListByBorrowerIDFn func(ctx context.Context, borrowerID string) ([]domain.Payment, error)
	ReassignBorrowerFn func(ctx context.Context, fromBorrowerID, toBorrowerID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Payment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) ListByBorrowerID(ctx context.Context, borrowerID string) ([]domain.Payment, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, nil
}

func (m *Repo) ReassignBorrower(ctx context.Context, fromBorrowerID, toBorrowerID string) error {
	if m.ReassignBorrowerFn != nil {
		return m.ReassignBorrowerFn(ctx, fromBorrowerID, toBorrowerID)
	}
	return nil
}
