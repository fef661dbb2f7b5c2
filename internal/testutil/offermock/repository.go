package offermock

import (
	"context"

	domain "loanledger-backend/internal/domain/offer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, o *domain.Offer) error
	SaveFn           func(ctx context.Context, o *domain.Offer) error
	GetByOfferIDFn   func(ctx context.Context, offerID string) (*domain.Offer, error)
	ListFn           func(ctx context.Context) ([]domain.Offer, error)
	ListByStatusFn   func(ctx context.Context, status domain.Status) ([]domain.Offer, error)
	ListByLenderIDFn func(ctx context.Context, lenderID string) ([]domain.Offer, error)
	ReassignLenderFn func(ctx context.Context, fromLenderID, toLenderID, toName string) error
}

func (m *Repo) Create(ctx context.Context, o *domain.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, o *domain.Offer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOfferID(ctx context.Context, offerID string) (*domain.Offer, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Offer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Offer, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) ListByLenderID(ctx context.Context, lenderID string) ([]domain.Offer, error) {
	if m.ListByLenderIDFn != nil {
		return m.ListByLenderIDFn(ctx, lenderID)
	}
	return nil, nil
}

func (m *Repo) ReassignLender(ctx context.Context, fromLenderID, toLenderID, toName string) error {
	if m.ReassignLenderFn != nil {
		return m.ReassignLenderFn(ctx, fromLenderID, toLenderID, toName)
	}
	return nil
}
