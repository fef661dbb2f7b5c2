package offer

import "context"

type Repository interface {
	Create(ctx context.Context, o *Offer) error
	Save(ctx context.Context, o *Offer) error
	GetByOfferID(ctx context.Context, offerID string) (*Offer, error)
	List(ctx context.Context) ([]Offer, error)
	ListByStatus(ctx context.Context, status Status) ([]Offer, error)
	ListByLenderID(ctx context.Context, lenderID string) ([]Offer, error)
	ReassignLender(ctx context.Context, fromLenderID, toLenderID, toName string) error
}
