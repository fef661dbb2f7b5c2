package gormrepo

import (
	"context"

	offerDomain "loanledger-backend/internal/domain/offer"

	"gorm.io/gorm"
)

type OfferRepository struct{ db *gorm.DB }

func NewOfferRepository(db *gorm.DB) *OfferRepository { return &OfferRepository{db: db} }

func (r *OfferRepository) Create(ctx context.Context, o *offerDomain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) Save(ctx context.Context, o *offerDomain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OfferRepository) GetByOfferID(ctx context.Context, offerID string) (*offerDomain.Offer, error) {
	var out offerDomain.Offer
	res := r.db.WithContext(ctx).Where("offer_id = ?", offerID).First(&out)
	return &out, res.Error
}

func (r *OfferRepository) List(ctx context.Context) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *OfferRepository) ListByStatus(ctx context.Context, status offerDomain.Status) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *OfferRepository) ListByLenderID(ctx context.Context, lenderID string) ([]offerDomain.Offer, error) {
	var out []offerDomain.Offer
	err := r.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *OfferRepository) ReassignLender(ctx context.Context, fromLenderID, toLenderID, toName string) error {
	return r.db.WithContext(ctx).Model(&offerDomain.Offer{}).
		Where("lender_id = ?", fromLenderID).
		Updates(map[string]any{"lender_id": toLenderID, "lender_name": toName}).Error
}
