package offer

import (
	"context"
	"errors"
	"fmt"

	domainOffer "loanledger-backend/internal/domain/offer"
	"loanledger-backend/internal/notification"
	"loanledger-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo   domainOffer.Repository
	notify notification.Publisher
}

func NewUsecase(repo domainOffer.Repository, notify notification.Publisher) *Usecase {
	return &Usecase{repo: repo, notify: notify}
}

// Create files a lender offer; it stays pending-analyst until verified.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*OfferDTO, error) {
	if in.LenderID == "" || in.Amount <= 0 || in.Duration <= 0 || in.InterestRate <= 0 {
		return nil, errors.New("invalid input")
	}

	offerID := in.OfferID
	if offerID == "" {
		offerID = id.NewTimeSuffixID("OFFER")
	}

	o := &domainOffer.Offer{
		OfferID:      offerID,
		LenderID:     in.LenderID,
		LenderName:   in.LenderName,
		Amount:       in.Amount,
		InterestRate: in.InterestRate,
		Duration:     in.Duration,
		MaxBorrowers: in.MaxBorrowers,
		RiskTier:     in.RiskTier,
		Description:  in.Description,
		Status:       domainOffer.StatusPendingAnalyst,
	}
	if err := u.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	if u.notify != nil {
		u.notify.Publish(ctx, "Offer Created",
			fmt.Sprintf("%s listed %s for verification", o.LenderName, o.OfferID), "info")
	}
	return toDTO(o), nil
}

// AnalystVerify publishes a pending offer to the borrower marketplace.
func (u *Usecase) AnalystVerify(ctx context.Context, offerID string) (*OfferDTO, error) {
	return u.move(ctx, offerID, domainOffer.StatusPendingAnalyst, domainOffer.StatusAvailable, "")
}

// RequestRevision sends a pending offer back to its lender with a note.
func (u *Usecase) RequestRevision(ctx context.Context, offerID, reason string) (*OfferDTO, error) {
	if reason == "" {
		return nil, errors.New("revision reason required")
	}
	return u.move(ctx, offerID, domainOffer.StatusPendingAnalyst, domainOffer.StatusNeedsRevision, reason)
}

// Resubmit applies the lender's edits and queues the offer for analyst
// review again.
func (u *Usecase) Resubmit(ctx context.Context, in ResubmitInput) (*OfferDTO, error) {
	o, err := u.repo.GetByOfferID(ctx, in.OfferID)
	if err != nil {
		return nil, mapMiss(err)
	}
	if o.Status != domainOffer.StatusNeedsRevision {
		return nil, domainOffer.ErrInvalidTransition
	}

	if in.Amount > 0 {
		o.Amount = in.Amount
	}
	if in.InterestRate > 0 {
		o.InterestRate = in.InterestRate
	}
	if in.Duration > 0 {
		o.Duration = in.Duration
	}
	if in.Description != "" {
		o.Description = in.Description
	}
	o.Status = domainOffer.StatusPendingAnalyst
	o.RevisionReason = ""

	if err := u.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return toDTO(o), nil
}

// ListAvailable returns the offers borrowers can browse.
func (u *Usecase) ListAvailable(ctx context.Context) ([]OfferDTO, error) {
	offers, err := u.repo.ListByStatus(ctx, domainOffer.StatusAvailable)
	if err != nil {
		return nil, err
	}
	return toDTOs(offers), nil
}

func (u *Usecase) List(ctx context.Context) ([]OfferDTO, error) {
	offers, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(offers), nil
}

func (u *Usecase) ListByLender(ctx context.Context, lenderID string) ([]OfferDTO, error) {
	offers, err := u.repo.ListByLenderID(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	return toDTOs(offers), nil
}

func (u *Usecase) move(ctx context.Context, offerID string, from, to domainOffer.Status, reason string) (*OfferDTO, error) {
	o, err := u.repo.GetByOfferID(ctx, offerID)
	if err != nil {
		return nil, mapMiss(err)
	}
	if o.Status != from {
		return nil, domainOffer.ErrInvalidTransition
	}
	o.Status = to
	o.RevisionReason = reason
	if err := u.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	if u.notify != nil && to == domainOffer.StatusAvailable {
		u.notify.Publish(ctx, "Offer Published",
			fmt.Sprintf("%s is now available to borrowers", o.OfferID), "success")
	}
	return toDTO(o), nil
}

func mapMiss(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainOffer.ErrNotFound
	}
	return err
}

func toDTO(o *domainOffer.Offer) *OfferDTO {
	return &OfferDTO{
		OfferID:        o.OfferID,
		LenderID:       o.LenderID,
		LenderName:     o.LenderName,
		Amount:         o.Amount,
		InterestRate:   o.InterestRate,
		Duration:       o.Duration,
		MaxBorrowers:   o.MaxBorrowers,
		RiskTier:       o.RiskTier,
		Description:    o.Description,
		Status:         string(o.Status),
		RevisionReason: o.RevisionReason,
		CreatedAt:      o.CreatedAt,
	}
}

func toDTOs(offers []domainOffer.Offer) []OfferDTO {
	out := make([]OfferDTO, 0, len(offers))
	for i := range offers {
		out = append(out, *toDTO(&offers[i]))
	}
	return out
}
