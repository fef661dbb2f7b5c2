package offer

import "time"

type CreateInput struct {
	// OfferID is optional; a fresh OFFER-xxxx id is generated when empty.
	OfferID      string  `json:"offer_id"`
	LenderID     string  `json:"lender_id"`
	LenderName   string  `json:"lender_name"`
	Amount       int64   `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	Duration     int     `json:"duration"`
	MaxBorrowers int     `json:"max_borrowers"`
	RiskTier     string  `json:"risk_tier"`
	Description  string  `json:"description"`
}

// ResubmitInput carries the lender's edits on a revision round; zero
// values leave the stored field untouched.
type ResubmitInput struct {
	OfferID      string  `json:"offer_id"`
	Amount       int64   `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	Duration     int     `json:"duration"`
	Description  string  `json:"description"`
}

type OfferDTO struct {
	OfferID        string    `json:"offer_id"`
	LenderID       string    `json:"lender_id"`
	LenderName     string    `json:"lender_name"`
	Amount         int64     `json:"amount"`
	InterestRate   float64   `json:"interest_rate"`
	Duration       int       `json:"duration"`
	MaxBorrowers   int       `json:"max_borrowers,omitempty"`
	RiskTier       string    `json:"risk_tier,omitempty"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	RevisionReason string    `json:"revision_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
