package offer

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingAnalyst Status = "pending-analyst"
	StatusAvailable      Status = "available"
	StatusNeedsRevision  Status = "needsRevision"
)

var (
	ErrNotFound          = errors.New("offer not found")
	ErrInvalidTransition = errors.New("invalid offer state transition")
)

// Offer is a standing lender-defined loan template. Borrowers only see
// offers once an analyst has verified them (status available).
type Offer struct {
	ID           uint64  `gorm:"primaryKey;column:id" json:"-"`
	OfferID      string  `gorm:"size:32;uniqueIndex:ux_offers_offer_id_active" json:"offer_id"`
	LenderID     string  `gorm:"size:64;index" json:"lender_id"`
	LenderName   string  `gorm:"size:128" json:"lender_name"`
	Amount       int64   `json:"amount"`
	InterestRate float64 `gorm:"type:decimal(6,2)" json:"interest_rate"`
	Duration     int     `json:"duration"`
	MaxBorrowers int     `json:"max_borrowers"`
	RiskTier     string  `gorm:"size:16" json:"risk_tier"`
	Description  string  `gorm:"size:255" json:"description"`
	Status       Status  `gorm:"size:24;index" json:"status"`
	// Analyst note attached when the offer is sent back for revision.
	RevisionReason string         `gorm:"size:255" json:"revision_reason,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Offer) TableName() string { return "offers" }
