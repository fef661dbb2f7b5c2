package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Status values match the source system verbatim, mixed casing included.
type Status string

const (
	StatusUnderReview Status = "Under Review"
	StatusCompleted   Status = "completed"
	StatusVerified    Status = "Verified"
	StatusLate        Status = "Late"
	StatusRejected    Status = "Rejected"
)

var (
	ErrNotFound          = errors.New("payment not found")
	ErrInvalidTransition = errors.New("invalid payment state transition")
)

type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_payments_payment_id_active" json:"payment_id"`
	// LoanID references loans.loan_id (the public identifier, not the PK).
	LoanID     string         `gorm:"size:32;index" json:"loan_id"`
	BorrowerID string         `gorm:"size:64;index" json:"borrower_id"`
	Amount     int64          `json:"amount"`
	Date       string         `gorm:"size:10" json:"date"`
	Method     string         `gorm:"size:32" json:"method,omitempty"`
	Status     Status         `gorm:"size:16;index" json:"status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
