package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingAnalyst  Status = "pending-analyst"
	StatusAnalystApproved Status = "analystApproved"
	StatusAnalystHold     Status = "analystHold"
	StatusRejected        Status = "rejected"
	StatusApproved        Status = "approved"
	StatusActive          Status = "active"
	StatusLenderHold      Status = "lenderHold"
	StatusClosed          Status = "closed"
)

// Decision markers as recorded on the loan by analyst/lender actions.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
	DecisionHold    = "hold"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan state transition")
)

// transitions is the loan lifecycle. rejected and closed are terminal.
var transitions = map[Status][]Status{
	StatusPendingAnalyst:  {StatusAnalystApproved, StatusRejected, StatusAnalystHold},
	StatusAnalystHold:     {StatusAnalystApproved, StatusRejected},
	StatusAnalystApproved: {StatusApproved, StatusRejected, StatusLenderHold},
	StatusLenderHold:      {StatusApproved, StatusRejected},
	StatusApproved:        {StatusActive, StatusClosed},
	StatusActive:          {StatusClosed},
}

// CanTransition reports whether from → to is a legal lifecycle move.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Funded reports whether the loan is in a repayable state.
func (s Status) Funded() bool { return s == StatusApproved || s == StatusActive }

func (s Status) Terminal() bool { return s == StatusRejected || s == StatusClosed }

type Loan struct {
	ID                    uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID                string  `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	BorrowerID            string  `gorm:"size:64;index:idx_loans_borrower_active" json:"borrower_id"`
	BorrowerName          string  `gorm:"size:128" json:"borrower_name"`
	Amount                int64   `json:"amount"`
	Purpose               string  `gorm:"size:128" json:"purpose"`
	RequestedInterestRate float64 `gorm:"type:decimal(6,2)" json:"requested_interest_rate"`
	// Set by the analyst during risk evaluation; one of the funding-rate fallbacks.
	AnalystRecommendedRate *float64 `gorm:"type:decimal(6,2)" json:"analyst_recommended_rate,omitempty"`
	// Final rate, nil until funded.
	InterestRate  *float64 `gorm:"type:decimal(6,2)" json:"interest_rate,omitempty"`
	Duration      int      `json:"duration"`
	CIBILScore    int      `json:"cibil_score"`
	MonthlyIncome int64    `json:"monthly_income"`
	Status        Status   `gorm:"size:24;index" json:"status"`

	AnalystDecision *string `gorm:"size:16" json:"analyst_decision,omitempty"`
	AnalystReason   string  `gorm:"size:255" json:"analyst_reason,omitempty"`
	LenderDecision  *string `gorm:"size:16" json:"lender_decision,omitempty"`
	LenderID        *string `gorm:"size:64" json:"lender_id,omitempty"`
	LenderName      *string `gorm:"size:128" json:"lender_name,omitempty"`

	// RemainingBalance equals Amount once funded and only ever decreases.
	RemainingBalance int64      `json:"remaining_balance"`
	EMI              *int64     `json:"emi,omitempty"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`

	StateUpdatedAt time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
