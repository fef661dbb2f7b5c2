package loan

import "time"

type ApplyInput struct {
	// LoanID is optional; a fresh LOAN-xxxx id is generated when empty.
	LoanID                string  `json:"loan_id"`
	BorrowerID            string  `json:"borrower_id"`
	BorrowerName          string  `json:"borrower_name"`
	Amount                int64   `json:"amount"`
	Purpose               string  `json:"purpose"`
	RequestedInterestRate float64 `json:"requested_interest_rate"`
	Duration              int     `json:"duration"`
	CIBILScore            int     `json:"cibil_score"`
	MonthlyIncome         int64   `json:"monthly_income"`
}

type RiskInput struct {
	LoanID string
	// Decision is approve, reject or hold.
	Decision        string
	Reason          string
	RecommendedRate *float64
}

// OfferTerms carries the matched offer's terms into a funding decision.
type OfferTerms struct {
	InterestRate float64 `json:"interest_rate"`
	Duration     int     `json:"duration"`
}

type DecisionInput struct {
	LoanID string
	// Decision is approved, rejected or hold.
	Decision     string
	LenderID     string
	LenderName   string
	MatchedOffer *OfferTerms
}

type LoanDTO struct {
	LoanID                 string     `json:"loan_id"`
	BorrowerID             string     `json:"borrower_id"`
	BorrowerName           string     `json:"borrower_name"`
	Amount                 int64      `json:"amount"`
	Purpose                string     `json:"purpose"`
	RequestedInterestRate  float64    `json:"requested_interest_rate"`
	AnalystRecommendedRate *float64   `json:"analyst_recommended_rate,omitempty"`
	InterestRate           *float64   `json:"interest_rate,omitempty"`
	Duration               int        `json:"duration"`
	CIBILScore             int        `json:"cibil_score"`
	Status                 string     `json:"status"`
	AnalystDecision        *string    `json:"analyst_decision,omitempty"`
	AnalystReason          string     `json:"analyst_reason,omitempty"`
	LenderDecision         *string    `json:"lender_decision,omitempty"`
	LenderID               *string    `json:"lender_id,omitempty"`
	LenderName             *string    `json:"lender_name,omitempty"`
	RemainingBalance       int64      `json:"remaining_balance"`
	EMI                    *int64     `json:"emi,omitempty"`
	NextDueDate            *time.Time `json:"next_due_date,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}
