package payment

import "time"

type AddInput struct {
	// PaymentID is optional; a fresh PAY-xxxx id is generated when empty.
	PaymentID  string `json:"payment_id"`
	LoanID     string `json:"loan_id"`
	BorrowerID string `json:"borrower_id"`
	Amount     int64  `json:"amount"`
	Method     string `json:"method"`
}

type PaymentDTO struct {
	PaymentID  string    `json:"payment_id"`
	LoanID     string    `json:"loan_id"`
	BorrowerID string    `json:"borrower_id"`
	Amount     int64     `json:"amount"`
	Date       string    `json:"date"`
	Method     string    `json:"method,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddResult carries the payment plus the loan fields it moved.
type AddResult struct {
	Payment          PaymentDTO `json:"payment"`
	LoanStatus       string     `json:"loan_status"`
	RemainingBalance int64      `json:"remaining_balance"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
}
