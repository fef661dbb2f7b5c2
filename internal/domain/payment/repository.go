package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Save(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	List(ctx context.Context) ([]Payment, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Payment, error)
	ReassignBorrower(ctx context.Context, fromBorrowerID, toBorrowerID string) error
}
