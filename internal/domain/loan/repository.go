package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// List returns loans newest-first (the ledger's insertion order).
	List(ctx context.Context) ([]Loan, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)
	ListByStatus(ctx context.Context, status Status) ([]Loan, error)
	// ReassignBorrower moves every loan owned by fromBorrowerID to the new
	// borrower identity (the claim-persona transfer on registration).
	ReassignBorrower(ctx context.Context, fromBorrowerID, toBorrowerID, toName string) error
	ReassignLender(ctx context.Context, fromLenderID, toLenderID, toName string) error
}
