package ledger

import "context"

type Repository interface {
	// AddFunds increments a lender balance, creating the row at zero first
	// if the lender has never deposited.
	AddFunds(ctx context.Context, lenderName string, amount int64) (*LenderBalance, error)
	GetBalance(ctx context.Context, lenderName string) (*LenderBalance, error)
	// RenameBalance moves a balance row to a new lender name; used when a
	// registration claims a demo lender persona.
	RenameBalance(ctx context.Context, fromName, toName string) error
	CreateBalance(ctx context.Context, b *LenderBalance) error
	ListBalances(ctx context.Context) ([]LenderBalance, error)

	CreateLog(ctx context.Context, l *AuditLog) error
	ListLogs(ctx context.Context) ([]AuditLog, error)
}
