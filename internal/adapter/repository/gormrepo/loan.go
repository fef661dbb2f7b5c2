// Package gormrepo implements the domain repositories over gorm. The
// same code serves sqlite (default local store) and mysql.
package gormrepo

import (
	"context"

	loanDomain "loanledger-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	tx := r.db.WithContext(ctx)
	// sqlite has no row locks; its writer lock covers the single-session case
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.Loan
	res := tx.Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *LoanRepository) ListByBorrowerID(ctx context.Context, borrowerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) ReassignBorrower(ctx context.Context, fromBorrowerID, toBorrowerID, toName string) error {
	return r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("borrower_id = ?", fromBorrowerID).
		Updates(map[string]any{"borrower_id": toBorrowerID, "borrower_name": toName}).Error
}

func (r *LoanRepository) ReassignLender(ctx context.Context, fromLenderID, toLenderID, toName string) error {
	return r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("lender_id = ?", fromLenderID).
		Updates(map[string]any{"lender_id": toLenderID, "lender_name": toName}).Error
}
