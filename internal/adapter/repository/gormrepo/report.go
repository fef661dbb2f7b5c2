package gormrepo

import (
	"context"

	ledgerDomain "loanledger-backend/internal/domain/ledger"
	loanDomain "loanledger-backend/internal/domain/loan"
	paymentDomain "loanledger-backend/internal/domain/payment"
	userDomain "loanledger-backend/internal/domain/user"

	"gorm.io/gorm"
)

// ReportRepository serves the admin aggregate queries. Read-only.
type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

type bucket struct {
	Key   string
	Total int64
}

func (r *ReportRepository) UsersByRole(ctx context.Context) (map[string]int64, error) {
	var rows []bucket
	err := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Select("role AS key, COUNT(*) AS total").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func (r *ReportRepository) LoansByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []bucket
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("status AS key, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

// SumLoanAmount totals the principal of loans in the given statuses.
func (r *ReportRepository) SumLoanAmount(ctx context.Context, statuses []loanDomain.Status) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ReportRepository) SumRemainingBalance(ctx context.Context, statuses []loanDomain.Status) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(remaining_balance), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ReportRepository) SumPaymentAmount(ctx context.Context, statuses []paymentDomain.Status) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ReportRepository) LenderBalances(ctx context.Context) (map[string]int64, error) {
	var rows []ledgerDomain.LenderBalance
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, b := range rows {
		out[b.LenderName] = b.Balance
	}
	return out, nil
}

func toMap(rows []bucket) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, b := range rows {
		out[b.Key] = b.Total
	}
	return out
}
