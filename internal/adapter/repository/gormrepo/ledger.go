package gormrepo

import (
	"context"
	"errors"

	ledgerDomain "loanledger-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) AddFunds(ctx context.Context, lenderName string, amount int64) (*ledgerDomain.LenderBalance, error) {
	var out ledgerDomain.LenderBalance
	err := r.db.WithContext(ctx).Where("lender_name = ?", lenderName).First(&out).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		out = ledgerDomain.LenderBalance{LenderName: lenderName, Balance: amount}
		if err := r.db.WithContext(ctx).Create(&out).Error; err != nil {
			return nil, err
		}
		return &out, nil
	case err != nil:
		return nil, err
	}
	out.Balance += amount
	if err := r.db.WithContext(ctx).Save(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LedgerRepository) GetBalance(ctx context.Context, lenderName string) (*ledgerDomain.LenderBalance, error) {
	var out ledgerDomain.LenderBalance
	res := r.db.WithContext(ctx).Where("lender_name = ?", lenderName).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) RenameBalance(ctx context.Context, fromName, toName string) error {
	return r.db.WithContext(ctx).Model(&ledgerDomain.LenderBalance{}).
		Where("lender_name = ?", fromName).
		Update("lender_name", toName).Error
}

func (r *LedgerRepository) CreateBalance(ctx context.Context, b *ledgerDomain.LenderBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *LedgerRepository) ListBalances(ctx context.Context) ([]ledgerDomain.LenderBalance, error) {
	var out []ledgerDomain.LenderBalance
	err := r.db.WithContext(ctx).Order("lender_name ASC").Find(&out).Error
	return out, err
}

func (r *LedgerRepository) CreateLog(ctx context.Context, l *ledgerDomain.AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LedgerRepository) ListLogs(ctx context.Context) ([]ledgerDomain.AuditLog, error) {
	var out []ledgerDomain.AuditLog
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&out).Error
	return out, err
}
