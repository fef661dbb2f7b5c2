// Package ledger holds the platform-level records that sit beside the
// core aggregates: lender capital balances and the admin audit trail.
package ledger

import (
	"errors"
	"time"
)

var ErrBalanceNotFound = errors.New("lender balance not found")

// LenderBalance is keyed by lender display name, mirroring the source
// system's balance map.
type LenderBalance struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	LenderName string    `gorm:"size:128;uniqueIndex:ux_lender_balances_name" json:"lender_name"`
	Balance    int64     `json:"balance"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (LenderBalance) TableName() string { return "lender_balances" }

type AuditLog struct {
	ID     uint64    `gorm:"primaryKey;column:id" json:"-"`
	LogID  string    `gorm:"size:32;uniqueIndex:ux_audit_logs_log_id" json:"log_id"`
	Actor  string    `gorm:"size:64" json:"actor"`
	Action string    `gorm:"size:128" json:"action"`
	Target string    `gorm:"size:128" json:"target"`
	Status string    `gorm:"size:16" json:"status"`
	Date   time.Time `json:"date"`
}

func (AuditLog) TableName() string { return "audit_logs" }
