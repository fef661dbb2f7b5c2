package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLender   Role = "lender"
	RoleAnalyst  Role = "analyst"
	RoleBorrower Role = "borrower"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLender, RoleAnalyst, RoleBorrower:
		return true
	}
	return false
}

var (
	ErrNotFound = errors.New("user not found")
	// Exact wording is part of the API contract.
	ErrAlreadyExists      = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:64;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Name   string `gorm:"size:128" json:"name"`
	// Email matching is case-sensitive exact, per the login contract.
	Email    string `gorm:"size:128;uniqueIndex:ux_users_email_active" json:"email"`
	Password string `gorm:"size:128" json:"-"`
	Role     Role   `gorm:"size:16;index" json:"role"`
	Status   string `gorm:"size:16" json:"status"`
	JoinDate string `gorm:"size:10" json:"join_date"`
	// Demo marks seeded placeholder personas that real registrations may claim.
	Demo      bool           `gorm:"index" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
