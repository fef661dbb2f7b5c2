package gormrepo

import (
	"context"
	"errors"
	"testing"

	userDomain "loanledger-backend/internal/domain/user"

	"gorm.io/gorm"
)

func makeUser(userID, email string, role userDomain.Role, demo bool) *userDomain.User {
	return &userDomain.User{
		UserID:   userID,
		Name:     "Someone",
		Email:    email,
		Password: "password",
		Role:     role,
		Status:   "active",
		JoinDate: "2024-01-15",
		Demo:     demo,
	}
}

func TestUserCreateAndGetByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("user-1", "a@x.com", userDomain.RoleBorrower, false)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("unexpected user: %+v", got)
	}

	// exact match only: different case is a different email
	if _, err := repo.GetByEmail(ctx, "A@X.COM"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("case-insensitive match leaked through: %v", err)
	}
}

func TestUserFirstDemoByRole(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seeds := []*userDomain.User{
		makeUser("lender1", "lender@demo.com", userDomain.RoleLender, true),
		makeUser("lender2", "lender2@demo.com", userDomain.RoleLender, true),
		makeUser("borrower1", "karthik@demo.com", userDomain.RoleBorrower, true),
		makeUser("real-1", "real@x.com", userDomain.RoleLender, false),
	}
	for _, u := range seeds {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create %s: %v", u.UserID, err)
		}
	}

	got, err := repo.FirstDemoByRole(ctx, userDomain.RoleLender)
	if err != nil {
		t.Fatalf("FirstDemoByRole: %v", err)
	}
	if got.UserID != "lender1" {
		t.Errorf("primary demo lender should be lender1, got %s", got.UserID)
	}

	if _, err := repo.FirstDemoByRole(ctx, userDomain.RoleAdmin); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for role without demo users, got %v", err)
	}
}

func TestUserCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("Count on empty store: n=%d err=%v", n, err)
	}

	if err := repo.Create(ctx, makeUser("user-2", "b@x.com", userDomain.RoleAnalyst, false)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	n, err = repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count after insert: n=%d err=%v", n, err)
	}
}
