package usermock

import (
	"context"

	domain "loanledger-backend/internal/domain/user"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	SaveFn            func(ctx context.Context, u *domain.User) error
	GetByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	FirstDemoByRoleFn func(ctx context.Context, role domain.Role) (*domain.User, error)
	CountFn           func(ctx context.Context) (int64, error)
	ListFn            func(ctx context.Context) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) FirstDemoByRole(ctx context.Context, role domain.Role) (*domain.User, error) {
	if m.FirstDemoByRoleFn != nil {
		return m.FirstDemoByRoleFn(ctx, role)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
