package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// FirstDemoByRole returns the earliest seeded placeholder of the role,
	// the claim target on registration.
	FirstDemoByRole(ctx context.Context, role Role) (*User, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]User, error)
}
