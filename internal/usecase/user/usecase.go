package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loanledger-backend/internal/domain/ledger"
	domainUser "loanledger-backend/internal/domain/user"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/internal/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// startingLenderBalance is granted when a new lender has no demo balance
// row to inherit.
const startingLenderBalance = 5_000_000

type Usecase struct {
	repo   domainUser.Repository
	tx     uow.UnitOfWork
	notify notification.Publisher
}

func NewUsecase(repo domainUser.Repository, tx uow.UnitOfWork, notify notification.Publisher) *Usecase {
	return &Usecase{repo: repo, tx: tx, notify: notify}
}

// Register creates the account and, for borrower and lender roles, claims
// the primary demo persona: the placeholder's loans, payments, offers and
// balance are transferred to the new identity in the same transaction.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	role := domainUser.Role(in.Role)
	if in.Name == "" || in.Email == "" || in.Password == "" || !role.Valid() {
		return nil, errors.New("invalid input")
	}

	newUser := &domainUser.User{
		UserID:   uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     role,
		Status:   "active",
		JoinDate: time.Now().UTC().Format("2006-01-02"),
	}

	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Users.GetByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return domainUser.ErrAlreadyExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := r.Users.Create(ctx, newUser); err != nil {
			return err
		}

		switch role {
		case domainUser.RoleBorrower:
			return claimBorrowerPersona(ctx, r, newUser)
		case domainUser.RoleLender:
			return claimLenderPersona(ctx, r, newUser)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if u.notify != nil {
		u.notify.Publish(ctx, "New Registration",
			fmt.Sprintf("%s joined as %s", newUser.Name, newUser.Role), "info")
	}
	return toDTO(newUser), nil
}

// Login is an exact plaintext match on email and password.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*UserDTO, error) {
	found, err := u.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrInvalidCredentials
		}
		return nil, err
	}
	if found.Password != in.Password {
		return nil, domainUser.ErrInvalidCredentials
	}
	return toDTO(found), nil
}

func (u *Usecase) List(ctx context.Context) ([]UserDTO, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *toDTO(&users[i]))
	}
	return out, nil
}

func claimBorrowerPersona(ctx context.Context, r uow.Repos, newUser *domainUser.User) error {
	demo, err := r.Users.FirstDemoByRole(ctx, domainUser.RoleBorrower)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // no persona left to claim
		}
		return err
	}
	if err := r.Loans.ReassignBorrower(ctx, demo.UserID, newUser.UserID, newUser.Name); err != nil {
		return err
	}
	return r.Payments.ReassignBorrower(ctx, demo.UserID, newUser.UserID)
}

func claimLenderPersona(ctx context.Context, r uow.Repos, newUser *domainUser.User) error {
	demo, err := r.Users.FirstDemoByRole(ctx, domainUser.RoleLender)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := r.Loans.ReassignLender(ctx, demo.UserID, newUser.UserID, newUser.Name); err != nil {
		return err
	}
	if err := r.Offers.ReassignLender(ctx, demo.UserID, newUser.UserID, newUser.Name); err != nil {
		return err
	}

	// Inherit the demo lender's balance row or start fresh.
	if _, err := r.Ledger.GetBalance(ctx, demo.Name); err == nil {
		return r.Ledger.RenameBalance(ctx, demo.Name, newUser.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.Ledger.CreateBalance(ctx, &ledger.LenderBalance{
		LenderName: newUser.Name,
		Balance:    startingLenderBalance,
	})
}

func toDTO(u *domainUser.User) *UserDTO {
	return &UserDTO{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		Status:   u.Status,
		JoinDate: u.JoinDate,
	}
}
