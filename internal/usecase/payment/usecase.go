package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainLoan "loanledger-backend/internal/domain/loan"
	domainPayment "loanledger-backend/internal/domain/payment"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/internal/notification"
	"loanledger-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo   domainPayment.Repository
	tx     uow.UnitOfWork
	notify notification.Publisher
}

func NewUsecase(repo domainPayment.Repository, tx uow.UnitOfWork, notify notification.Publisher) *Usecase {
	return &Usecase{repo: repo, tx: tx, notify: notify}
}

// Add records a repayment and settles it against the loan in one
// transaction: the remaining balance drops (floored at zero, overpayment
// absorbed), a cleared loan closes, and an open one rolls the due date
// one month forward.
func (u *Usecase) Add(ctx context.Context, in AddInput) (*AddResult, error) {
	if in.LoanID == "" || in.Amount <= 0 {
		return nil, errors.New("invalid input")
	}

	paymentID := in.PaymentID
	if paymentID == "" {
		paymentID = id.NewTimeSuffixID("PAY")
	}

	var out *AddResult
	err := u.tx.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		p := &domainPayment.Payment{
			PaymentID:  paymentID,
			LoanID:     l.LoanID,
			BorrowerID: firstNonEmpty(in.BorrowerID, l.BorrowerID),
			Amount:     in.Amount,
			Date:       time.Now().UTC().Format("2006-01-02"),
			Method:     in.Method,
			Status:     domainPayment.StatusCompleted,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		balance := l.RemainingBalance - in.Amount
		if balance < 0 {
			balance = 0
		}
		l.RemainingBalance = balance
		if balance == 0 {
			l.Status = domainLoan.StatusClosed
			l.NextDueDate = nil
		} else {
			due := time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
			l.NextDueDate = &due
		}
		l.StateUpdatedAt = time.Now().UTC()

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		out = &AddResult{
			Payment:          *toDTO(p),
			LoanStatus:       string(l.Status),
			RemainingBalance: l.RemainingBalance,
			NextDueDate:      l.NextDueDate,
		}
		return nil
	})
	if err != nil {
		return nil, mapMiss(err)
	}

	if u.notify != nil {
		kind := "info"
		msg := fmt.Sprintf("%d received against %s", in.Amount, in.LoanID)
		if out.LoanStatus == string(domainLoan.StatusClosed) {
			kind = "success"
			msg = fmt.Sprintf("%s fully repaid", in.LoanID)
		}
		u.notify.Publish(ctx, "Payment Recorded", msg, kind)
	}
	return out, nil
}

// Verify moves an Under Review payment to Verified.
func (u *Usecase) Verify(ctx context.Context, paymentID string) (*PaymentDTO, error) {
	return u.review(ctx, paymentID, domainPayment.StatusVerified)
}

// Reject moves an Under Review payment to Rejected.
func (u *Usecase) Reject(ctx context.Context, paymentID string) (*PaymentDTO, error) {
	return u.review(ctx, paymentID, domainPayment.StatusRejected)
}

func (u *Usecase) review(ctx context.Context, paymentID string, target domainPayment.Status) (*PaymentDTO, error) {
	p, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, mapMiss(err)
	}
	if p.Status != domainPayment.StatusUnderReview {
		return nil, domainPayment.ErrInvalidTransition
	}
	p.Status = target
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context) ([]PaymentDTO, error) {
	payments, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(payments), nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]PaymentDTO, error) {
	payments, err := u.repo.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTOs(payments), nil
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]PaymentDTO, error) {
	payments, err := u.repo.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(payments), nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func mapMiss(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainPayment.ErrNotFound
	case errors.Is(err, domainLoan.ErrNotFound):
		return domainPayment.ErrNotFound
	}
	return err
}

func toDTO(p *domainPayment.Payment) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:  p.PaymentID,
		LoanID:     p.LoanID,
		BorrowerID: p.BorrowerID,
		Amount:     p.Amount,
		Date:       p.Date,
		Method:     p.Method,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
	}
}

func toDTOs(payments []domainPayment.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		out = append(out, *toDTO(&payments[i]))
	}
	return out
}
