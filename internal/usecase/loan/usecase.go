package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainLoan "loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/internal/notification"
	"loanledger-backend/pkg/finance"
	"loanledger-backend/pkg/id"

	"gorm.io/gorm"
)

// Fallback terms applied when neither a matched offer nor the application
// carries them.
const (
	defaultInterestRate   = 10.0
	defaultDurationMonths = 12
)

type Usecase struct {
	repo   domainLoan.Repository
	tx     uow.UnitOfWork
	notify notification.Publisher
}

func NewUsecase(repo domainLoan.Repository, tx uow.UnitOfWork, notify notification.Publisher) *Usecase {
	return &Usecase{repo: repo, tx: tx, notify: notify}
}

// Apply files a new application in pending-analyst state.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || in.Purpose == "" || in.Amount <= 0 || in.Duration <= 0 {
		return nil, errors.New("invalid input")
	}

	loanID := in.LoanID
	if loanID == "" {
		loanID = id.NewTimeSuffixID("LOAN")
	}

	l := &domainLoan.Loan{
		LoanID:                loanID,
		BorrowerID:            in.BorrowerID,
		BorrowerName:          in.BorrowerName,
		Amount:                in.Amount,
		Purpose:               in.Purpose,
		RequestedInterestRate: in.RequestedInterestRate,
		Duration:              in.Duration,
		CIBILScore:            in.CIBILScore,
		MonthlyIncome:         in.MonthlyIncome,
		Status:                domainLoan.StatusPendingAnalyst,
		RemainingBalance:      in.Amount,
		StateUpdatedAt:        time.Now().UTC(),
	}

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	u.publish(ctx, "Loan Application Received",
		fmt.Sprintf("%s applied for %d (%s)", l.BorrowerName, l.Amount, l.LoanID), "info")

	return toDTO(l), nil
}

// EvaluateRisk records the analyst's verdict. An unknown loan id yields
// ErrNotFound; a verdict the lifecycle does not allow yields
// ErrInvalidTransition.
func (u *Usecase) EvaluateRisk(ctx context.Context, in RiskInput) (*LoanDTO, error) {
	target, ok := map[string]domainLoan.Status{
		domainLoan.DecisionApprove: domainLoan.StatusAnalystApproved,
		domainLoan.DecisionReject:  domainLoan.StatusRejected,
		domainLoan.DecisionHold:    domainLoan.StatusAnalystHold,
	}[in.Decision]
	if !ok {
		return nil, errors.New("invalid decision")
	}

	var out *LoanDTO
	err := u.tx.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if !domainLoan.CanTransition(l.Status, target) {
			return domainLoan.ErrInvalidTransition
		}

		decision := in.Decision
		l.AnalystDecision = &decision
		l.AnalystReason = in.Reason
		if in.RecommendedRate != nil {
			rate := *in.RecommendedRate
			l.AnalystRecommendedRate = &rate
		}
		l.Status = target
		l.StateUpdatedAt = time.Now().UTC()

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, mapMiss(err)
	}

	u.publish(ctx, "Risk Assessment Complete",
		fmt.Sprintf("%s marked %s by analyst", in.LoanID, target), kindFor(target))
	return out, nil
}

// LenderDecision funds, rejects, or parks an analyst-approved loan. On
// approval the final rate is resolved offer-first and the first EMI falls
// due one month out.
func (u *Usecase) LenderDecision(ctx context.Context, in DecisionInput) (*LoanDTO, error) {
	target, ok := map[string]domainLoan.Status{
		"approved": domainLoan.StatusApproved,
		"rejected": domainLoan.StatusRejected,
		"hold":     domainLoan.StatusLenderHold,
	}[in.Decision]
	if !ok {
		return nil, errors.New("invalid decision")
	}

	var out *LoanDTO
	err := u.tx.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if !domainLoan.CanTransition(l.Status, target) {
			return domainLoan.ErrInvalidTransition
		}

		decision := in.Decision
		l.LenderDecision = &decision
		if in.LenderID != "" {
			lenderID := in.LenderID
			l.LenderID = &lenderID
		}
		lenderName := in.LenderName
		if lenderName == "" {
			lenderName = "Verified Lender"
		}
		l.LenderName = &lenderName

		if target == domainLoan.StatusApproved {
			rate := resolveRate(l, in.MatchedOffer)
			months := resolveDuration(l, in.MatchedOffer)
			emi := finance.FlatEMI(l.Amount, rate, months)
			due := oneMonthFromNow()

			l.InterestRate = &rate
			l.Duration = months
			l.EMI = &emi
			l.NextDueDate = &due
			l.RemainingBalance = l.Amount
		}

		l.Status = target
		l.StateUpdatedAt = time.Now().UTC()

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, mapMiss(err)
	}

	u.publish(ctx, "Funding Decision",
		fmt.Sprintf("%s is now %s", in.LoanID, target), kindFor(target))
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, mapMiss(err)
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	loans, err := u.repo.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func (u *Usecase) ListPendingAnalyst(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.ListByStatus(ctx, domainLoan.StatusPendingAnalyst)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

// Schedule projects the amortization table for the loan, using the final
// rate when funded and the requested rate otherwise.
func (u *Usecase) Schedule(ctx context.Context, loanID string) ([]finance.ScheduleRow, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, mapMiss(err)
	}

	rate := l.RequestedInterestRate
	if l.InterestRate != nil {
		rate = *l.InterestRate
	}
	months := l.Duration
	if months <= 0 {
		months = defaultDurationMonths
	}
	return finance.AmortizationSchedule(l.Amount, rate, months), nil
}

// resolveRate picks the funding rate: matched offer, then the analyst's
// recommendation, then the borrower's ask.
func resolveRate(l *domainLoan.Loan, offer *OfferTerms) float64 {
	switch {
	case offer != nil && offer.InterestRate > 0:
		return offer.InterestRate
	case l.AnalystRecommendedRate != nil && *l.AnalystRecommendedRate > 0:
		return *l.AnalystRecommendedRate
	case l.RequestedInterestRate > 0:
		return l.RequestedInterestRate
	case l.InterestRate != nil && *l.InterestRate > 0:
		return *l.InterestRate
	default:
		return defaultInterestRate
	}
}

func resolveDuration(l *domainLoan.Loan, offer *OfferTerms) int {
	if offer != nil && offer.Duration > 0 {
		return offer.Duration
	}
	if l.Duration > 0 {
		return l.Duration
	}
	return defaultDurationMonths
}

func oneMonthFromNow() time.Time {
	return time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
}

func kindFor(s domainLoan.Status) string {
	switch s {
	case domainLoan.StatusRejected:
		return "error"
	case domainLoan.StatusAnalystHold, domainLoan.StatusLenderHold:
		return "warning"
	default:
		return "success"
	}
}

func mapMiss(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainLoan.ErrNotFound
	}
	return err
}

func (u *Usecase) publish(ctx context.Context, title, message, kind string) {
	if u.notify == nil {
		return
	}
	u.notify.Publish(ctx, title, message, kind)
}

func toDTO(l *domainLoan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:                 l.LoanID,
		BorrowerID:             l.BorrowerID,
		BorrowerName:           l.BorrowerName,
		Amount:                 l.Amount,
		Purpose:                l.Purpose,
		RequestedInterestRate:  l.RequestedInterestRate,
		AnalystRecommendedRate: l.AnalystRecommendedRate,
		InterestRate:           l.InterestRate,
		Duration:               l.Duration,
		CIBILScore:             l.CIBILScore,
		Status:                 string(l.Status),
		AnalystDecision:        l.AnalystDecision,
		AnalystReason:          l.AnalystReason,
		LenderDecision:         l.LenderDecision,
		LenderID:               l.LenderID,
		LenderName:             l.LenderName,
		RemainingBalance:       l.RemainingBalance,
		EMI:                    l.EMI,
		NextDueDate:            l.NextDueDate,
		CreatedAt:              l.CreatedAt,
	}
}

func toDTOs(loans []domainLoan.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out
}
