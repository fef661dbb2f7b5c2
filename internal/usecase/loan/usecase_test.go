package loan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/internal/testutil/loanmock"
	"loanledger-backend/internal/testutil/uowmock"
)

func ptrFloat(f float64) *float64 { return &f }

// fakeFeed records notes published by the usecase.
type fakeFeed struct{ titles []string }

func (f *fakeFeed) Publish(_ context.Context, title, _, _ string) {
	f.titles = append(f.titles, title)
}

// stored wires a mock repo and a passthrough UoW around a single loan so
// lifecycle steps can be chained in one test.
func stored(l *domain.Loan) (*loanmock.Repo, *uowmock.UoW) {
	repo := &loanmock.Repo{
		GetByLoanIDFn: func(_ context.Context, loanID string) (*domain.Loan, error) {
			if l == nil || l.LoanID != loanID {
				return nil, domain.ErrNotFound
			}
			return l, nil
		},
		GetByLoanIDForUpdateFn: func(_ context.Context, loanID string) (*domain.Loan, error) {
			if l == nil || l.LoanID != loanID {
				return nil, domain.ErrNotFound
			}
			return l, nil
		},
	}
	return repo, uowmock.Passthrough(uow.Repos{Loans: repo})
}

func TestApply_Success(t *testing.T) {
	var created *domain.Loan
	repo := &loanmock.Repo{
		CreateFn: func(_ context.Context, l *domain.Loan) error {
			l.CreatedAt = time.Now().UTC()
			created = l
			return nil
		},
	}
	feed := &fakeFeed{}
	uc := NewUsecase(repo, uowmock.New(), feed)

	dto, err := uc.Apply(context.Background(), ApplyInput{
		BorrowerID:            "user-2",
		BorrowerName:          "Rahul Sharma",
		Amount:                100_000,
		Purpose:               "Business expansion",
		RequestedInterestRate: 11,
		Duration:              12,
		CIBILScore:            780,
		MonthlyIncome:         85_000,
	})
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if created == nil {
		t.Fatal("Create was not called")
	}
	if !strings.HasPrefix(dto.LoanID, "LOAN-") {
		t.Fatalf("loan id %q lacks LOAN- prefix", dto.LoanID)
	}
	if dto.Status != string(domain.StatusPendingAnalyst) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.RemainingBalance != 100_000 {
		t.Fatalf("remaining balance=%d", dto.RemainingBalance)
	}
	if len(feed.titles) != 1 {
		t.Fatalf("expected one notification, got %v", feed.titles)
	}
}

func TestApply_KeepsProvidedLoanID(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, uowmock.New(), nil)
	dto, err := uc.Apply(context.Background(), ApplyInput{
		LoanID: "LOAN-1001", BorrowerID: "user-2", Purpose: "Working capital",
		Amount: 50_000, Duration: 6,
	})
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if dto.LoanID != "LOAN-1001" {
		t.Fatalf("got %s", dto.LoanID)
	}
}

func TestApply_InvalidInput(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, uowmock.New(), nil)
	for _, in := range []ApplyInput{
		{Purpose: "p", Amount: 1000, Duration: 12},                       // no borrower
		{BorrowerID: "user-2", Amount: 1000, Duration: 12},               // no purpose
		{BorrowerID: "user-2", Purpose: "p", Amount: 0, Duration: 12},    // zero amount
		{BorrowerID: "user-2", Purpose: "p", Amount: 1000, Duration: 0},  // zero duration
		{BorrowerID: "user-2", Purpose: "p", Amount: -500, Duration: 12}, // negative amount
	} {
		if _, err := uc.Apply(context.Background(), in); err == nil {
			t.Fatalf("expected error for %+v", in)
		}
	}
}

func TestEvaluateRisk_Approve(t *testing.T) {
	l := &domain.Loan{LoanID: "LOAN-1001", Status: domain.StatusPendingAnalyst}
	repo, tx := stored(l)
	feed := &fakeFeed{}
	uc := NewUsecase(repo, tx, feed)

	dto, err := uc.EvaluateRisk(context.Background(), RiskInput{
		LoanID:          "LOAN-1001",
		Decision:        domain.DecisionApprove,
		Reason:          "Strong credit profile",
		RecommendedRate: ptrFloat(10.5),
	})
	if err != nil {
		t.Fatalf("EvaluateRisk err: %v", err)
	}
	if dto.Status != string(domain.StatusAnalystApproved) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.AnalystRecommendedRate == nil || *dto.AnalystRecommendedRate != 10.5 {
		t.Fatalf("recommended rate=%v", dto.AnalystRecommendedRate)
	}
	if dto.AnalystReason != "Strong credit profile" {
		t.Fatalf("reason=%s", dto.AnalystReason)
	}
	if len(feed.titles) != 1 {
		t.Fatalf("notifications: %v", feed.titles)
	}
}

func TestEvaluateRisk_RejectAndHold(t *testing.T) {
	for decision, want := range map[string]domain.Status{
		domain.DecisionReject: domain.StatusRejected,
		domain.DecisionHold:   domain.StatusAnalystHold,
	} {
		l := &domain.Loan{LoanID: "LOAN-1001", Status: domain.StatusPendingAnalyst}
		repo, tx := stored(l)
		uc := NewUsecase(repo, tx, nil)

		dto, err := uc.EvaluateRisk(context.Background(), RiskInput{LoanID: "LOAN-1001", Decision: decision})
		if err != nil {
			t.Fatalf("%s: %v", decision, err)
		}
		if dto.Status != string(want) {
			t.Fatalf("%s: status=%s", decision, dto.Status)
		}
	}
}

func TestEvaluateRisk_UnknownLoan(t *testing.T) {
	repo, tx := stored(nil)
	uc := NewUsecase(repo, tx, nil)

	_, err := uc.EvaluateRisk(context.Background(), RiskInput{LoanID: "LOAN-9999", Decision: domain.DecisionApprove})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestEvaluateRisk_InvalidTransition(t *testing.T) {
	l := &domain.Loan{LoanID: "LOAN-1001", Status: domain.StatusRejected}
	repo, tx := stored(l)
	uc := NewUsecase(repo, tx, nil)

	_, err := uc.EvaluateRisk(context.Background(), RiskInput{LoanID: "LOAN-1001", Decision: domain.DecisionApprove})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err=%v, want ErrInvalidTransition", err)
	}
}

func TestEvaluateRisk_UnknownDecision(t *testing.T) {
	repo, tx := stored(&domain.Loan{LoanID: "LOAN-1001", Status: domain.StatusPendingAnalyst})
	uc := NewUsecase(repo, tx, nil)
	if _, err := uc.EvaluateRisk(context.Background(), RiskInput{LoanID: "LOAN-1001", Decision: "maybe"}); err == nil {
		t.Fatal("want error for unknown decision")
	}
}

func TestLenderDecision_Approved_UsesOfferTerms(t *testing.T) {
	l := &domain.Loan{
		LoanID:                 "LOAN-1001",
		Amount:                 100_000,
		RequestedInterestRate:  11,
		AnalystRecommendedRate: ptrFloat(10.5),
		Duration:               18,
		Status:                 domain.StatusAnalystApproved,
	}
	repo, tx := stored(l)
	uc := NewUsecase(repo, tx, nil)

	dto, err := uc.LenderDecision(context.Background(), DecisionInput{
		LoanID:       "LOAN-1001",
		Decision:     "approved",
		LenderID:     "user-3",
		LenderName:   "Priya Patel",
		MatchedOffer: &OfferTerms{InterestRate: 10, Duration: 12},
	})
	if err != nil {
		t.Fatalf("LenderDecision err: %v", err)
	}
	if dto.Status != string(domain.StatusApproved) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.InterestRate == nil || *dto.InterestRate != 10 {
		t.Fatalf("interest rate=%v, offer terms must win", dto.InterestRate)
	}
	if dto.Duration != 12 {
		t.Fatalf("duration=%d", dto.Duration)
	}
	// flat EMI for 100000 @ 10% over 12 months
	if dto.EMI == nil || *dto.EMI != 9168 {
		t.Fatalf("emi=%v, want 9168", dto.EMI)
	}
	if dto.RemainingBalance != 100_000 {
		t.Fatalf("remaining=%d", dto.RemainingBalance)
	}
	if dto.NextDueDate == nil || !dto.NextDueDate.After(time.Now()) {
		t.Fatalf("next due date=%v", dto.NextDueDate)
	}
	if dto.LenderName == nil || *dto.LenderName != "Priya Patel" {
		t.Fatalf("lender name=%v", dto.LenderName)
	}
}

func TestLenderDecision_Approved_FallsBackToAnalystRate(t *testing.T) {
	l := &domain.Loan{
		LoanID:                 "LOAN-1001",
		Amount:                 60_000,
		RequestedInterestRate:  12,
		AnalystRecommendedRate: ptrFloat(9.5),
		Duration:               12,
		Status:                 domain.StatusAnalystApproved,
	}
	repo, tx := stored(l)
	uc := NewUsecase(repo, tx, nil)

	dto, err := uc.LenderDecision(context.Background(), DecisionInput{
		LoanID: "LOAN-1001", Decision: "approved", LenderID: "user-3",
	})
	if err != nil {
		t.Fatalf("LenderDecision err: %v", err)
	}
	if dto.InterestRate == nil || *dto.InterestRate != 9.5 {
		t.Fatalf("interest rate=%v, want analyst recommendation", dto.InterestRate)
	}
	if dto.LenderName == nil || *dto.LenderName != "Verified Lender" {
		t.Fatalf("lender name=%v, want default", dto.LenderName)
	}
}

func TestLenderDecision_RejectAndHold(t *testing.T) {
	for decision, want := range map[string]domain.Status{
		"rejected": domain.StatusRejected,
		"hold":     domain.StatusLenderHold,
	} {
		l := &domain.Loan{LoanID: "LOAN-1001", Amount: 10_000, Status: domain.StatusAnalystApproved}
		repo, tx := stored(l)
		uc := NewUsecase(repo, tx, nil)

		dto, err := uc.LenderDecision(context.Background(), DecisionInput{LoanID: "LOAN-1001", Decision: decision})
		if err != nil {
			t.Fatalf("%s: %v", decision, err)
		}
		if dto.Status != string(want) {
			t.Fatalf("%s: status=%s", decision, dto.Status)
		}
		if dto.EMI != nil {
			t.Fatalf("%s: EMI must stay unset", decision)
		}
	}
}

func TestLenderDecision_HoldThenApprove(t *testing.T) {
	l := &domain.Loan{
		LoanID: "LOAN-1001", Amount: 100_000, RequestedInterestRate: 10,
		Duration: 12, Status: domain.StatusAnalystApproved,
	}
	repo, tx := stored(l)
	uc := NewUsecase(repo, tx, nil)

	if _, err := uc.LenderDecision(context.Background(), DecisionInput{LoanID: "LOAN-1001", Decision: "hold"}); err != nil {
		t.Fatalf("hold: %v", err)
	}
	dto, err := uc.LenderDecision(context.Background(), DecisionInput{LoanID: "LOAN-1001", Decision: "approved"})
	if err != nil {
		t.Fatalf("approve after hold: %v", err)
	}
	if dto.Status != string(domain.StatusApproved) {
		t.Fatalf("status=%s", dto.Status)
	}
}

func TestLenderDecision_PendingLoanCannotBeFunded(t *testing.T) {
	l := &domain.Loan{LoanID: "LOAN-1001", Status: domain.StatusPendingAnalyst}
	repo, tx := stored(l)
	uc := NewUsecase(repo, tx, nil)

	_, err := uc.LenderDecision(context.Background(), DecisionInput{LoanID: "LOAN-1001", Decision: "approved"})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err=%v, want ErrInvalidTransition", err)
	}
}

func TestFullLifecycle_ApplyEvaluateFund(t *testing.T) {
	var store *domain.Loan
	repo := &loanmock.Repo{
		CreateFn: func(_ context.Context, l *domain.Loan) error {
			store = l
			return nil
		},
		GetByLoanIDForUpdateFn: func(_ context.Context, loanID string) (*domain.Loan, error) {
			if store == nil || store.LoanID != loanID {
				return nil, domain.ErrNotFound
			}
			return store, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Loans: repo})
	uc := NewUsecase(repo, tx, nil)
	ctx := context.Background()

	applied, err := uc.Apply(ctx, ApplyInput{
		BorrowerID: "user-2", BorrowerName: "Rahul Sharma", Purpose: "Business expansion",
		Amount: 100_000, RequestedInterestRate: 11, Duration: 12,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, err := uc.EvaluateRisk(ctx, RiskInput{
		LoanID: applied.LoanID, Decision: domain.DecisionApprove, RecommendedRate: ptrFloat(10.5),
	}); err != nil {
		t.Fatalf("EvaluateRisk: %v", err)
	}

	funded, err := uc.LenderDecision(ctx, DecisionInput{
		LoanID: applied.LoanID, Decision: "approved", LenderID: "user-3",
		MatchedOffer: &OfferTerms{InterestRate: 10, Duration: 12},
	})
	if err != nil {
		t.Fatalf("LenderDecision: %v", err)
	}
	if funded.Status != string(domain.StatusApproved) {
		t.Fatalf("status=%s", funded.Status)
	}
	if funded.RemainingBalance != 100_000 || funded.EMI == nil || *funded.EMI != 9168 {
		t.Fatalf("remaining=%d emi=%v", funded.RemainingBalance, funded.EMI)
	}
}

func TestGet_MapsMissToNotFound(t *testing.T) {
	repo, _ := stored(nil)
	uc := NewUsecase(repo, uowmock.New(), nil)
	if _, err := uc.Get(context.Background(), "LOAN-404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
}

func TestSchedule_UsesFinalRateWhenFunded(t *testing.T) {
	final := 10.0
	l := &domain.Loan{
		LoanID: "LOAN-1001", Amount: 100_000, RequestedInterestRate: 14,
		InterestRate: &final, Duration: 12, Status: domain.StatusApproved,
	}
	repo, _ := stored(l)
	uc := NewUsecase(repo, uowmock.New(), nil)

	rows, err := uc.Schedule(context.Background(), "LOAN-1001")
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(rows) != 12 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[len(rows)-1].RemainingBalance != 0 {
		t.Fatalf("schedule must end at zero, got %d", rows[len(rows)-1].RemainingBalance)
	}
}
