package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	ledgerDomain "loanledger-backend/internal/domain/ledger"
	loanDomain "loanledger-backend/internal/domain/loan"
	offerDomain "loanledger-backend/internal/domain/offer"
	paymentDomain "loanledger-backend/internal/domain/payment"
	userDomain "loanledger-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&loanDomain.Loan{},
		&offerDomain.Offer{},
		&paymentDomain.Payment{},
		&ledgerDomain.LenderBalance{},
		&ledgerDomain.AuditLog{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, borrowerID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:                loanID,
		BorrowerID:            borrowerID,
		BorrowerName:          "Demo Borrower",
		Amount:                100_000,
		Purpose:               "Working Capital",
		RequestedInterestRate: 12,
		Duration:              12,
		CIBILScore:            720,
		Status:                loanDomain.StatusPendingAnalyst,
		RemainingBalance:      100_000,
		StateUpdatedAt:        time.Now().UTC(),
	}
}

func TestLoanCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("LOAN-9001", "borrower-x")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, "LOAN-9001")
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.LoanID != "LOAN-9001" || got.BorrowerID != "borrower-x" {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestLoanGetByLoanID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), "LOAN-0000")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoanSaveUpdatesStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("LOAN-9002", "borrower-x")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.Status = loanDomain.StatusAnalystApproved
	decision := loanDomain.DecisionApprove
	l.AnalystDecision = &decision
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, "LOAN-9002")
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusAnalystApproved {
		t.Errorf("status not updated, got=%q", got.Status)
	}
	if got.AnalystDecision == nil || *got.AnalystDecision != loanDomain.DecisionApprove {
		t.Errorf("analyst decision not persisted: %+v", got.AnalystDecision)
	}
}

func TestLoanList_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	for _, id := range []string{"LOAN-0001", "LOAN-0002", "LOAN-0003"} {
		if err := repo.Create(ctx, makeLoan(id, "borrower-x")); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// created_at resolution can tie inside a test; id DESC breaks the tie
	if got[0].LoanID != "LOAN-0003" || got[2].LoanID != "LOAN-0001" {
		t.Errorf("unexpected ordering: %s .. %s", got[0].LoanID, got[2].LoanID)
	}
}

func TestLoanListByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	pending := makeLoan("LOAN-0004", "borrower-x")
	approved := makeLoan("LOAN-0005", "borrower-y")
	approved.Status = loanDomain.StatusAnalystApproved
	for _, l := range []*loanDomain.Loan{pending, approved} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByStatus(ctx, loanDomain.StatusAnalystApproved)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(got) != 1 || got[0].LoanID != "LOAN-0005" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestLoanReassignBorrower(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	mine := makeLoan("LOAN-0006", "borrower1")
	other := makeLoan("LOAN-0007", "borrower2")
	for _, l := range []*loanDomain.Loan{mine, other} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := repo.ReassignBorrower(ctx, "borrower1", "user-real", "Real User"); err != nil {
		t.Fatalf("ReassignBorrower: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, "LOAN-0006")
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.BorrowerID != "user-real" || got.BorrowerName != "Real User" {
		t.Errorf("claim transfer missed: %+v", got)
	}

	untouched, err := repo.GetByLoanID(ctx, "LOAN-0007")
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if untouched.BorrowerID != "borrower2" {
		t.Errorf("unrelated loan reassigned: %+v", untouched)
	}
}
