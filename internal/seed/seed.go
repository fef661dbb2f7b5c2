// Package seed loads the demo fixture dataset on startup so every role
// has something to look at. Seeding is destructive and only runs when
// the user table has dropped below the expected fixture count.
package seed

import (
	"context"
	"time"

	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/offer"
	"loanledger-backend/internal/domain/payment"
	"loanledger-backend/internal/domain/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run reseeds the fixtures when fewer than minUsers accounts exist,
// which also catches databases carrying an older fixture shape.
func Run(ctx context.Context, db *gorm.DB, log *zap.SugaredLogger, minUsers int64) error {
	var count int64
	if err := db.WithContext(ctx).Model(&user.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count >= minUsers {
		log.Infow("seed skipped", "users", count)
		return nil
	}

	log.Infow("seeding demo fixtures", "users", count, "want", minUsers)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&payment.Payment{}, &loan.Loan{}, &offer.Offer{}, &user.User{},
			&ledger.LenderBalance{}, &ledger.AuditLog{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(fixtureUsers()).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtureOffers()).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtureLoans()).Error; err != nil {
			return err
		}
		if err := tx.Create(fixturePayments()).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtureBalances()).Error; err != nil {
			return err
		}
		return tx.Create(fixtureLogs()).Error
	})
}

func fixtureUsers() []user.User {
	mk := func(id, name, email, password string, role user.Role, status, joined string, demo bool) user.User {
		return user.User{
			UserID: id, Name: name, Email: email, Password: password,
			Role: role, Status: status, JoinDate: joined, Demo: demo,
		}
	}
	return []user.User{
		mk("admin1", "Platform Admin 1", "admin@loanledger.com", "1234567890", user.RoleAdmin, "active", "2023-01-01", false),
		mk("admin2", "Platform Admin 2", "secops@loanledger.com", "1234567890", user.RoleAdmin, "active", "2023-05-15", false),

		mk("analyst1", "Platform Analyst 1", "analyst@loanledger.com", "password", user.RoleAnalyst, "active", "2024-01-15", false),
		mk("analyst2", "Platform Analyst 2", "risk@loanledger.com", "password", user.RoleAnalyst, "active", "2024-03-22", false),
		mk("analyst3", "Platform Analyst 3", "ramesh@loanledger.com", "password", user.RoleAnalyst, "inactive", "2024-11-05", false),

		// lender1 and borrower1 are the claimable demo personas
		mk("lender1", "Capital Partner A", "lender@loanledger.com", "password", user.RoleLender, "active", "2024-02-01", true),
		mk("lender2", "Capital Partner B", "lender2@loanledger.com", "password", user.RoleLender, "active", "2024-02-10", false),
		mk("lender3", "Capital Partner C", "nexus@loanledger.com", "password", user.RoleLender, "active", "2024-06-18", false),

		mk("borrower1", "Demo Borrower 1", "karthik@loanledger.com", "password", user.RoleBorrower, "active", "2024-02-15", true),
		mk("borrower2", "Demo Borrower 2", "anjali@loanledger.com", "password", user.RoleBorrower, "active", "2024-03-01", false),
		mk("borrower3", "Demo Borrower 3", "srinivas@loanledger.com", "password", user.RoleBorrower, "active", "2024-04-12", false),
		mk("borrower4", "Demo Borrower 4", "lakshmi@loanledger.com", "password", user.RoleBorrower, "active", "2024-07-30", false),
		mk("borrower5", "Demo Borrower 5", "venkatesh@loanledger.com", "password", user.RoleBorrower, "inactive", "2024-08-22", false),
	}
}

func fixtureOffers() []offer.Offer {
	return []offer.Offer{
		{OfferID: "OFFER-1001", LenderID: "lender1", LenderName: "Capital Partner A", Amount: 500_000, InterestRate: 10.5, Duration: 24, Status: offer.StatusAvailable, RiskTier: "Low", Description: "Premium business expansion loan."},
		{OfferID: "OFFER-1002", LenderID: "lender2", LenderName: "Capital Partner B", Amount: 150_000, InterestRate: 14.0, Duration: 12, Status: offer.StatusAvailable, RiskTier: "Medium", Description: "Short-term personal liquidity."},
		{OfferID: "OFFER-1003", LenderID: "lender3", LenderName: "Capital Partner C", Amount: 1_000_000, InterestRate: 9.5, Duration: 48, Status: offer.StatusAvailable, RiskTier: "Low", Description: "Long-term corporate structured debt."},
		{OfferID: "OFFER-1004", LenderID: "lender1", LenderName: "Capital Partner A", Amount: 50_000, InterestRate: 18.0, Duration: 6, Status: offer.StatusPendingAnalyst, RiskTier: "High", Description: "Emergency micro-bridge loan."},
	}
}

func fixtureLoans() []loan.Loan {
	approve := "approve"
	reject := "reject"
	accept := "accept"
	due := nextMonth()

	rate := func(v float64) *float64 { return &v }
	emi := func(v int64) *int64 { return &v }
	str := func(v string) *string { return &v }

	return []loan.Loan{
		{
			LoanID: "LOAN-2001", BorrowerID: "borrower1", BorrowerName: "Demo Borrower 1",
			Amount: 200_000, Purpose: "Business Expansion", RequestedInterestRate: 11,
			Duration: 24, CIBILScore: 780, MonthlyIncome: 85_000,
			Status: loan.StatusActive, LenderID: str("lender1"), LenderName: str("Capital Partner A"),
			InterestRate: rate(10.5), RemainingBalance: 150_000, EMI: emi(9_235), NextDueDate: &due,
			AnalystDecision: &approve, LenderDecision: &accept,
		},
		{
			LoanID: "LOAN-2002", BorrowerID: "borrower2", BorrowerName: "Demo Borrower 2",
			Amount: 50_000, Purpose: "Medical Emergency", RequestedInterestRate: 15,
			Duration: 12, CIBILScore: 640, MonthlyIncome: 45_000,
			Status: loan.StatusPendingAnalyst, RemainingBalance: 50_000,
		},
		{
			LoanID: "LOAN-2003", BorrowerID: "borrower1", BorrowerName: "Demo Borrower 1",
			Amount: 300_000, Purpose: "Home Renovation", RequestedInterestRate: 12,
			Duration: 36, CIBILScore: 780, MonthlyIncome: 85_000,
			Status: loan.StatusAnalystApproved, RemainingBalance: 300_000,
			AnalystDecision: &approve, AnalystReason: "Solid credit history.",
		},
		{
			LoanID: "LOAN-2004", BorrowerID: "borrower2", BorrowerName: "Demo Borrower 2",
			Amount: 100_000, Purpose: "Debt Consolidation", RequestedInterestRate: 14,
			Duration: 18, CIBILScore: 680, MonthlyIncome: 45_000,
			Status: loan.StatusClosed, LenderID: str("lender2"), LenderName: str("Capital Partner B"),
			InterestRate: rate(13.5), RemainingBalance: 0, EMI: emi(6_150),
			AnalystDecision: &approve, LenderDecision: &accept,
		},
		{
			LoanID: "LOAN-2005", BorrowerID: "borrower3", BorrowerName: "Demo Borrower 3",
			Amount: 750_000, Purpose: "Equipment Purchase", RequestedInterestRate: 10,
			Duration: 48, CIBILScore: 810, MonthlyIncome: 120_000,
			Status: loan.StatusActive, LenderID: str("lender3"), LenderName: str("Capital Partner C"),
			InterestRate: rate(9.8), RemainingBalance: 600_000, EMI: emi(18_950), NextDueDate: &due,
			AnalystDecision: &approve, LenderDecision: &accept,
		},
		{
			LoanID: "LOAN-2006", BorrowerID: "borrower4", BorrowerName: "Demo Borrower 4",
			Amount: 25_000, Purpose: "Education", RequestedInterestRate: 16,
			Duration: 6, CIBILScore: 590, MonthlyIncome: 30_000,
			Status: loan.StatusRejected, RemainingBalance: 25_000,
			AnalystDecision: &reject, AnalystReason: "Debt-to-income ratio exceeds limits.",
		},
		{
			LoanID: "LOAN-2007", BorrowerID: "borrower3", BorrowerName: "Demo Borrower 3",
			Amount: 150_000, Purpose: "Working Capital", RequestedInterestRate: 12,
			Duration: 12, CIBILScore: 810, MonthlyIncome: 120_000,
			Status: loan.StatusAnalystApproved, RemainingBalance: 150_000,
			AnalystDecision: &approve, AnalystReason: "Excellent compliance record.",
		},
		{
			LoanID: "LOAN-2008", BorrowerID: "borrower5", BorrowerName: "Demo Borrower 5",
			Amount: 500_000, Purpose: "Real Estate", RequestedInterestRate: 11,
			Duration: 60, CIBILScore: 720, MonthlyIncome: 95_000,
			Status: loan.StatusActive, LenderID: str("lender2"), LenderName: str("Capital Partner B"),
			InterestRate: rate(11.5), RemainingBalance: 480_000, EMI: emi(10_995), NextDueDate: &due,
			AnalystDecision: &approve, LenderDecision: &accept,
		},
	}
}

func fixturePayments() []payment.Payment {
	day := func(monthsAgo int) string {
		return time.Now().UTC().AddDate(0, -monthsAgo, 0).Format("2006-01-02")
	}
	return []payment.Payment{
		{PaymentID: "PAY-3001", LoanID: "LOAN-2001", BorrowerID: "borrower1", Amount: 9_235, Date: day(2), Status: payment.StatusCompleted, Method: "Bank Transfer"},
		{PaymentID: "PAY-3002", LoanID: "LOAN-2001", BorrowerID: "borrower1", Amount: 9_235, Date: day(1), Status: payment.StatusCompleted, Method: "UPI"},
		{PaymentID: "PAY-3003", LoanID: "LOAN-2001", BorrowerID: "borrower1", Amount: 9_235, Date: day(0), Status: payment.StatusCompleted, Method: "UPI"},
		{PaymentID: "PAY-3004", LoanID: "LOAN-2004", BorrowerID: "borrower2", Amount: 6_150, Date: "2023-11-10", Status: payment.StatusCompleted, Method: "Auto-Debit"},
		{PaymentID: "PAY-3005", LoanID: "LOAN-2004", BorrowerID: "borrower2", Amount: 6_150, Date: "2023-12-10", Status: payment.StatusCompleted, Method: "Auto-Debit"},
		{PaymentID: "PAY-3006", LoanID: "LOAN-2005", BorrowerID: "borrower3", Amount: 18_950, Date: day(1), Status: payment.StatusCompleted, Method: "Bank Transfer"},
		{PaymentID: "PAY-3007", LoanID: "LOAN-2008", BorrowerID: "borrower5", Amount: 10_995, Date: day(0), Status: payment.StatusUnderReview, Method: "UPI"},
	}
}

func fixtureBalances() []ledger.LenderBalance {
	return []ledger.LenderBalance{
		{LenderName: "Capital Partner A", Balance: 1_500_000},
		{LenderName: "Capital Partner B", Balance: 800_000},
		{LenderName: "Capital Partner C", Balance: 4_500_000},
	}
}

func fixtureLogs() []ledger.AuditLog {
	daysAgo := func(n int) time.Time { return time.Now().UTC().AddDate(0, 0, -n) }
	return []ledger.AuditLog{
		{LogID: "LOG-1", Actor: "admin1", Action: "System Initialization", Target: "Security Protocol", Status: "Success", Date: daysAgo(30)},
		{LogID: "LOG-2", Actor: "analyst1", Action: "Risk Assessed", Target: "LOAN-2003", Status: "Success", Date: daysAgo(2)},
		{LogID: "LOG-3", Actor: "lender1", Action: "Offer Created", Target: "OFFER-1004", Status: "Pending", Date: daysAgo(1)},
		{LogID: "LOG-4", Actor: "borrower2", Action: "Document Upload", Target: "KYC Files", Status: "Failed", Date: daysAgo(0)},
		{LogID: "LOG-5", Actor: "system", Action: "Automated Sweeps", Target: "Escrow Accounts", Status: "Success", Date: daysAgo(0)},
	}
}

func nextMonth() time.Time {
	return time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
}
