package http

import "github.com/labstack/echo/v4"

// Handlers bundles every route group the API serves.
type Handlers struct {
	Health       *Handler
	User         *UserHandler
	Loan         *LoanHandler
	Payment      *PaymentHandler
	Offer        *OfferHandler
	Finance      *FinanceHandler
	Ledger       *LedgerHandler
	Notification *NotificationHandler
	Report       *ReportHandler
}

// RegisterRoutes attaches all endpoints to e. Mutating routes are
// expected to sit behind the idempotency middleware, which the caller
// installs globally.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.Health)

	e.POST("/register", h.User.Register)
	e.POST("/login", h.User.Login)
	e.GET("/users", h.User.ListUsers)

	e.POST("/loans", h.Loan.ApplyLoan)
	e.GET("/loans", h.Loan.ListLoans)
	e.GET("/loans/:loan_id", h.Loan.GetLoan)
	e.GET("/loans/:loan_id/schedule", h.Loan.Schedule)
	e.POST("/loans/:loan_id/risk-evaluation", h.Loan.RiskEvaluation)
	e.POST("/loans/:loan_id/lender-decision", h.Loan.LenderDecision)

	e.POST("/payments", h.Payment.AddPayment)
	e.GET("/payments", h.Payment.ListPayments)
	e.POST("/payments/:payment_id/verify", h.Payment.VerifyPayment)
	e.POST("/payments/:payment_id/reject", h.Payment.RejectPayment)

	e.POST("/offers", h.Offer.CreateOffer)
	e.GET("/offers", h.Offer.ListOffers)
	e.POST("/offers/:offer_id/verify", h.Offer.VerifyOffer)
	e.POST("/offers/:offer_id/revision", h.Offer.RequestRevision)
	e.POST("/offers/:offer_id/resubmit", h.Offer.ResubmitOffer)

	e.GET("/calculator/emi", h.Finance.EMI)
	e.GET("/calculator/schedule", h.Finance.Schedule)
	e.GET("/calculator/earnings", h.Finance.Earnings)

	e.POST("/funds", h.Ledger.AddFunds)
	e.GET("/balances", h.Ledger.ListBalances)
	e.GET("/audit-logs", h.Ledger.ListAuditLogs)

	e.GET("/notifications", h.Notification.ListNotifications)
	e.DELETE("/notifications/:notification_id", h.Notification.RemoveNotification)

	e.GET("/reports/summary", h.Report.Summary)
}
