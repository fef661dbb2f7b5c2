// Package finance holds the pure loan math: amortizing EMI, schedule
// previews and lender earnings. All money values are whole currency
// units (int64); invalid inputs yield zero results rather than errors.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Breakdown is the result of an amortizing EMI computation.
type Breakdown struct {
	EMI           int64 `json:"emi"`
	TotalInterest int64 `json:"total_interest"`
	TotalPayment  int64 `json:"total_payment"`
}

// ScheduleRow is one month of an amortization preview.
type ScheduleRow struct {
	Month            int   `json:"month"`
	EMI              int64 `json:"emi"`
	PrincipalPaid    int64 `json:"principal_paid"`
	InterestPaid     int64 `json:"interest_paid"`
	RemainingBalance int64 `json:"remaining_balance"`
}

// Earnings is what a lender takes home over the loan term.
type Earnings struct {
	MonthlyReceipt      int64  `json:"monthly_receipt"`
	TotalInterestEarned int64  `json:"total_interest_earned"`
	TotalAmountReceived int64  `json:"total_amount_received"`
	ROI                 string `json:"roi"`
}

// schedulePreviewMonths caps schedule output; long tenures only show
// the first year.
const schedulePreviewMonths = 12

func validInputs(principal int64, annualRatePct float64, months int) bool {
	if principal <= 0 || months <= 0 {
		return false
	}
	if annualRatePct < 0 || math.IsNaN(annualRatePct) || math.IsInf(annualRatePct, 0) {
		return false
	}
	return true
}

// ComputeEMI returns the standard amortizing installment for the given
// principal, annual rate (percent) and tenure in months:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1), r = rate/12/100
//
// A zero rate degrades to straight principal/months. Non-positive or
// non-finite inputs return a zero Breakdown.
func ComputeEMI(principal int64, annualRatePct float64, months int) Breakdown {
	if !validInputs(principal, annualRatePct, months) {
		return Breakdown{}
	}

	p := decimal.NewFromInt(principal)
	n := decimal.NewFromInt(int64(months))
	r := decimal.NewFromFloat(annualRatePct).Div(decimal.NewFromInt(1200))

	var emi decimal.Decimal
	if r.IsZero() {
		emi = p.Div(n)
	} else {
		growth := one.Add(r).Pow(n)
		denom := growth.Sub(one)
		if denom.IsZero() {
			return Breakdown{}
		}
		emi = p.Mul(r).Mul(growth).Div(denom)
	}

	total := emi.Mul(n)
	return Breakdown{
		EMI:           roundUnit(emi),
		TotalInterest: roundUnit(total.Sub(p)),
		TotalPayment:  roundUnit(total),
	}
}

// AmortizationSchedule breaks the first min(months, 12) installments
// into principal and interest portions. The final modeled month clamps
// the principal portion to the remaining balance so the preview ends
// at zero for short tenures.
func AmortizationSchedule(principal int64, annualRatePct float64, months int) []ScheduleRow {
	b := ComputeEMI(principal, annualRatePct, months)
	if b.EMI == 0 {
		return nil
	}

	balance := decimal.NewFromInt(principal)
	emi := decimal.NewFromInt(b.EMI)
	r := decimal.NewFromFloat(annualRatePct).Div(decimal.NewFromInt(1200))

	limit := months
	if limit > schedulePreviewMonths {
		limit = schedulePreviewMonths
	}

	rows := make([]ScheduleRow, 0, limit)
	for month := 1; month <= limit; month++ {
		interest := balance.Mul(r)
		principalPart := emi.Sub(interest)

		if month == months || balance.LessThan(principalPart) {
			principalPart = balance
			interest = emi.Sub(principalPart)
		}

		balance = balance.Sub(principalPart)

		remaining := roundUnit(balance)
		if remaining < 0 {
			remaining = 0
		}
		rows = append(rows, ScheduleRow{
			Month:            month,
			EMI:              b.EMI,
			PrincipalPaid:    roundUnit(principalPart),
			InterestPaid:     roundUnit(interest),
			RemainingBalance: remaining,
		})

		if !balance.IsPositive() {
			break
		}
	}
	return rows
}

// LenderEarnings restates ComputeEMI from the lender's side. ROI is
// totalInterest/principal as a percentage, fixed to two decimals.
func LenderEarnings(principal int64, annualRatePct float64, months int) Earnings {
	b := ComputeEMI(principal, annualRatePct, months)
	if b.EMI == 0 {
		return Earnings{ROI: "0.00"}
	}

	roi := decimal.NewFromInt(b.TotalInterest).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(principal))

	return Earnings{
		MonthlyReceipt:      b.EMI,
		TotalInterestEarned: b.TotalInterest,
		TotalAmountReceived: b.TotalPayment,
		ROI:                 roi.StringFixed(2),
	}
}

// FlatEMI is the funding-time approximation used when a lender accepts
// a loan: one month's share of principal plus one month's share of a
// single year of simple interest, each rounded up. It is NOT the
// amortizing formula above and intentionally stays separate.
func FlatEMI(amount int64, annualRatePct float64, months int) int64 {
	if amount <= 0 || months <= 0 {
		return 0
	}
	if annualRatePct < 0 || math.IsNaN(annualRatePct) || math.IsInf(annualRatePct, 0) {
		return 0
	}
	principalPart := math.Ceil(float64(amount) / float64(months))
	interestPart := math.Ceil(float64(amount) * annualRatePct / 100 / float64(months))
	return int64(principalPart) + int64(interestPart)
}

func roundUnit(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
