package http

import (
	"errors"
	"strings"
	"testing"
)

func TestRefIDValidation(t *testing.T) {
	type P struct {
		LoanID string `validate:"refid"`
	}
	cv := NewValidator()

	for _, s := range []string{"LOAN-2001", "PAY-3004", "OFFER-1001"} {
		if err := cv.Validate(P{LoanID: s}); err != nil {
			t.Fatalf("expected valid refid %q, got err: %v", s, err)
		}
	}

	// invalid samples
	for _, s := range []string{
		"",           // empty
		"loan-2001",  // lowercase prefix
		"LOAN2001",   // missing dash
		"LOAN-20",    // short suffix
		"LOAN-20011", // long suffix
		"LOAN-20a1",  // non-digit suffix
	} {
		err := cv.Validate(P{LoanID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoanID", "PREFIX-0000") {
			t.Fatalf("expected refid message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Rate float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{10.5, 14.00, 9.8, 18} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{10.555, 2.9999} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Rate", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRoleValidation(t *testing.T) {
	type P struct {
		Role string `validate:"role"`
	}
	cv := NewValidator()

	for _, s := range []string{"admin", "lender", "analyst", "borrower"} {
		if err := cv.Validate(P{Role: s}); err != nil {
			t.Fatalf("expected valid role %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "Admin", "supervisor", "LENDER"} {
		err := cv.Validate(P{Role: s})
		if err == nil {
			t.Fatalf("expected error for role %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Role", "admin, lender, analyst or borrower") {
			t.Fatalf("expected role message for %q, got %+v", s, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name  string  `validate:"required"`
		Min   int     `validate:"gte=10"`
		Max   int     `validate:"lte=5"`
		Rate  float64 `validate:"dec2,gte=0.90"`
		Score int     `validate:"gt=0"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name:  "",    // required
		Min:   9,     // gte=10
		Max:   6,     // lte=5
		Rate:  0.333, // dec2 + gte fail, but dec2 will trigger first
		Score: 0,     // gt=0
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Rate", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Rate: %+v", fe)
	}
	if !containsFieldMsg(fe, "Score", "greater than 0") {
		t.Fatalf("missing gt message for Score: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
