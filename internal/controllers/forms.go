package controllers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationErrors maps a form field to the reason its value was rejected.
// Only type coercion is checked; empty text fields are accepted.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + v[f]
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) parseUint(field, raw string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		v[field] = fmt.Sprintf("%q is not a valid identifier", raw)
		return 0
	}
	return uint(n)
}

func (v ValidationErrors) parseInt(field, raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		v[field] = fmt.Sprintf("%q is not a whole number", raw)
		return 0
	}
	return n
}

func (v ValidationErrors) parseDecimal(field, raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		v[field] = fmt.Sprintf("%q is not a number", raw)
		return decimal.Zero
	}
	return d
}

// applicationForm is the raw applicant submission.
type applicationForm struct {
	Name            string  `form:"name"`
	Email           string  `form:"email"`
	Phone           string  `form:"phone"`
	HasAccount      string  `form:"has_account"`
	AccountNumber   *string `form:"account_number"` // nil when the field is not posted
	LoanTypeID      string  `form:"loan_type_id"`
	AmountRequested string  `form:"amount_requested"`
}

type applicationInput struct {
	Name            string
	Email           string
	Phone           string
	AccountNumber   *string
	LoanTypeID      uint
	AmountRequested decimal.Decimal
}

func (f applicationForm) parse() (applicationInput, error) {
	errs := ValidationErrors{}
	in := applicationInput{
		Name:            f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		LoanTypeID:      errs.parseUint("loan_type_id", f.LoanTypeID),
		AmountRequested: errs.parseDecimal("amount_requested", f.AmountRequested),
	}
	if f.HasAccount == "yes" {
		in.AccountNumber = f.AccountNumber
	}
	return in, errs.orNil()
}

type bankForm struct {
	Name       string `form:"name"`
	Address    string `form:"address"`
	Logo       string `form:"logo"`
	ThemeColor string `form:"theme_color"`
}

// loanTypeForm serves both add and edit; edit ignores Name.
type loanTypeForm struct {
	Name         string `form:"name"`
	TermMonths   string `form:"term_months"`
	MinAmount    string `form:"min_amount"`
	MaxAmount    string `form:"max_amount"`
	InterestRate string `form:"interest_rate"`
}

type loanTypeInput struct {
	Name         string
	TermMonths   int
	MinAmount    decimal.Decimal
	MaxAmount    decimal.Decimal
	InterestRate decimal.Decimal
}

func (f loanTypeForm) parse() (loanTypeInput, error) {
	errs := ValidationErrors{}
	in := loanTypeInput{
		Name:         f.Name,
		TermMonths:   errs.parseInt("term_months", f.TermMonths),
		MinAmount:    errs.parseDecimal("min_amount", f.MinAmount),
		MaxAmount:    errs.parseDecimal("max_amount", f.MaxAmount),
		InterestRate: errs.parseDecimal("interest_rate", f.InterestRate),
	}
	return in, errs.orNil()
}

type kycRequirementForm struct {
	DocumentName string `form:"document_name"`
	Required     string `form:"required"`
}

type kycRequirementInput struct {
	DocumentName string
	Required     bool
}

// parse treats any non-zero integer in Required as true.
func (f kycRequirementForm) parse() (kycRequirementInput, error) {
	errs := ValidationErrors{}
	in := kycRequirementInput{
		DocumentName: f.DocumentName,
		Required:     errs.parseInt("required", f.Required) != 0,
	}
	return in, errs.orNil()
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
