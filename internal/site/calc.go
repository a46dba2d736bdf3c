package site

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/borrowww/web/internal/views"
)

// EMI returns the equated monthly instalment for a principal at an annual
// percentage rate over the given number of months.
func EMI(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12 / 100
	if r == 0 {
		return principal / float64(months)
	}
	pow := math.Pow(1+r, float64(months))
	return principal * r * pow / (pow - 1)
}

// ComputeSavings compares the EMI on the current and proposed rates over the
// remaining tenure.
func ComputeSavings(outstanding, currentRate, newRate float64, tenureYears int) (views.Savings, error) {
	switch {
	case outstanding <= 0:
		return views.Savings{}, fmt.Errorf("outstanding principal must be positive")
	case currentRate <= 0 || currentRate > 30 || newRate <= 0 || newRate > 30:
		return views.Savings{}, fmt.Errorf("interest rates must be between 0 and 30 percent")
	case tenureYears <= 0 || tenureYears > 30:
		return views.Savings{}, fmt.Errorf("tenure must be between 1 and 30 years")
	case newRate >= currentRate:
		return views.Savings{}, fmt.Errorf("the new rate must be lower than your current rate")
	}

	months := tenureYears * 12
	current := EMI(outstanding, currentRate, months)
	proposed := EMI(outstanding, newRate, months)
	monthly := current - proposed
	return views.Savings{
		CurrentEMI:  current,
		NewEMI:      proposed,
		MonthlySave: monthly,
		TotalSave:   monthly * float64(months),
		TenureYears: tenureYears,
	}, nil
}

// BandFor estimates a credit band from income, existing obligations and
// recent missed payments. The cutoffs mirror the FOIR thresholds partner
// lenders publish.
func BandFor(monthlyIncome, monthlyEMI float64, missedPayments int) (views.ScoreBand, error) {
	if monthlyIncome <= 0 {
		return views.ScoreBand{}, fmt.Errorf("monthly income must be positive")
	}
	if monthlyEMI < 0 || missedPayments < 0 {
		return views.ScoreBand{}, fmt.Errorf("EMIs and missed payments must not be negative")
	}

	foir := monthlyEMI / monthlyIncome
	switch {
	case missedPayments == 0 && foir < 0.3:
		return views.ScoreBand{
			Band:    "Excellent",
			Advice:  "You qualify for every partner lender's best advertised rates.",
			MinRate: 8.30,
		}, nil
	case missedPayments <= 1 && foir < 0.45:
		return views.ScoreBand{
			Band:    "Good",
			Advice:  "Most lenders will approve at standard rates. Clearing one small EMI would move you to Excellent.",
			MinRate: 8.60,
		}, nil
	case missedPayments <= 3 && foir < 0.6:
		return views.ScoreBand{
			Band:    "Fair",
			Advice:  "Expect manual review. Six months of on-time payments typically lifts this band.",
			MinRate: 9.40,
		}, nil
	default:
		return views.ScoreBand{
			Band:   "Building",
			Advice: "Focus on clearing overdue payments before applying; secured products remain available.",
		}, nil
	}
}

// savingsAction handles the balance-transfer calculator form.
func savingsAction(r *http.Request) templ.Component {
	outstanding, err1 := formFloat(r, "outstanding")
	currentRate, err2 := formFloat(r, "current_rate")
	newRate, err3 := formFloat(r, "new_rate")
	years, err4 := formInt(r, "tenure_years")
	if err := firstError(err1, err2, err3, err4); err != nil {
		return views.CalculatorError("Please fill in every field with a number.")
	}
	s, err := ComputeSavings(outstanding, currentRate, newRate, years)
	if err != nil {
		return views.CalculatorError(capitalise(err.Error()) + ".")
	}
	return views.SavingsResult(s)
}

// scoreAction handles the credit-check form.
func scoreAction(r *http.Request) templ.Component {
	income, err1 := formFloat(r, "monthly_income")
	emi, err2 := formFloat(r, "monthly_emi")
	missed, err3 := formInt(r, "missed_payments")
	if err := firstError(err1, err2, err3); err != nil {
		return views.CalculatorError("Please fill in every field with a number.")
	}
	band, err := BandFor(income, emi, missed)
	if err != nil {
		return views.CalculatorError(capitalise(err.Error()) + ".")
	}
	return views.ScoreResult(band)
}

func formFloat(r *http.Request, key string) (float64, error) {
	return strconv.ParseFloat(r.FormValue(key), 64)
}

func formInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(r.FormValue(key))
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
