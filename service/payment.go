package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"loan-schedule/domain"
)

// roundMoney rounds a float64 to cents, half away from zero.
func roundMoney(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(moneyPlaces)
}

func validateTerms(terms domain.LoanTerms) error {
	if math.IsNaN(terms.Principal) || math.IsInf(terms.Principal, 0) || terms.Principal <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, terms.Principal)
	}
	if terms.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: exceeds the maximum of %.2f", ErrInvalidAmount, MaxLoanAmount)
	}
	if math.IsNaN(terms.AnnualRatePercent) || math.IsInf(terms.AnnualRatePercent, 0) || terms.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, terms.AnnualRatePercent)
	}
	if terms.AnnualRatePercent > MaxInterestRate {
		return fmt.Errorf("%w: exceeds the maximum of %.2f%%", ErrInvalidRate, MaxInterestRate)
	}
	if terms.TermMonths < MinTermMonths {
		return fmt.Errorf("%w: %d months", ErrInvalidTerm, terms.TermMonths)
	}
	if terms.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: exceeds the maximum of %d months", ErrInvalidTerm, MaxTermMonths)
	}
	return nil
}

// MonthlyPayment returns the fixed payment that amortizes the loan in
// TermMonths equal installments, rounded to cents.
func MonthlyPayment(terms domain.LoanTerms) (decimal.Decimal, error) {
	if err := validateTerms(terms); err != nil {
		return decimal.Decimal{}, err
	}

	n := float64(terms.TermMonths)
	r := terms.MonthlyRate()

	if r == 0 {
		return roundMoney(terms.Principal / n), nil
	}

	growth := math.Pow(1+r, n)
	coefficient := r * growth / (growth - 1)

	return roundMoney(terms.Principal * coefficient), nil
}
