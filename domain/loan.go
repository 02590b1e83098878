package domain

import "github.com/shopspring/decimal"

const MonthsPerYear = 12

// LoanTerms is the immutable input of a fixed-rate amortizing loan.
type LoanTerms struct {
	Principal         float64
	AnnualRatePercent float64
	TermMonths        int
}

// MonthlyRate returns the nominal annual rate converted to a monthly fraction.
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 100 / MonthsPerYear
}

type LoanResult struct {
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}
