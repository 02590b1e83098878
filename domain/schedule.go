package domain

import "github.com/shopspring/decimal"

// ScheduleRow is one month of an amortization schedule. Amounts are rounded
// to 2 decimal places.
type ScheduleRow struct {
	Month            int
	Payment          decimal.Decimal
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	RemainingBalance decimal.Decimal
}

// AmortizationSchedule holds exactly Terms.TermMonths rows in month order.
type AmortizationSchedule struct {
	Terms          LoanTerms
	MonthlyPayment decimal.Decimal
	Rows           []ScheduleRow
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}

// FinalBalance returns the remaining balance after the last payment.
func (s AmortizationSchedule) FinalBalance() decimal.Decimal {
	if len(s.Rows) == 0 {
		return decimal.Zero
	}
	return s.Rows[len(s.Rows)-1].RemainingBalance
}
