package service

import (
	"github.com/shopspring/decimal"

	"loan-schedule/domain"
)

// GenerateSchedule builds the month-by-month amortization schedule.
//
// The running balance is kept unrounded; only the emitted rows are rounded,
// so the final balance carries the rounding residue of the monthly payment.
func GenerateSchedule(terms domain.LoanTerms) (domain.AmortizationSchedule, error) {
	payment, err := MonthlyPayment(terms)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	r := terms.MonthlyRate()
	m := payment.InexactFloat64()
	balance := terms.Principal

	rows := make([]domain.ScheduleRow, 0, terms.TermMonths)
	for month := 1; month <= terms.TermMonths; month++ {
		interest := balance * r
		principal := m - interest
		balance -= principal

		rows = append(rows, domain.ScheduleRow{
			Month:            month,
			Payment:          payment,
			Interest:         roundMoney(interest),
			Principal:        roundMoney(principal),
			RemainingBalance: roundMoney(balance),
		})
	}

	totals := summarize(terms, payment)

	return domain.AmortizationSchedule{
		Terms:          terms,
		MonthlyPayment: payment,
		Rows:           rows,
		TotalPayment:   totals.TotalPayment,
		TotalInterest:  totals.TotalInterest,
	}, nil
}

func summarize(terms domain.LoanTerms, payment decimal.Decimal) domain.LoanResult {
	total := payment.Mul(decimal.NewFromInt(int64(terms.TermMonths)))
	interest := total.Sub(decimal.NewFromFloat(terms.Principal))

	return domain.LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   total.Round(moneyPlaces),
		TotalInterest:  interest.Round(moneyPlaces),
	}
}
