package service

import (
	"github.com/sirupsen/logrus"

	"loan-schedule/domain"
)

type LoanService struct {
	log *logrus.Logger
}

// NewLoanService creates a new LoanService that reports through the given logger.
func NewLoanService(log *logrus.Logger) *LoanService {
	return &LoanService{log: log}
}

// CalculateLoan calculates the monthly payment and loan totals.
func (s *LoanService) CalculateLoan(
	terms domain.LoanTerms,
) (domain.LoanResult, error) {

	payment, err := MonthlyPayment(terms)
	if err != nil {
		s.rejected(terms, err)
		return domain.LoanResult{}, err
	}

	result := summarize(terms, payment)

	s.log.WithFields(logrus.Fields{
		"monthly_payment": result.MonthlyPayment.StringFixed(moneyPlaces),
		"total_payment":   result.TotalPayment.StringFixed(moneyPlaces),
		"total_interest":  result.TotalInterest.StringFixed(moneyPlaces),
	}).Debug("Loan calculated")

	return result, nil
}

// BuildSchedule builds the amortization schedule for the given terms.
func (s *LoanService) BuildSchedule(
	terms domain.LoanTerms,
) (domain.AmortizationSchedule, error) {

	schedule, err := GenerateSchedule(terms)
	if err != nil {
		s.rejected(terms, err)
		return domain.AmortizationSchedule{}, err
	}

	s.log.WithFields(logrus.Fields{
		"principal":       terms.Principal,
		"annual_rate":     terms.AnnualRatePercent,
		"term_months":     terms.TermMonths,
		"monthly_payment": schedule.MonthlyPayment.StringFixed(moneyPlaces),
		"final_balance":   schedule.FinalBalance().StringFixed(moneyPlaces),
		"rows":            len(schedule.Rows),
	}).Debug("Amortization schedule built")

	return schedule, nil
}

func (s *LoanService) rejected(terms domain.LoanTerms, err error) {
	s.log.WithFields(logrus.Fields{
		"principal":   terms.Principal,
		"annual_rate": terms.AnnualRatePercent,
		"term_months": terms.TermMonths,
	}).Warnf("Loan terms rejected: %v", err)
}
