package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billion
	MaxInterestRate = 1000.0          // 1000% per year
	MaxTermMonths   = 600             // 50 years
	MinTermMonths   = 1

	// amounts are reported with cent precision
	moneyPlaces = 2
)
