package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // upper bound on any money input
	MaxInterestRate = 1000.0          // 1000% annual
	MaxTenureYears  = 50

	MinStartYear = 1900
	MaxStartYear = 2200

	MaxDownPaymentPercent = 100.0
)
