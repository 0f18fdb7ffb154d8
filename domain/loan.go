package domain

// LoanTerms is the immutable input to one schedule calculation.
type LoanTerms struct {
	Principal           float64 `json:"principal"`
	AnnualInterestRate  float64 `json:"annual_interest_rate"`
	TenureYears         int     `json:"tenure_years"`
	MonthlyPrepayment   float64 `json:"monthly_prepayment"`
	QuarterlyPrepayment float64 `json:"quarterly_prepayment"`
	StartYear           int     `json:"start_year"`
}

// MonthlyRecord is one elapsed month of the amortization schedule.
// MonthNumber is a 1-based index across the whole tenure, not the
// month of year.
type MonthlyRecord struct {
	Year           int     `json:"year"`
	MonthNumber    int     `json:"month_number"`
	MonthAbbr      string  `json:"month"`
	OpeningBalance float64 `json:"opening_balance"`
	InterestPaid   float64 `json:"interest_paid"`
	PrincipalPaid  float64 `json:"principal_paid"`
	Prepayment     float64 `json:"prepayment"`
	ClosingBalance float64 `json:"closing_balance"`
}

// YearlySummary is the roll-up of one calendar year of the tenure.
// Years after an early payoff still get a summary with zero sums.
type YearlySummary struct {
	Year            int     `json:"year"`
	PrincipalSum    float64 `json:"principal_sum"`
	PrepaymentSum   float64 `json:"prepayment_sum"`
	InterestSum     float64 `json:"interest_sum"`
	TotalPayment    float64 `json:"total_payment"`
	FinalBalance    float64 `json:"final_balance"`
	PercentLoanPaid float64 `json:"percent_loan_paid"`
}

// ScheduleResult is the full output of a schedule calculation.
type ScheduleResult struct {
	MonthlyInstallment float64         `json:"monthly_installment"`
	Monthly            []MonthlyRecord `json:"monthly"`
	Yearly             []YearlySummary `json:"yearly"`
}

// InstallmentInput are the parameters for a plain EMI calculation
// without a schedule.
type InstallmentInput struct {
	Principal          float64 `json:"principal"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	TenureYears        int     `json:"tenure_years"`
}

type InstallmentResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}
