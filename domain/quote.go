package domain

// CarQuote is the purchase-side input: the loan principal is derived
// from the car price, not supplied directly.
type CarQuote struct {
	CarPrice           float64 `json:"car_price"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	InsuranceFees      float64 `json:"insurance_fees"`
	OneTimePrepayment  float64 `json:"one_time_prepayment"`

	AnnualInterestRate  float64 `json:"annual_interest_rate"`
	TenureYears         int     `json:"tenure_years"`
	MonthlyPrepayment   float64 `json:"monthly_prepayment"`
	QuarterlyPrepayment float64 `json:"quarterly_prepayment"`
	StartYear           int     `json:"start_year"`
}

// QuoteResult echoes the derived amounts and carries the totals the
// breakdown charts are built from, plus the full schedule.
type QuoteResult struct {
	DownPayment        float64 `json:"down_payment"`
	EffectivePrincipal float64 `json:"effective_principal"`
	MonthlyInstallment float64 `json:"monthly_installment"`

	TotalPrincipalPaid float64 `json:"total_principal_paid"`
	TotalPrepayments   float64 `json:"total_prepayments"`
	TotalInterestPaid  float64 `json:"total_interest_paid"`

	Monthly []MonthlyRecord `json:"monthly"`
	Yearly  []YearlySummary `json:"yearly"`
}
