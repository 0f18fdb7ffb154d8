package service

import (
	"math"
	"time"

	"car-emi/domain"
)

const monthsPerYear = 12

// monthAbbr returns the English three-letter label for a 0-based month
// index within the year.
func monthAbbr(index int) string {
	return time.Month(index + 1).String()[:3]
}

// ComputeMonthlyInstallment returns the fixed monthly payment (EMI)
// that amortizes principal over tenureYears at the given annual rate:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the number of months. Zero tenure
// yields 0, zero rate yields the straight-line split. The function is
// total over non-negative inputs; callers validate ranges upstream.
func ComputeMonthlyInstallment(principal, annualRatePercent float64, tenureYears int) float64 {
	totalMonths := tenureYears * monthsPerYear
	if totalMonths <= 0 {
		return 0
	}
	monthlyRate := (annualRatePercent / 100) / monthsPerYear
	if monthlyRate == 0 {
		return principal / float64(totalMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(totalMonths))
	return principal * monthlyRate * factor / (factor - 1)
}

// BuildSchedule walks the loan month by month, splitting each
// installment into interest and principal and applying prepayments.
// The sequence ends when the balance reaches 0 or the nominal tenure
// runs out, whichever comes first. The hard stop at the nominal tenure
// can leave a residual balance; that residual is reported, not
// corrected. Zero principal or zero tenure produces an empty schedule.
func BuildSchedule(terms domain.LoanTerms) []domain.MonthlyRecord {
	totalMonths := terms.TenureYears * monthsPerYear
	monthlyRate := (terms.AnnualInterestRate / 100) / monthsPerYear
	installment := ComputeMonthlyInstallment(terms.Principal, terms.AnnualInterestRate, terms.TenureYears)

	records := []domain.MonthlyRecord{}
	balance := terms.Principal

	for month := 1; balance > 0 && month <= totalMonths; month++ {
		interest := balance * monthlyRate
		principalPart := installment - interest

		prepayment := 0.0
		if terms.MonthlyPrepayment > 0 {
			prepayment += terms.MonthlyPrepayment
		}
		if terms.QuarterlyPrepayment > 0 && month%3 == 0 {
			prepayment += terms.QuarterlyPrepayment
		}

		opening := balance
		balance -= principalPart + prepayment
		if balance < 0 {
			balance = 0
		}

		records = append(records, domain.MonthlyRecord{
			Year:           terms.StartYear + (month-1)/monthsPerYear,
			MonthNumber:    month,
			MonthAbbr:      monthAbbr((month - 1) % monthsPerYear),
			OpeningBalance: opening,
			InterestPaid:   interest,
			PrincipalPaid:  principalPart,
			Prepayment:     prepayment,
			ClosingBalance: balance,
		})
	}

	return records
}

// AggregateYearlyAgainst reduces a monthly schedule to one summary per
// calendar year in [startYear, startYear+tenureYears). Years without
// records (loan paid off early) still get a zeroed summary so the
// series always has tenureYears entries. initialPrincipal is the base
// for PercentLoanPaid; a base of 0 or less means the loan is trivially
// fully paid and every year reports 100.
func AggregateYearlyAgainst(records []domain.MonthlyRecord, startYear, tenureYears int, initialPrincipal float64) []domain.YearlySummary {
	type yearTotals struct {
		principal    float64
		prepayment   float64
		interest     float64
		finalBalance float64
	}

	totals := make(map[int]*yearTotals, tenureYears)
	for _, rec := range records {
		yt := totals[rec.Year]
		if yt == nil {
			yt = &yearTotals{}
			totals[rec.Year] = yt
		}
		yt.principal += rec.PrincipalPaid
		yt.prepayment += rec.Prepayment
		yt.interest += rec.InterestPaid
		// records arrive in chronological order, so the last one
		// seen for a year carries the year-end balance
		yt.finalBalance = rec.ClosingBalance
	}

	summaries := make([]domain.YearlySummary, 0, tenureYears)
	cumulative := 0.0

	for year := startYear; year < startYear+tenureYears; year++ {
		yt := totals[year]
		if yt == nil {
			yt = &yearTotals{}
		}

		finalBalance := math.Max(0, yt.finalBalance)
		cumulative += yt.principal + yt.prepayment

		percent := 100.0
		if initialPrincipal > 0 {
			percent = math.Min(100, cumulative/initialPrincipal*100)
		}
		// guard against floating-point residue near payoff
		if finalBalance <= 0 {
			percent = 100
		}

		summaries = append(summaries, domain.YearlySummary{
			Year:            year,
			PrincipalSum:    yt.principal,
			PrepaymentSum:   yt.prepayment,
			InterestSum:     yt.interest,
			TotalPayment:    yt.principal + yt.interest + yt.prepayment,
			FinalBalance:    finalBalance,
			PercentLoanPaid: percent,
		})
	}

	return summaries
}

// AggregateYearly is AggregateYearlyAgainst with the base taken from
// the schedule itself: the first record's opening balance, i.e. the
// principal the loan opened at.
func AggregateYearly(records []domain.MonthlyRecord, startYear, tenureYears int) []domain.YearlySummary {
	initial := 0.0
	if len(records) > 0 {
		initial = records[0].OpeningBalance
	}
	return AggregateYearlyAgainst(records, startYear, tenureYears, initial)
}
