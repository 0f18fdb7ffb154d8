package service

import (
	"errors"
	"fmt"

	"car-emi/domain"
)

type QuoteService struct {
	schedules *ScheduleService
}

func NewQuoteService(schedules *ScheduleService) *QuoteService {
	return &QuoteService{schedules: schedules}
}

// CalculateQuote derives the effective loan principal from the
// car-purchase inputs, runs the amortization on it and totals the
// flows. PercentLoanPaid in the yearly series is measured against the
// loan amount before the one-time prepayment, so an up-front payment
// shows up as progress already made.
func (s *QuoteService) CalculateQuote(
	input domain.CarQuote,
) (domain.QuoteResult, error) {

	if err := validateQuote(input); err != nil {
		return domain.QuoteResult{}, err
	}

	downPayment := input.CarPrice * input.DownPaymentPercent / 100
	loanBeforeOneTime := input.CarPrice - downPayment - input.InsuranceFees

	principal := loanBeforeOneTime - input.OneTimePrepayment
	if principal < 0 {
		principal = 0
	}

	terms := domain.LoanTerms{
		Principal:           principal,
		AnnualInterestRate:  input.AnnualInterestRate,
		TenureYears:         input.TenureYears,
		MonthlyPrepayment:   input.MonthlyPrepayment,
		QuarterlyPrepayment: input.QuarterlyPrepayment,
		StartYear:           input.StartYear,
	}
	if err := s.schedules.validateTerms(terms); err != nil {
		return domain.QuoteResult{}, err
	}

	monthly := BuildSchedule(terms)
	yearly := AggregateYearlyAgainst(monthly, terms.StartYear, terms.TenureYears, loanBeforeOneTime)

	totalPrincipal := 0.0
	totalPrepayments := input.OneTimePrepayment
	totalInterest := 0.0
	for _, year := range yearly {
		totalPrincipal += year.PrincipalSum
		totalPrepayments += year.PrepaymentSum
		totalInterest += year.InterestSum
	}

	installment := ComputeMonthlyInstallment(principal, input.AnnualInterestRate, input.TenureYears)

	return domain.QuoteResult{
		DownPayment:        roundTo2Decimals(downPayment),
		EffectivePrincipal: roundTo2Decimals(principal),
		MonthlyInstallment: roundTo2Decimals(installment),
		TotalPrincipalPaid: roundTo2Decimals(totalPrincipal),
		TotalPrepayments:   roundTo2Decimals(totalPrepayments),
		TotalInterestPaid:  roundTo2Decimals(totalInterest),
		Monthly:            monthly,
		Yearly:             yearly,
	}, nil
}

func validateQuote(input domain.CarQuote) error {
	if input.CarPrice < 0 {
		return errors.New("car price must not be negative")
	}
	if input.CarPrice > MaxLoanAmount {
		return fmt.Errorf("car price exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.DownPaymentPercent < 0 || input.DownPaymentPercent > MaxDownPaymentPercent {
		return fmt.Errorf("down payment percent must be between 0 and %.0f", MaxDownPaymentPercent)
	}
	if input.InsuranceFees < 0 {
		return errors.New("insurance and fees must not be negative")
	}
	if input.OneTimePrepayment < 0 {
		return errors.New("one-time prepayment must not be negative")
	}
	return nil
}
