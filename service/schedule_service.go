package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"car-emi/domain"
	"car-emi/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimals for the summary
// figures; schedule arithmetic itself stays unrounded.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type ScheduleService struct {
	repo     repository.ScheduleRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
}

// NewScheduleService creates a ScheduleService with the given history
// repository and result cache.
func NewScheduleService(
	repo repository.ScheduleRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *ScheduleService {
	return &ScheduleService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (s *ScheduleService) validateTerms(terms domain.LoanTerms) error {
	if terms.Principal < 0 {
		return errors.New("principal must not be negative")
	}
	if terms.Principal > MaxLoanAmount {
		return fmt.Errorf("principal exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if terms.AnnualInterestRate < 0 {
		return errors.New("interest rate must not be negative")
	}
	if terms.AnnualInterestRate > MaxInterestRate {
		return fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if terms.TenureYears < 0 {
		return errors.New("tenure must not be negative")
	}
	if terms.TenureYears > MaxTenureYears {
		return fmt.Errorf("tenure exceeds the maximum of %d years", MaxTenureYears)
	}
	if terms.MonthlyPrepayment < 0 || terms.QuarterlyPrepayment < 0 {
		return errors.New("prepayments must not be negative")
	}
	if terms.StartYear < MinStartYear || terms.StartYear > MaxStartYear {
		return fmt.Errorf("start year must be between %d and %d", MinStartYear, MaxStartYear)
	}
	return nil
}

// CalculateSchedule returns the monthly schedule and yearly roll-up
// for the given terms. Results are cached on the full input tuple;
// cache and history failures are logged and never fail the request.
func (s *ScheduleService) CalculateSchedule(
	terms domain.LoanTerms,
) (domain.ScheduleResult, error) {

	if err := s.validateTerms(terms); err != nil {
		return domain.ScheduleResult{}, err
	}

	key := scheduleCacheKey(terms)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.ScheduleResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		log.Printf("Warning: discarding malformed cache entry for %s", key)
	}

	monthly := BuildSchedule(terms)
	yearly := AggregateYearly(monthly, terms.StartYear, terms.TenureYears)

	result := domain.ScheduleResult{
		MonthlyInstallment: roundTo2Decimals(
			ComputeMonthlyInstallment(terms.Principal, terms.AnnualInterestRate, terms.TenureYears),
		),
		Monthly: monthly,
		Yearly:  yearly,
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(encoded), s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache schedule: %v", err)
		}
	}

	if err := s.repo.Save(terms, result.Yearly); err != nil {
		log.Printf("Warning: failed to save schedule calculation: %v", err)
	}

	return result, nil
}

// CalculateInstallment returns the EMI and the derived totals without
// building a schedule.
func (s *ScheduleService) CalculateInstallment(
	input domain.InstallmentInput,
) (domain.InstallmentResult, error) {

	if input.Principal < 0 {
		return domain.InstallmentResult{}, errors.New("principal must not be negative")
	}
	if input.Principal > MaxLoanAmount {
		return domain.InstallmentResult{}, fmt.Errorf("principal exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.AnnualInterestRate < 0 {
		return domain.InstallmentResult{}, errors.New("interest rate must not be negative")
	}
	if input.AnnualInterestRate > MaxInterestRate {
		return domain.InstallmentResult{}, fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TenureYears <= 0 {
		return domain.InstallmentResult{}, errors.New("tenure must be positive")
	}
	if input.TenureYears > MaxTenureYears {
		return domain.InstallmentResult{}, fmt.Errorf("tenure exceeds the maximum of %d years", MaxTenureYears)
	}

	installment := ComputeMonthlyInstallment(input.Principal, input.AnnualInterestRate, input.TenureYears)
	total := installment * float64(input.TenureYears*monthsPerYear)

	return domain.InstallmentResult{
		MonthlyPayment: roundTo2Decimals(installment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Principal),
	}, nil
}

// scheduleCacheKey derives the cache key from every LoanTerms field so
// two requests share an entry only when all inputs match.
func scheduleCacheKey(terms domain.LoanTerms) string {
	return fmt.Sprintf("schedule:%g:%g:%d:%g:%g:%d",
		terms.Principal,
		terms.AnnualInterestRate,
		terms.TenureYears,
		terms.MonthlyPrepayment,
		terms.QuarterlyPrepayment,
		terms.StartYear,
	)
}
