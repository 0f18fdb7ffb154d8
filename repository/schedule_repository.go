package repository

import "car-emi/domain"

// ScheduleRepository records completed schedule calculations.
type ScheduleRepository interface {
	Save(terms domain.LoanTerms, yearly []domain.YearlySummary) error
}
