package repository

import (
	"sync"

	"car-emi/domain"
)

// ScheduleEntry is one saved calculation: the terms that were asked
// for and the yearly roll-up they produced.
type ScheduleEntry struct {
	Terms  domain.LoanTerms
	Yearly []domain.YearlySummary
}

// ScheduleRepositoryMemory is an in-memory implementation of
// ScheduleRepository.
type ScheduleRepositoryMemory struct {
	mu      sync.Mutex
	entries []ScheduleEntry
}

// NewScheduleRepositoryMemory creates a new in-memory schedule
// repository.
func NewScheduleRepositoryMemory() *ScheduleRepositoryMemory {
	return &ScheduleRepositoryMemory{
		entries: []ScheduleEntry{},
	}
}

// Save appends the calculation to the in-memory history.
func (r *ScheduleRepositoryMemory) Save(
	terms domain.LoanTerms,
	yearly []domain.YearlySummary,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, ScheduleEntry{Terms: terms, Yearly: yearly})
	return nil
}

// All returns a copy of the saved history.
func (r *ScheduleRepositoryMemory) All() []ScheduleEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ScheduleEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
