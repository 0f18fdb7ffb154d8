package repository

import (
	"testing"

	"car-emi/domain"
)

func TestScheduleRepositoryMemory_Save(t *testing.T) {

	repo := NewScheduleRepositoryMemory()

	terms := domain.LoanTerms{Principal: 450000, AnnualInterestRate: 9, TenureYears: 5, StartYear: 2024}
	yearly := []domain.YearlySummary{{Year: 2024}}

	if err := repo.Save(terms, yearly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := repo.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Terms != terms {
		t.Errorf("saved terms differ: %+v", entries[0].Terms)
	}
	if len(entries[0].Yearly) != 1 || entries[0].Yearly[0].Year != 2024 {
		t.Errorf("saved yearly differs: %+v", entries[0].Yearly)
	}
}
