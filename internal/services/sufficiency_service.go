package services

import (
	"strings"

	"lotrinh/internal/models/db_models"
)

// SufficiencyReport is the verdict on whether locally known destinations can
// cover a requested trip without external enrichment.
type SufficiencyReport struct {
	Sufficient     bool
	Total          int
	MinPerCategory int
	CategoryCounts map[string]int
}

type SufficiencyServiceInterface interface {
	Evaluate(destinations []db_models.Destination, days int) SufficiencyReport
}

type SufficiencyService struct{}

func NewSufficiencyService() SufficiencyServiceInterface {
	return &SufficiencyService{}
}

// Evaluate requires at least days*2 destinations in every category and
// days*6 in total. Each day can then draw from food, lodging and
// sightseeing without exhausting a category.
func (s *SufficiencyService) Evaluate(destinations []db_models.Destination, days int) SufficiencyReport {
	report := SufficiencyReport{
		Total:          len(destinations),
		MinPerCategory: days * 2,
		CategoryCounts: make(map[string]int, 3),
	}

	for _, category := range db_models.AllCategories() {
		count := 0
		for _, dest := range destinations {
			if strings.Contains(dest.Category, category) {
				count++
			}
		}
		report.CategoryCounts[category] = count
	}

	report.Sufficient = report.Total >= days*6
	for _, count := range report.CategoryCounts {
		if count < report.MinPerCategory {
			report.Sufficient = false
		}
	}

	return report
}
