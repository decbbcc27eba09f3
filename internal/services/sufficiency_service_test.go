package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lotrinh/internal/models/db_models"
)

func TestEvaluateSufficientSet(t *testing.T) {
	svc := NewSufficiencyService()

	// 2 days: 4 per category, 12 total.
	report := svc.Evaluate(seedDestinations("Đà Lạt", 4), 2)

	assert.True(t, report.Sufficient)
	assert.Equal(t, 12, report.Total)
	assert.Equal(t, 4, report.MinPerCategory)
	for _, category := range db_models.AllCategories() {
		assert.Equal(t, 4, report.CategoryCounts[category])
	}
}

func TestEvaluateCategoryBelowThreshold(t *testing.T) {
	svc := NewSufficiencyService()

	// 3 per category is below minPerCategory=4 for a 2-day trip, even
	// though nothing else is wrong with the set.
	report := svc.Evaluate(seedDestinations("Huế", 3), 2)

	assert.False(t, report.Sufficient)
	assert.Equal(t, 3, report.CategoryCounts[db_models.CategoryFood])
}

func TestEvaluateTotalBelowAggregateThreshold(t *testing.T) {
	svc := NewSufficiencyService()

	// Meet every per-category minimum but pad nothing: 4+4+4=12 < 3*6.
	report := svc.Evaluate(seedDestinations("Nha Trang", 4), 3)

	assert.False(t, report.Sufficient)
	assert.Equal(t, 12, report.Total)
}

func TestEvaluateEmptySet(t *testing.T) {
	svc := NewSufficiencyService()

	report := svc.Evaluate(nil, 1)

	assert.False(t, report.Sufficient)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 2, report.MinPerCategory)
}
