package response_models

import "lotrinh/internal/models/db_models"

// CategorySnapshot reports how many destinations each category currently
// holds for a region, together with the per-category minimum the request
// needed.
type CategorySnapshot struct {
	TotalDestinations int            `json:"totalDestinations"`
	CategoryCounts    map[string]int `json:"categoryCounts"`
	MinRequired       int            `json:"minRequired"`
}

const (
	GenerateStatusSuccess          = "success"
	GenerateStatusNoDataFound      = "no_data_found"
	GenerateStatusInsufficientData = "insufficient_data"
)

// GenerateOutcome is the engine-level result of a generation request. The
// controller translates it to one of the three response shapes.
type GenerateOutcome struct {
	Status       string
	Itinerary    *db_models.Itinerary
	ShareableURL string

	// Diagnostics for the non-success statuses.
	CurrentData  *CategorySnapshot
	NewDataAdded int
	TotalAfter   int
}
