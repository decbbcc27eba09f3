package db_models

import (
	"gorm.io/datatypes"
)

// Destination categories. The slugs come from the seed data set and are part
// of the stored rows, so they stay Vietnamese.
const (
	CategoryFood        = "am-thuc"
	CategoryLodging     = "khach-san"
	CategorySightseeing = "tham-quan"
)

func AllCategories() []string {
	return []string{CategoryFood, CategoryLodging, CategorySightseeing}
}

// Destination is one point of interest. Re-enrichment deduplicates on
// (name, city, category), hence the composite unique index.
type Destination struct {
	BaseModel
	Name        string  `gorm:"not null;uniqueIndex:idx_destinations_natural_key" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Address     string  `json:"address"`
	City        string  `gorm:"uniqueIndex:idx_destinations_natural_key" json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    string  `gorm:"uniqueIndex:idx_destinations_natural_key" json:"category"`
	ImageURL    string  `json:"image_url"`

	// Raw provider identity (xid, kinds) kept for re-enrichment audits.
	ProviderMeta datatypes.JSON `gorm:"type:jsonb" json:"provider_meta,omitempty"`
}
