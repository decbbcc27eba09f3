package db_models

import "github.com/google/uuid"

type Itinerary struct {
	BaseModel
	ShareableID string `gorm:"uniqueIndex;not null" json:"shareable_id"`
	Title       string `gorm:"not null" json:"title"`

	Items []ItineraryItem `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE" json:"items"`
}

// ItineraryItem places one destination on one day of an itinerary.
// Within an (itinerary, day) pair the OrderInDay values are a contiguous
// 1..k sequence; generation and replacement both write full sets at once.
type ItineraryItem struct {
	BaseModel
	ItineraryID   uuid.UUID `gorm:"type:uuid;not null;index" json:"itinerary_id"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null" json:"destination_id"`
	DayNumber     int       `gorm:"not null" json:"day_number"`
	OrderInDay    int       `gorm:"not null" json:"order_in_day"`
	Reason        string    `gorm:"type:text" json:"reason,omitempty"`

	Destination *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
}
