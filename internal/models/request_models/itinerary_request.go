package request_models

type GenerateItineraryRequest struct {
	Province string `json:"province" binding:"required"`
	Days     int    `json:"days" binding:"required"`
}

type UpdateItineraryItem struct {
	DestinationID string `json:"destination_id"`
	DayNumber     int    `json:"day_number"`
	OrderInDay    int    `json:"order_in_day"`
}

type UpdateItineraryRequest struct {
	Items []UpdateItineraryItem `json:"items"`
}

// POISummary is the simplified destination record handed to the planning
// model. Only fields the model needs to group by day are included.
type POISummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
