package response_models

// PlanEntry is one destination slot inside a planned day. The planning
// model returns an id/reason pair; the fallback allocator leaves Reason
// empty.
type PlanEntry struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// DayPlan is one day's ordered destination list.
type DayPlan struct {
	Day          int         `json:"day"`
	Destinations []PlanEntry `json:"destinations"`
}
