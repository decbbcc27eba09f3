package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"lotrinh/internal/models/db_models"
	"lotrinh/internal/models/request_models"
	"lotrinh/internal/models/response_models"
	"lotrinh/pkg/utils"
)

const aiPlanningTimeout = 45 * time.Second

type PlannerServiceInterface interface {
	// RequestAIPlan returns (nil, nil) when the collaborator produced no
	// usable plan. That is an expected outcome, not an error.
	RequestAIPlan(ctx context.Context, destinations []db_models.Destination, days int) ([]response_models.DayPlan, error)
	FallbackAllocate(destinations []db_models.Destination, days int) []response_models.DayPlan
}

type PlannerService struct {
	aiClient utils.PlannerClientInterface
}

func NewPlannerService(aiClient utils.PlannerClientInterface) PlannerServiceInterface {
	return &PlannerService{aiClient: aiClient}
}

func (p *PlannerService) RequestAIPlan(ctx context.Context, destinations []db_models.Destination, days int) ([]response_models.DayPlan, error) {
	if p.aiClient == nil || len(destinations) == 0 {
		return nil, nil
	}

	summaries := make([]request_models.POISummary, 0, len(destinations))
	known := make(map[string]bool, len(destinations))
	for _, dest := range destinations {
		id := dest.ID.String()
		known[id] = true
		summaries = append(summaries, request_models.POISummary{
			ID:          id,
			Name:        dest.Name,
			Description: dest.Description,
			Category:    dest.Category,
			Address:     dest.Address,
			Latitude:    dest.Latitude,
			Longitude:   dest.Longitude,
		})
	}

	// One bounded attempt. Repeated calls produce divergent plans, so a
	// failure falls through to the deterministic allocator instead.
	ctx, cancel := context.WithTimeout(ctx, aiPlanningTimeout)
	defer cancel()

	raw, err := p.aiClient.GenerateDayGrouping(ctx, summaries, days)
	if err != nil {
		log.Printf("AI planning call failed, falling back: %v", err)
		return nil, nil
	}

	return parseDayPlans(raw, days, known), nil
}

// parseDayPlans validates the collaborator's reply against the candidate
// set. Entries referencing unknown IDs are dropped, a day left without
// valid entries is dropped, entries for a repeated day number are merged
// into one day, and an empty result means "no plan".
func parseDayPlans(raw string, days int, known map[string]bool) []response_models.DayPlan {
	cleaned := utils.CleanJSONResponse(raw)

	var plans []response_models.DayPlan
	if err := json.Unmarshal([]byte(cleaned), &plans); err != nil {
		log.Printf("AI plan is not valid JSON, falling back: %v", err)
		return nil
	}

	byDay := make(map[int][]response_models.PlanEntry)
	for _, plan := range plans {
		if plan.Day < 1 || plan.Day > days {
			log.Printf("dropping AI plan day %d outside 1..%d", plan.Day, days)
			continue
		}

		for _, entry := range plan.Destinations {
			if !known[entry.ID] {
				log.Printf("dropping unknown destination %q from AI plan day %d", entry.ID, plan.Day)
				continue
			}
			byDay[plan.Day] = append(byDay[plan.Day], entry)
		}
	}

	var valid []response_models.DayPlan
	for day, entries := range byDay {
		valid = append(valid, response_models.DayPlan{Day: day, Destinations: entries})
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].Day < valid[j].Day })
	return valid
}

// FallbackAllocate splits the candidate list into contiguous chunks of
// ceil(min(N, days*4)/days) and hands chunk k to day k. Days past the last
// chunk stay empty.
func (p *PlannerService) FallbackAllocate(destinations []db_models.Destination, days int) []response_models.DayPlan {
	if len(destinations) == 0 || days < 1 {
		return nil
	}

	usable := len(destinations)
	if limit := days * 4; usable > limit {
		usable = limit
	}
	perDay := (usable + days - 1) / days

	var plans []response_models.DayPlan
	for day := 1; day <= days; day++ {
		start := (day - 1) * perDay
		if start >= len(destinations) {
			break
		}
		end := start + perDay
		if end > len(destinations) {
			end = len(destinations)
		}

		entries := make([]response_models.PlanEntry, 0, end-start)
		for _, dest := range destinations[start:end] {
			entries = append(entries, response_models.PlanEntry{ID: dest.ID.String()})
		}
		plans = append(plans, response_models.DayPlan{Day: day, Destinations: entries})
	}

	return plans
}
