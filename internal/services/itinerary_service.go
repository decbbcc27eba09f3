package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"lotrinh/internal/models/db_models"
	"lotrinh/internal/models/request_models"
	"lotrinh/internal/models/response_models"
	"lotrinh/internal/repositories"
	"lotrinh/pkg/cache"
	mem "lotrinh/pkg/memcache"
	"lotrinh/pkg/utils"
)

const (
	maxTripDays          = 30
	readCacheTTL         = 5 * time.Minute
	minAfterEnrichFactor = 3 // times the day count, re-checked after enrichment
)

type ItineraryServiceInterface interface {
	ListDestinations(ctx context.Context) ([]db_models.Destination, error)
	ListItineraries(ctx context.Context) ([]db_models.Itinerary, error)
	GetItineraryByShareableID(ctx context.Context, shareableID string) (*db_models.Itinerary, error)
	GenerateItinerary(ctx context.Context, province string, days int) (*response_models.GenerateOutcome, error)
	ReplaceItineraryItems(ctx context.Context, shareableID string, items []request_models.UpdateItineraryItem) (*db_models.Itinerary, error)
}

type ItineraryService struct {
	destinationRepo repositories.DestinationRepository
	itineraryRepo   repositories.ItineraryRepository
	sufficiency     SufficiencyServiceInterface
	enrichment      EnrichmentServiceInterface
	planner         PlannerServiceInterface
	readCache       cache.ReadCache
	regionLocks     *mem.RegionLocks
}

func NewItineraryService(
	destinationRepo repositories.DestinationRepository,
	itineraryRepo repositories.ItineraryRepository,
	sufficiency SufficiencyServiceInterface,
	enrichment EnrichmentServiceInterface,
	planner PlannerServiceInterface,
	readCache cache.ReadCache,
) ItineraryServiceInterface {
	return &ItineraryService{
		destinationRepo: destinationRepo,
		itineraryRepo:   itineraryRepo,
		sufficiency:     sufficiency,
		enrichment:      enrichment,
		planner:         planner,
		readCache:       readCache,
		regionLocks:     mem.NewRegionLocks(),
	}
}

func (s *ItineraryService) ListDestinations(ctx context.Context) ([]db_models.Destination, error) {
	var cached []db_models.Destination
	if s.readCache.GetJSON(ctx, cache.KeyAllDestinations, &cached) {
		return cached, nil
	}

	destinations, err := s.destinationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.readCache.SetJSON(ctx, cache.KeyAllDestinations, destinations, readCacheTTL)
	return destinations, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context) ([]db_models.Itinerary, error) {
	var cached []db_models.Itinerary
	if s.readCache.GetJSON(ctx, cache.KeyAllItineraries, &cached) {
		return cached, nil
	}

	itineraries, err := s.itineraryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.readCache.SetJSON(ctx, cache.KeyAllItineraries, itineraries, readCacheTTL)
	return itineraries, nil
}

func (s *ItineraryService) GetItineraryByShareableID(ctx context.Context, shareableID string) (*db_models.Itinerary, error) {
	if shareableID == "" {
		return nil, utils.ErrInvalidInput
	}

	var cached db_models.Itinerary
	if s.readCache.GetJSON(ctx, cache.KeyItinerary(shareableID), &cached) {
		return &cached, nil
	}

	itinerary, err := s.itineraryRepo.GetByShareableID(ctx, shareableID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	s.readCache.SetJSON(ctx, cache.KeyItinerary(shareableID), itinerary, readCacheTTL)
	return itinerary, nil
}

// GenerateItinerary runs the full pipeline: sufficiency check, optional
// enrichment, AI grouping with deterministic fallback, then one
// transactional write. Generation is serialized per region.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, province string, days int) (*response_models.GenerateOutcome, error) {
	if province == "" || days < 1 || days > maxTripDays {
		return nil, fmt.Errorf("%w: province is required and days must be 1-%d", utils.ErrInvalidInput, maxTripDays)
	}

	release := s.regionLocks.Acquire(province)
	defer release()

	destinations, err := s.destinationRepo.ListByCity(ctx, province)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	report := s.sufficiency.Evaluate(destinations, days)
	log.Printf("sufficiency for %s/%dd: total=%d counts=%v sufficient=%t",
		province, days, report.Total, report.CategoryCounts, report.Sufficient)

	if !report.Sufficient {
		outcome, err := s.enrichRegion(ctx, province, days, report)
		if err != nil || outcome != nil {
			return outcome, err
		}
		// Enrichment added enough rows; reload the candidate set.
		destinations, err = s.destinationRepo.ListByCity(ctx, province)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	plans, err := s.planner.RequestAIPlan(ctx, destinations, days)
	if err != nil || len(plans) == 0 {
		log.Printf("no usable AI plan for %s, using fallback allocation", province)
		plans = s.planner.FallbackAllocate(destinations, days)
	}

	itinerary := &db_models.Itinerary{
		ShareableID: utils.BuildShareableID(province, days),
		Title:       fmt.Sprintf("Khám phá %s %d ngày", province, days),
	}

	if err := s.itineraryRepo.CreateWithItems(ctx, itinerary, buildItems(plans)); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	created, err := s.itineraryRepo.GetByShareableID(ctx, itinerary.ShareableID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.readCache.Delete(ctx, cache.KeyAllItineraries)

	return &response_models.GenerateOutcome{
		Status:       response_models.GenerateStatusSuccess,
		Itinerary:    created,
		ShareableURL: "/itinerary/" + itinerary.ShareableID,
	}, nil
}

// enrichRegion pulls provider data and re-checks coverage. It returns a
// non-nil outcome when generation cannot proceed, and (nil, nil) when the
// caller should continue with the refreshed destination set.
func (s *ItineraryService) enrichRegion(ctx context.Context, province string, days int, report SufficiencyReport) (*response_models.GenerateOutcome, error) {
	log.Printf("insufficient data for %s, calling external provider", province)

	fetched, err := s.enrichment.FetchDestinationsForRegion(ctx, province)
	if err != nil {
		return nil, err
	}
	if len(fetched) == 0 {
		return &response_models.GenerateOutcome{
			Status: response_models.GenerateStatusNoDataFound,
			CurrentData: &response_models.CategorySnapshot{
				TotalDestinations: report.Total,
				CategoryCounts:    report.CategoryCounts,
				MinRequired:       report.MinPerCategory,
			},
		}, nil
	}

	inserted, err := s.destinationRepo.UpsertBatch(ctx, fetched)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	log.Printf("saved %d new destinations for %s", inserted, province)

	// New rows must show up on the destinations listing even when
	// generation stops at insufficient_data below.
	if inserted > 0 {
		s.readCache.Delete(ctx, cache.KeyAllDestinations)
	}

	refreshed, err := s.destinationRepo.ListByCity(ctx, province)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(refreshed) < days*minAfterEnrichFactor {
		return &response_models.GenerateOutcome{
			Status:       response_models.GenerateStatusInsufficientData,
			NewDataAdded: inserted,
			TotalAfter:   len(refreshed),
		}, nil
	}

	return nil, nil
}

// ReplaceItineraryItems validates and atomically rewrites an itinerary's
// item set.
func (s *ItineraryService) ReplaceItineraryItems(ctx context.Context, shareableID string, items []request_models.UpdateItineraryItem) (*db_models.Itinerary, error) {
	if shareableID == "" {
		return nil, utils.ErrInvalidInput
	}

	existing, err := s.itineraryRepo.GetByShareableID(ctx, shareableID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing == nil {
		return nil, utils.ErrItineraryNotFound
	}

	newItems := make([]db_models.ItineraryItem, 0, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for i, item := range items {
		if item.DestinationID == "" || item.DayNumber < 1 || item.OrderInDay < 1 {
			return nil, fmt.Errorf("%w: item %d is missing destination_id, day_number or order_in_day", utils.ErrInvalidInput, i+1)
		}
		destID, err := uuid.Parse(item.DestinationID)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d has an invalid destination_id", utils.ErrInvalidInput, i+1)
		}
		ids = append(ids, destID)
		newItems = append(newItems, db_models.ItineraryItem{
			DestinationID: destID,
			DayNumber:     item.DayNumber,
			OrderInDay:    item.OrderInDay,
		})
	}

	existingIDs, err := s.destinationRepo.FilterExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	for i, id := range ids {
		if !existingIDs[id] {
			return nil, fmt.Errorf("%w: destination %s in item %d does not exist", utils.ErrDestinationNotFound, id, i+1)
		}
	}

	reconciled, err := s.itineraryRepo.ReplaceItems(ctx, shareableID, newItems)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if reconciled == nil {
		return nil, utils.ErrItineraryNotFound
	}

	s.readCache.Delete(ctx, cache.KeyItinerary(shareableID), cache.KeyAllItineraries)
	return reconciled, nil
}

// buildItems flattens day plans into rows. Positions are numbered per day,
// not per plan object, so the order-in-day values within each day stay a
// contiguous 1..k sequence even when plans repeat a day number.
func buildItems(plans []response_models.DayPlan) []db_models.ItineraryItem {
	var items []db_models.ItineraryItem
	nextPosition := make(map[int]int)
	for _, plan := range plans {
		for _, entry := range plan.Destinations {
			destID, err := uuid.Parse(entry.ID)
			if err != nil {
				continue
			}
			nextPosition[plan.Day]++
			items = append(items, db_models.ItineraryItem{
				DestinationID: destID,
				DayNumber:     plan.Day,
				OrderInDay:    nextPosition[plan.Day],
				Reason:        entry.Reason,
			})
		}
	}
	return items
}
