package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"lotrinh/internal/models/db_models"
	"lotrinh/internal/models/request_models"
)

// In-memory repository fakes. The engine depends on narrow repository
// interfaces so the pipeline can run entirely against these.

type fakeDestinationRepo struct {
	destinations []db_models.Destination
	listErr      error
}

func (f *fakeDestinationRepo) ListAll(ctx context.Context) ([]db_models.Destination, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]db_models.Destination(nil), f.destinations...), nil
}

func (f *fakeDestinationRepo) ListByCity(ctx context.Context, city string) ([]db_models.Destination, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []db_models.Destination
	for _, d := range f.destinations {
		if strings.Contains(strings.ToLower(d.City), strings.ToLower(city)) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDestinationRepo) UpsertBatch(ctx context.Context, destinations []db_models.Destination) (int, error) {
	existing := make(map[string]bool, len(f.destinations))
	for _, d := range f.destinations {
		existing[d.Name+"|"+d.City+"|"+d.Category] = true
	}

	inserted := 0
	for _, d := range destinations {
		key := d.Name + "|" + d.City + "|" + d.Category
		if existing[key] {
			continue
		}
		existing[key] = true
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		f.destinations = append(f.destinations, d)
		inserted++
	}
	return inserted, nil
}

func (f *fakeDestinationRepo) FilterExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	known := make(map[uuid.UUID]bool, len(f.destinations))
	for _, d := range f.destinations {
		known[d.ID] = true
	}
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if known[id] {
			out[id] = true
		}
	}
	return out, nil
}

type fakeItineraryRepo struct {
	itineraries map[string]*db_models.Itinerary
	createErr   error
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{itineraries: make(map[string]*db_models.Itinerary)}
}

func (f *fakeItineraryRepo) CreateWithItems(ctx context.Context, itinerary *db_models.Itinerary, items []db_models.ItineraryItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].ItineraryID = itinerary.ID
	}
	stored := *itinerary
	stored.Items = append([]db_models.ItineraryItem(nil), items...)
	f.itineraries[itinerary.ShareableID] = &stored
	return nil
}

func (f *fakeItineraryRepo) GetByShareableID(ctx context.Context, shareableID string) (*db_models.Itinerary, error) {
	stored, ok := f.itineraries[shareableID]
	if !ok {
		return nil, nil
	}
	out := *stored
	out.Items = append([]db_models.ItineraryItem(nil), stored.Items...)
	sort.Slice(out.Items, func(i, j int) bool {
		if out.Items[i].DayNumber != out.Items[j].DayNumber {
			return out.Items[i].DayNumber < out.Items[j].DayNumber
		}
		return out.Items[i].OrderInDay < out.Items[j].OrderInDay
	})
	return &out, nil
}

func (f *fakeItineraryRepo) ListAll(ctx context.Context) ([]db_models.Itinerary, error) {
	var out []db_models.Itinerary
	for id := range f.itineraries {
		it, _ := f.GetByShareableID(ctx, id)
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeItineraryRepo) ReplaceItems(ctx context.Context, shareableID string, items []db_models.ItineraryItem) (*db_models.Itinerary, error) {
	stored, ok := f.itineraries[shareableID]
	if !ok {
		return nil, nil
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].ItineraryID = stored.ID
	}
	stored.Items = append([]db_models.ItineraryItem(nil), items...)
	return f.GetByShareableID(ctx, shareableID)
}

// fakeReadCache stores marshaled values in memory and records deletions.
type fakeReadCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeReadCache() *fakeReadCache {
	return &fakeReadCache{entries: make(map[string][]byte)}
}

func (f *fakeReadCache) GetJSON(ctx context.Context, key string, dest any) bool {
	raw, ok := f.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (f *fakeReadCache) SetJSON(ctx context.Context, key string, value any, _ time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.entries[key] = raw
}

func (f *fakeReadCache) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		delete(f.entries, key)
		f.deleted = append(f.deleted, key)
	}
}

type fakeEnrichment struct {
	batch []db_models.Destination
	err   error
	calls int
}

func (f *fakeEnrichment) FetchDestinationsForRegion(ctx context.Context, province string) ([]db_models.Destination, error) {
	f.calls++
	return f.batch, f.err
}

// stubAIClient feeds a canned reply to the real planner service.
type stubAIClient struct {
	reply string
	err   error
	calls int
}

func (s *stubAIClient) GenerateDayGrouping(ctx context.Context, pois []request_models.POISummary, dayCount int) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubAIClient) Close() error { return nil }

func seedDestinations(city string, perCategory int) []db_models.Destination {
	var out []db_models.Destination
	for _, category := range db_models.AllCategories() {
		for i := 0; i < perCategory; i++ {
			out = append(out, db_models.Destination{
				BaseModel: db_models.BaseModel{ID: uuid.New()},
				Name:      fmt.Sprintf("%s %s %d", city, category, i+1),
				City:      city,
				Category:  category,
			})
		}
	}
	return out
}
