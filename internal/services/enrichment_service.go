package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"lotrinh/internal/models/db_models"
	"lotrinh/pkg/opentripmap"
)

const (
	searchRadiusMeters = 50_000
	placesPerCategory  = 20
)

type categoryGroup struct {
	Kinds    string
	Category string
	Label    string
}

// The three fixed kind groups queried per region.
var categoryGroups = []categoryGroup{
	{Kinds: "restaurants", Category: db_models.CategoryFood, Label: "Quán ăn"},
	{Kinds: "resorts,hostels,other_hotels", Category: db_models.CategoryLodging, Label: "Khách sạn"},
	{Kinds: "natural,museums,amusements", Category: db_models.CategorySightseeing, Label: "Địa điểm tham quan"},
}

type EnrichmentServiceInterface interface {
	FetchDestinationsForRegion(ctx context.Context, province string) ([]db_models.Destination, error)
}

type EnrichmentService struct {
	provider opentripmap.ClientInterface
}

func NewEnrichmentService(provider opentripmap.ClientInterface) EnrichmentServiceInterface {
	return &EnrichmentService{provider: provider}
}

// FetchDestinationsForRegion geocodes the province, runs one radius search
// per category group and fetches details for every candidate. A failed
// geocode or radius search yields an empty batch; individual detail
// failures are logged and skipped.
func (e *EnrichmentService) FetchDestinationsForRegion(ctx context.Context, province string) ([]db_models.Destination, error) {
	point, err := e.provider.Geoname(ctx, province)
	if err != nil {
		log.Printf("no coordinate found for province %q: %v", province, err)
		return nil, nil
	}
	log.Printf("coordinates for %s: %f, %f", province, point.Lat, point.Lon)

	var all []db_models.Destination
	stats := make(map[string]int, len(categoryGroups))

	for _, group := range categoryGroups {
		places, err := e.provider.Radius(ctx, point.Lat, point.Lon, group.Kinds, searchRadiusMeters, placesPerCategory)
		if err != nil {
			log.Printf("radius search failed for %s (%s): %v", province, group.Kinds, err)
			return nil, nil
		}
		log.Printf("found %d %s candidates for %s", len(places), group.Label, province)

		for _, place := range places {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			detail, err := e.provider.PlaceDetail(ctx, place.XID)
			if err != nil {
				log.Printf("detail fetch failed for %s %s: %v", group.Label, place.XID, err)
				continue
			}

			dest, ok := normalizeDetail(detail, group, province)
			if !ok {
				continue
			}
			all = append(all, dest)
			stats[group.Category]++
		}
	}

	log.Printf("processed %d destinations for %s, per category: %v", len(all), province, stats)
	return all, nil
}

// normalizeDetail builds a Destination from a provider detail record. Name
// and coordinate are required; the remaining fields fall back through the
// provider's optional fields.
func normalizeDetail(detail *opentripmap.PlaceDetail, group categoryGroup, province string) (db_models.Destination, bool) {
	if detail.Name == "" || detail.Point == nil {
		return db_models.Destination{}, false
	}

	description := detail.WikipediaExtracts.Text
	if description == "" {
		description = detail.Info.Descr
	}
	if description == "" {
		description = fmt.Sprintf("%s thú vị tại %s", group.Label, province)
	}

	address := detail.Address.Road
	if address == "" {
		address = detail.Address.City
	}

	image := detail.Preview.Source
	if image == "" {
		image = detail.Image
	}

	meta, _ := json.Marshal(map[string]string{"xid": detail.XID, "kinds": group.Kinds})

	return db_models.Destination{
		Name:         detail.Name,
		Description:  description,
		Address:      address,
		City:         province,
		Latitude:     detail.Point.Lat,
		Longitude:    detail.Point.Lon,
		Category:     group.Category,
		ImageURL:     image,
		ProviderMeta: meta,
	}, true
}
