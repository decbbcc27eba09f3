package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lotrinh/internal/models/db_models"
)

type DestinationRepository interface {
	ListAll(ctx context.Context) ([]db_models.Destination, error)
	ListByCity(ctx context.Context, city string) ([]db_models.Destination, error)
	UpsertBatch(ctx context.Context, destinations []db_models.Destination) (int, error)
	FilterExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) ListAll(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

// ListByCity matches the city label by case-insensitive substring, the same
// way lookups behaved against the seeded rows.
func (r *destinationRepository) ListByCity(ctx context.Context, city string) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("city ILIKE ?", "%"+city+"%").
		Order("created_at ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

// UpsertBatch inserts new rows and skips conflicts on the natural key
// (name, city, category). Returns the number of rows actually inserted.
func (r *destinationRepository) UpsertBatch(ctx context.Context, destinations []db_models.Destination) (int, error) {
	if len(destinations) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "name"},
			{Name: "city"},
			{Name: "category"},
		},
		DoNothing: true,
	}).Create(&destinations)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to upsert destinations: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}

func (r *destinationRepository) FilterExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	existing := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.Destination{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}
