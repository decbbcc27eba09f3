package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lotrinh/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateWithItems(ctx context.Context, itinerary *db_models.Itinerary, items []db_models.ItineraryItem) error
	GetByShareableID(ctx context.Context, shareableID string) (*db_models.Itinerary, error)
	ListAll(ctx context.Context) ([]db_models.Itinerary, error)
	ReplaceItems(ctx context.Context, shareableID string, items []db_models.ItineraryItem) (*db_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// CreateWithItems writes the itinerary and its full item set in one
// transaction, so readers never see an itinerary with a partial plan.
func (r *itineraryRepository) CreateWithItems(ctx context.Context, itinerary *db_models.Itinerary, items []db_models.ItineraryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ItineraryID = itinerary.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *itineraryRepository) GetByShareableID(ctx context.Context, shareableID string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("shareable_id = ?", shareableID).
		Preload("Items", orderItems).
		Preload("Items.Destination").
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListAll(ctx context.Context) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Preload("Items.Destination").
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

// ReplaceItems rewrites the full item set inside one transaction. The
// itinerary row is locked FOR UPDATE first, which serializes concurrent
// edits of the same itinerary; readers outside the transaction see either
// the old complete set or the new one.
func (r *itineraryRepository) ReplaceItems(ctx context.Context, shareableID string, items []db_models.ItineraryItem) (*db_models.Itinerary, error) {
	var out *db_models.Itinerary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itinerary db_models.Itinerary
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("shareable_id = ?", shareableID).
			First(&itinerary).Error
		if err != nil {
			return err
		}

		if err := tx.Where("itinerary_id = ?", itinerary.ID).
			Delete(&db_models.ItineraryItem{}).Error; err != nil {
			return err
		}

		if len(items) > 0 {
			for i := range items {
				items[i].ItineraryID = itinerary.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		var reconciled db_models.Itinerary
		err = tx.Where("id = ?", itinerary.ID).
			Preload("Items", orderItems).
			Preload("Items.Destination").
			First(&reconciled).Error
		if err != nil {
			return err
		}

		out = &reconciled
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("itinerary_items.day_number ASC, itinerary_items.order_in_day ASC")
}
