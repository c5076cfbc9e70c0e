package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vee-grants/vee-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoundationService handles foundation CRUD
type FoundationService struct {
	db *gorm.DB
}

// NewFoundationService creates a new foundation service
func NewFoundationService(db *gorm.DB) *FoundationService {
	return &FoundationService{db: db}
}

// List returns a page of foundations with their grants and the grants' feedback.
func (s *FoundationService) List(ctx context.Context, in QueryInput) (*Page[model.Foundation], error) {
	return paginate[model.Foundation](ctx, s.db, in,
		searchAny(in.search(), "name"),
		"Grants", "Grants.Feedbacks",
	)
}

// Get returns a foundation with its grants and their feedback.
func (s *FoundationService) Get(ctx context.Context, id uuid.UUID) (*model.Foundation, error) {
	var foundation model.Foundation
	err := s.db.WithContext(ctx).
		Preload("Grants").
		Preload("Grants.Feedbacks").
		First(&foundation, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "Foundation", "Foundation name")
	}
	return &foundation, nil
}

func (s *FoundationService) Create(ctx context.Context, in model.FoundationInput) (*model.Foundation, error) {
	foundation := (&model.Foundation{}).Merge(in)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureUniqueName(tx, in.Name, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(foundation).Error
	})
	if err != nil {
		return nil, translate(err, "Foundation", "Foundation name")
	}

	foundation.Grants = []model.Grant{}
	return foundation, nil
}

// Update replaces every mutable field of the foundation.
func (s *FoundationService) Update(ctx context.Context, id uuid.UUID, in model.FoundationInput) (*model.Foundation, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var foundation model.Foundation
		if err := tx.First(&foundation, "id = ?", id).Error; err != nil {
			return err
		}
		if err := s.ensureUniqueName(tx, in.Name, id); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(foundation.Merge(in)).Error
	})
	if err != nil {
		return nil, translate(err, "Foundation", "Foundation name")
	}

	return s.Get(ctx, id)
}

// Delete removes the foundation; its grants and their feedback go with it.
// Deleting an unknown id is a no-op.
func (s *FoundationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var foundation model.Foundation
		err := tx.First(&foundation, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Delete(&foundation).Error
	})
}

func (s *FoundationService) ensureUniqueName(tx *gorm.DB, name string, except uuid.UUID) error {
	var count int64
	if err := tx.Model(&model.Foundation{}).
		Where("name = ? AND id <> ?", name, except).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return conflict("Foundation name")
	}
	return nil
}
