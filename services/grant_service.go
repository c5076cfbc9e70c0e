package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vee-grants/vee-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var grantSearchColumns = []string{"name", "location", "area"}

// GrantService handles grant CRUD and the per-user grant views
type GrantService struct {
	db *gorm.DB
}

// NewGrantService creates a new grant service
func NewGrantService(db *gorm.DB) *GrantService {
	return &GrantService{db: db}
}

func (s *GrantService) List(ctx context.Context, in QueryInput) (*Page[model.Grant], error) {
	return paginate[model.Grant](ctx, s.db, in,
		searchAny(in.search(), grantSearchColumns...),
		"Feedbacks",
	)
}

// Matches returns the grants the user has not reacted to yet.
func (s *GrantService) Matches(ctx context.Context, userID uuid.UUID, in QueryInput) (*Page[model.Grant], error) {
	return paginate[model.Grant](ctx, s.db, in,
		chain(s.withoutFeedbackFrom(userID), searchAny(in.search(), grantSearchColumns...)),
		"Feedbacks",
	)
}

// Opportunities returns the grants the user liked.
func (s *GrantService) Opportunities(ctx context.Context, userID uuid.UUID, in QueryInput) (*Page[model.Grant], error) {
	return paginate[model.Grant](ctx, s.db, in,
		chain(s.withReactionFrom(userID, model.ReactionLike), searchAny(in.search(), grantSearchColumns...)),
		"Feedbacks",
	)
}

func (s *GrantService) withoutFeedbackFrom(userID uuid.UUID) scope {
	return func(db *gorm.DB) *gorm.DB {
		feedback := s.db.Model(&model.GrantFeedback{}).
			Select("1").
			Where("grant_feedbacks.grant_id = grants.id AND grant_feedbacks.user_id = ?", userID)
		return db.Where("NOT EXISTS (?)", feedback)
	}
}

func (s *GrantService) withReactionFrom(userID uuid.UUID, reaction model.Reaction) scope {
	return func(db *gorm.DB) *gorm.DB {
		feedback := s.db.Model(&model.GrantFeedback{}).
			Select("1").
			Where("grant_feedbacks.grant_id = grants.id AND grant_feedbacks.user_id = ? AND grant_feedbacks.reaction = ?", userID, reaction)
		return db.Where("EXISTS (?)", feedback)
	}
}

func (s *GrantService) Get(ctx context.Context, id uuid.UUID) (*model.Grant, error) {
	var grant model.Grant
	if err := s.db.WithContext(ctx).Preload("Feedbacks").First(&grant, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Grant", "Grant name")
	}
	return &grant, nil
}

func (s *GrantService) Create(ctx context.Context, in model.GrantInput) (*model.Grant, error) {
	grant := (&model.Grant{}).Merge(in)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.validateReferences(tx, in, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(grant).Error
	})
	if err != nil {
		return nil, translate(err, "Grant", "Grant name")
	}

	grant.Feedbacks = []model.GrantFeedback{}
	return grant, nil
}

// Update replaces every mutable field of the grant.
func (s *GrantService) Update(ctx context.Context, id uuid.UUID, in model.GrantInput) (*model.Grant, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var grant model.Grant
		if err := tx.First(&grant, "id = ?", id).Error; err != nil {
			return err
		}
		if err := s.validateReferences(tx, in, id); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(grant.Merge(in)).Error
	})
	if err != nil {
		return nil, translate(err, "Grant", "Grant name")
	}

	return s.Get(ctx, id)
}

// Delete removes the grant and its feedback. Deleting an unknown id is a no-op.
func (s *GrantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var grant model.Grant
		err := tx.First(&grant, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Delete(&grant).Error
	})
}

func (s *GrantService) validateReferences(tx *gorm.DB, in model.GrantInput, except uuid.UUID) error {
	var foundations int64
	if err := tx.Model(&model.Foundation{}).Where("id = ?", in.FoundationID).Count(&foundations).Error; err != nil {
		return err
	}
	if foundations == 0 {
		return notFound("Foundation")
	}

	var duplicates int64
	if err := tx.Model(&model.Grant{}).
		Where("name = ? AND id <> ?", in.Name, except).
		Count(&duplicates).Error; err != nil {
		return err
	}
	if duplicates > 0 {
		return conflict("Grant name")
	}
	return nil
}
