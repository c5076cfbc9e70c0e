package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vee-grants/vee-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GrantFeedbackService handles grant feedback CRUD
type GrantFeedbackService struct {
	db *gorm.DB
}

// NewGrantFeedbackService creates a new grant feedback service
func NewGrantFeedbackService(db *gorm.DB) *GrantFeedbackService {
	return &GrantFeedbackService{db: db}
}

func (s *GrantFeedbackService) List(ctx context.Context, in QueryInput) (*Page[model.GrantFeedback], error) {
	return paginate[model.GrantFeedback](ctx, s.db, in, searchAny(in.search(), "comment"))
}

func (s *GrantFeedbackService) Get(ctx context.Context, id uuid.UUID) (*model.GrantFeedback, error) {
	var feedback model.GrantFeedback
	if err := s.db.WithContext(ctx).First(&feedback, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Grant feedback", "Feedback for this grant")
	}
	return &feedback, nil
}

// Create records the reaction of in.UserID, or of author when in.UserID is nil.
// A user can react to a grant once; a second reaction is a conflict.
func (s *GrantFeedbackService) Create(ctx context.Context, author uuid.UUID, in model.GrantFeedbackInput) (*model.GrantFeedback, error) {
	userID := author
	if in.UserID != nil {
		userID = *in.UserID
	}

	feedback := (&model.GrantFeedback{GrantID: in.GrantID, UserID: userID}).Merge(in)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &model.Grant{}, in.GrantID, "Grant"); err != nil {
			return err
		}
		if err := exists(tx, &model.User{}, userID, "User"); err != nil {
			return err
		}

		var duplicates int64
		if err := tx.Model(&model.GrantFeedback{}).
			Where("user_id = ? AND grant_id = ?", userID, in.GrantID).
			Count(&duplicates).Error; err != nil {
			return err
		}
		if duplicates > 0 {
			return conflict("Feedback for this grant")
		}

		return tx.Create(feedback).Error
	})
	if err != nil {
		return nil, translate(err, "Grant feedback", "Feedback for this grant")
	}

	return feedback, nil
}

// Update replaces the reaction and comment. The grant and author never change.
func (s *GrantFeedbackService) Update(ctx context.Context, id uuid.UUID, in model.GrantFeedbackInput) (*model.GrantFeedback, error) {
	var feedback model.GrantFeedback
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&feedback, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(feedback.Merge(in)).Error
	})
	if err != nil {
		return nil, translate(err, "Grant feedback", "Feedback for this grant")
	}

	return &feedback, nil
}

// Delete removes the feedback. Deleting an unknown id is a no-op.
func (s *GrantFeedbackService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var feedback model.GrantFeedback
		err := tx.First(&feedback, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Delete(&feedback).Error
	})
}

func exists(tx *gorm.DB, m interface{}, id uuid.UUID, entity string) error {
	var count int64
	if err := tx.Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound(entity)
	}
	return nil
}
