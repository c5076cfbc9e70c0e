package model

import "github.com/google/uuid"

// Reaction is a user's verdict on a grant
type Reaction string

const (
	ReactionLike    Reaction = "LIKE"
	ReactionDislike Reaction = "DISLIKE"
)

func (r Reaction) Valid() bool {
	return r == ReactionLike || r == ReactionDislike
}

// GrantFeedback is a user's reaction to a grant.
// A user can leave at most one feedback per grant.
type GrantFeedback struct {
	Base
	GrantID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_grant_feedbacks_user_grant,priority:2" json:"grantId"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_grant_feedbacks_user_grant,priority:1" json:"userId"`
	Reaction Reaction  `gorm:"type:varchar(16);not null" json:"reaction"`
	Comment  *string   `gorm:"type:text" json:"comment"`
}

func (GrantFeedback) TableName() string {
	return "grant_feedbacks"
}

// GrantFeedbackInput carries the caller-supplied fields of a feedback.
// UserID defaults to the authenticated caller when nil.
type GrantFeedbackInput struct {
	GrantID  uuid.UUID  `json:"grantId" validate:"required"`
	UserID   *uuid.UUID `json:"userId"`
	Reaction Reaction   `json:"reaction" validate:"required,oneof=LIKE DISLIKE"`
	Comment  *string    `json:"comment" validate:"omitempty,max=4000"`
}

// Merge overwrites the mutable fields; the grant and author are fixed at creation.
func (f *GrantFeedback) Merge(in GrantFeedbackInput) *GrantFeedback {
	f.Reaction = in.Reaction
	f.Comment = in.Comment
	return f
}
