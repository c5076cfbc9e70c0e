package model

import (
	"time"

	"github.com/google/uuid"
)

// Grant is a funding opportunity published by a Foundation
type Grant struct {
	Base
	FoundationID uuid.UUID `gorm:"type:uuid;not null;index" json:"foundationId"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Amount       int       `gorm:"not null" json:"amount"`
	Deadline     time.Time `gorm:"not null" json:"deadline"`
	Location     string    `gorm:"not null" json:"location"`
	Area         *string   `json:"area"`

	// Relationships
	Feedbacks []GrantFeedback `gorm:"foreignKey:GrantID;constraint:OnDelete:CASCADE" json:"feedbacks"`
}

func (Grant) TableName() string {
	return "grants"
}

// GrantInput carries the caller-supplied fields of a grant.
type GrantInput struct {
	FoundationID uuid.UUID `json:"foundationId" validate:"required"`
	Name         string    `json:"name" validate:"required,max=255"`
	Amount       int       `json:"amount" validate:"gt=0"`
	Deadline     time.Time `json:"deadline" validate:"required"`
	Location     string    `json:"location" validate:"required,max=255"`
	Area         *string   `json:"area" validate:"omitempty,max=255"`
}

// Merge overwrites every mutable field from the input.
func (g *Grant) Merge(in GrantInput) *Grant {
	g.FoundationID = in.FoundationID
	g.Name = in.Name
	g.Amount = in.Amount
	g.Deadline = in.Deadline
	g.Location = in.Location
	g.Area = in.Area
	return g
}
