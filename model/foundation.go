package model

// Foundation is a grant-issuing organization
type Foundation struct {
	Base
	Name    string  `gorm:"uniqueIndex;not null" json:"name"`
	LogoURL *string `json:"logoUrl"`

	// Relationships
	Grants []Grant `gorm:"foreignKey:FoundationID;constraint:OnDelete:CASCADE" json:"grants"`
}

func (Foundation) TableName() string {
	return "foundations"
}

// FoundationInput carries the caller-supplied fields of a foundation.
type FoundationInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	LogoURL *string `json:"logoUrl" validate:"omitempty,url,max=2048"`
}

// Merge overwrites every mutable field from the input.
func (f *Foundation) Merge(in FoundationInput) *Foundation {
	f.Name = in.Name
	f.LogoURL = in.LogoURL
	return f
}
