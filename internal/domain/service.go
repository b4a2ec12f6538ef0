package domain

import (
	"fmt"
	"time"
)

// Service categories form a closed set.
const (
	CategoryBIM       = "BIM"
	CategorySurveying = "Surveying"
)

// Service describes a single offered service on the public site.
// The bare Title/Description fields are legacy aliases kept for older
// clients; Normalize keeps them in sync with the English variants.
type Service struct {
	ID            int64
	TitleEN       string
	TitleFA       string
	Title         string
	DescriptionEN string
	DescriptionFA string
	Description   string
	Category      string
	ImageURL      string
	SoftwareTools string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Normalize applies the bilingual backward-compatibility rule: when only one
// of {Title, TitleEN} is present the value is copied to the other, and the
// same for {Description, DescriptionEN}. Run before Validate.
func (s *Service) Normalize() {
	if s.Title == "" && s.TitleEN != "" {
		s.Title = s.TitleEN
	}
	if s.TitleEN == "" && s.Title != "" {
		s.TitleEN = s.Title
	}
	if s.Description == "" && s.DescriptionEN != "" {
		s.Description = s.DescriptionEN
	}
	if s.DescriptionEN == "" && s.Description != "" {
		s.DescriptionEN = s.Description
	}
}

func (s *Service) Validate() error {
	if s.TitleEN == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if s.Category != CategoryBIM && s.Category != CategorySurveying {
		return fmt.Errorf("%w: category must be %q or %q", ErrInvalidInput, CategoryBIM, CategorySurveying)
	}
	return nil
}

// ServicePatch carries the fields of a partial service update. Nil pointers
// leave the stored value untouched.
type ServicePatch struct {
	TitleEN       *string
	TitleFA       *string
	Title         *string
	DescriptionEN *string
	DescriptionFA *string
	Description   *string
	Category      *string
	ImageURL      *string
	SoftwareTools *string
}

// Apply merges the patch into the entity field by field.
func (p ServicePatch) Apply(s *Service) {
	if p.TitleEN != nil {
		s.TitleEN = *p.TitleEN
	}
	if p.TitleFA != nil {
		s.TitleFA = *p.TitleFA
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.DescriptionEN != nil {
		s.DescriptionEN = *p.DescriptionEN
	}
	if p.DescriptionFA != nil {
		s.DescriptionFA = *p.DescriptionFA
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.SoftwareTools != nil {
		s.SoftwareTools = *p.SoftwareTools
	}
}
