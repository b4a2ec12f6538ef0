package domain

import (
	"fmt"
	"time"
)

// Project is a portfolio entry. SortOrder drives the listing order on the
// public site; lower values come first.
type Project struct {
	ID            int64
	TitleEN       string
	TitleFA       string
	DescriptionEN string
	DescriptionFA string
	ImageURL      string
	ArchiveURL    string
	IframeURL     string
	Category      string
	SortOrder     int
	IsFeatured    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Project) Validate() error {
	if p.TitleEN == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}

type ProjectPatch struct {
	TitleEN       *string
	TitleFA       *string
	DescriptionEN *string
	DescriptionFA *string
	ImageURL      *string
	ArchiveURL    *string
	IframeURL     *string
	Category      *string
	SortOrder     *int
	IsFeatured    *bool
}

func (pt ProjectPatch) Apply(p *Project) {
	if pt.TitleEN != nil {
		p.TitleEN = *pt.TitleEN
	}
	if pt.TitleFA != nil {
		p.TitleFA = *pt.TitleFA
	}
	if pt.DescriptionEN != nil {
		p.DescriptionEN = *pt.DescriptionEN
	}
	if pt.DescriptionFA != nil {
		p.DescriptionFA = *pt.DescriptionFA
	}
	if pt.ImageURL != nil {
		p.ImageURL = *pt.ImageURL
	}
	if pt.ArchiveURL != nil {
		p.ArchiveURL = *pt.ArchiveURL
	}
	if pt.IframeURL != nil {
		p.IframeURL = *pt.IframeURL
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.SortOrder != nil {
		p.SortOrder = *pt.SortOrder
	}
	if pt.IsFeatured != nil {
		p.IsFeatured = *pt.IsFeatured
	}
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Category string
	Featured *bool
}
