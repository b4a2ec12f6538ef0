package domain

import (
	"fmt"
	"time"
)

// Certificate is an accreditation shown on the certificates page.
type Certificate struct {
	ID            int64
	TitleEN       string
	TitleFA       string
	DescriptionEN string
	DescriptionFA string
	ImageURL      string
	IssueDate     string
	ExpiryDate    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Certificate) Validate() error {
	if c.TitleEN == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}

type CertificatePatch struct {
	TitleEN       *string
	TitleFA       *string
	DescriptionEN *string
	DescriptionFA *string
	ImageURL      *string
	IssueDate     *string
	ExpiryDate    *string
}

func (p CertificatePatch) Apply(c *Certificate) {
	if p.TitleEN != nil {
		c.TitleEN = *p.TitleEN
	}
	if p.TitleFA != nil {
		c.TitleFA = *p.TitleFA
	}
	if p.DescriptionEN != nil {
		c.DescriptionEN = *p.DescriptionEN
	}
	if p.DescriptionFA != nil {
		c.DescriptionFA = *p.DescriptionFA
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	if p.IssueDate != nil {
		c.IssueDate = *p.IssueDate
	}
	if p.ExpiryDate != nil {
		c.ExpiryDate = *p.ExpiryDate
	}
}
