package domain

import (
	"fmt"
	"time"
)

// License is an operating license or permit held by the company.
type License struct {
	ID             int64
	TitleEN        string
	TitleFA        string
	DescriptionEN  string
	DescriptionFA  string
	ImageURL       string
	IssueDate      string
	IssueAuthority string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (l *License) Validate() error {
	if l.TitleEN == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}

type LicensePatch struct {
	TitleEN        *string
	TitleFA        *string
	DescriptionEN  *string
	DescriptionFA  *string
	ImageURL       *string
	IssueDate      *string
	IssueAuthority *string
}

func (p LicensePatch) Apply(l *License) {
	if p.TitleEN != nil {
		l.TitleEN = *p.TitleEN
	}
	if p.TitleFA != nil {
		l.TitleFA = *p.TitleFA
	}
	if p.DescriptionEN != nil {
		l.DescriptionEN = *p.DescriptionEN
	}
	if p.DescriptionFA != nil {
		l.DescriptionFA = *p.DescriptionFA
	}
	if p.ImageURL != nil {
		l.ImageURL = *p.ImageURL
	}
	if p.IssueDate != nil {
		l.IssueDate = *p.IssueDate
	}
	if p.IssueAuthority != nil {
		l.IssueAuthority = *p.IssueAuthority
	}
}
