package domain

import (
	"fmt"
	"time"
)

// TeamMember is a person listed on the team page.
type TeamMember struct {
	ID         int64
	NameEN     string
	NameFA     string
	PositionEN string
	PositionFA string
	Email      string
	Phone      string
	ImageURL   string
	BioEN      string
	BioFA      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m *TeamMember) Validate() error {
	if m.NameEN == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if m.Email != "" {
		if err := ValidateEmail(m.Email); err != nil {
			return err
		}
	}
	return nil
}

type TeamMemberPatch struct {
	NameEN     *string
	NameFA     *string
	PositionEN *string
	PositionFA *string
	Email      *string
	Phone      *string
	ImageURL   *string
	BioEN      *string
	BioFA      *string
}

func (p TeamMemberPatch) Apply(m *TeamMember) {
	if p.NameEN != nil {
		m.NameEN = *p.NameEN
	}
	if p.NameFA != nil {
		m.NameFA = *p.NameFA
	}
	if p.PositionEN != nil {
		m.PositionEN = *p.PositionEN
	}
	if p.PositionFA != nil {
		m.PositionFA = *p.PositionFA
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.ImageURL != nil {
		m.ImageURL = *p.ImageURL
	}
	if p.BioEN != nil {
		m.BioEN = *p.BioEN
	}
	if p.BioFA != nil {
		m.BioFA = *p.BioFA
	}
}
