package domain

import (
	"fmt"
	"time"
)

// CompanyInfo is a singleton: at most one row exists, created lazily with
// zero values on first read.
type CompanyInfo struct {
	ID             int64
	Name           string
	DescriptionEN  string
	DescriptionFA  string
	FoundedYear    int
	Headquarters   string
	Phone          string
	Email          string
	AddressCity    string
	AddressCountry string
	TotalEmployees int
	UpdatedAt      time.Time
}

type CompanyInfoPatch struct {
	Name           *string
	DescriptionEN  *string
	DescriptionFA  *string
	FoundedYear    *int
	Headquarters   *string
	Phone          *string
	Email          *string
	AddressCity    *string
	AddressCountry *string
	TotalEmployees *int
}

func (p CompanyInfoPatch) Validate() error {
	if p.Email != nil && *p.Email != "" {
		return ValidateEmail(*p.Email)
	}
	return nil
}

func (p CompanyInfoPatch) Apply(c *CompanyInfo) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.DescriptionEN != nil {
		c.DescriptionEN = *p.DescriptionEN
	}
	if p.DescriptionFA != nil {
		c.DescriptionFA = *p.DescriptionFA
	}
	if p.FoundedYear != nil {
		c.FoundedYear = *p.FoundedYear
	}
	if p.Headquarters != nil {
		c.Headquarters = *p.Headquarters
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.AddressCity != nil {
		c.AddressCity = *p.AddressCity
	}
	if p.AddressCountry != nil {
		c.AddressCountry = *p.AddressCountry
	}
	if p.TotalEmployees != nil {
		c.TotalEmployees = *p.TotalEmployees
	}
}

// Statistics is the second singleton; the defaults below seed the lazily
// created row.
type Statistics struct {
	ID               int64
	AnnualProjects   int
	ServiceTypes     int
	Employees        int
	SatisfiedClients int
	UpdatedAt        time.Time
}

// DefaultStatistics are the figures shown before an admin ever edits them.
func DefaultStatistics() Statistics {
	return Statistics{
		AnnualProjects:   1000,
		ServiceTypes:     9,
		Employees:        90,
		SatisfiedClients: 100,
	}
}

type StatisticsPatch struct {
	AnnualProjects   *int
	ServiceTypes     *int
	Employees        *int
	SatisfiedClients *int
}

func (p StatisticsPatch) Validate() error {
	for _, v := range []*int{p.AnnualProjects, p.ServiceTypes, p.Employees, p.SatisfiedClients} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: statistics values must not be negative", ErrInvalidInput)
		}
	}
	return nil
}

func (p StatisticsPatch) Apply(s *Statistics) {
	if p.AnnualProjects != nil {
		s.AnnualProjects = *p.AnnualProjects
	}
	if p.ServiceTypes != nil {
		s.ServiceTypes = *p.ServiceTypes
	}
	if p.Employees != nil {
		s.Employees = *p.Employees
	}
	if p.SatisfiedClients != nil {
		s.SatisfiedClients = *p.SatisfiedClients
	}
}
