package repository

import (
	"context"

	"company-cms/internal/domain"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, s *domain.ContactSubmission) (int64, error)
	Get(ctx context.Context, id int64) (*domain.ContactSubmission, error)
	List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.ContactSubmission, error)
	Delete(ctx context.Context, id int64) error
}
