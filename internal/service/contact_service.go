package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"company-cms/internal/domain"
	"company-cms/internal/mail"
	"company-cms/internal/repository"
)

// ContactService records contact form submissions and dispatches the email
// notifications around them.
type ContactService interface {
	Submit(ctx context.Context, sub *domain.ContactSubmission) error
	List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, error)
	Get(ctx context.Context, id int64) (*domain.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.ContactSubmission, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	submissions repository.ContactRepository
	mailer      mail.Mailer
	logger      *logrus.Logger
}

func NewContactService(submissions repository.ContactRepository, mailer mail.Mailer, logger *logrus.Logger) ContactService {
	return &contactService{
		submissions: submissions,
		mailer:      mailer,
		logger:      logger,
	}
}

// Submit stores the submission and then attempts both notification emails.
// Email failures are logged and never surfaced: the record is already
// committed and the caller gets a success either way.
func (s *contactService) Submit(ctx context.Context, sub *domain.ContactSubmission) error {
	if _, err := s.submissions.Create(ctx, sub); err != nil {
		return err
	}

	if err := s.mailer.NotifyAdmin(ctx, sub); err != nil {
		s.logger.Warnf("notify admin of submission %d: %v", sub.ID, err)
	}
	if err := s.mailer.ConfirmSubmitter(ctx, sub); err != nil {
		s.logger.Warnf("confirm submission %d to %s: %v", sub.ID, sub.Email, err)
	}
	return nil
}

func (s *contactService) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, error) {
	return s.submissions.List(ctx, filter)
}

// Get returns a submission and flips a fresh one to read, so the admin inbox
// tracks what has been seen.
func (s *contactService) Get(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	sub, err := s.submissions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status == domain.ContactStatusNew {
		updated, err := s.submissions.UpdateStatus(ctx, id, domain.ContactStatusRead)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if updated != nil {
			return updated, nil
		}
	}
	return sub, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.ContactSubmission, error) {
	return s.submissions.UpdateStatus(ctx, id, status)
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	return s.submissions.Delete(ctx, id)
}
