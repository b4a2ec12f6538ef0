// Package mail sends contact-form notifications. Sending is best-effort:
// callers swallow errors so a broken mail setup never fails a submission.
package mail

import (
	"context"

	"company-cms/internal/domain"
)

// Mailer notifies the site admin of a new submission and confirms receipt to
// the submitter.
type Mailer interface {
	NotifyAdmin(ctx context.Context, sub *domain.ContactSubmission) error
	ConfirmSubmitter(ctx context.Context, sub *domain.ContactSubmission) error
}

// Noop is used when SMTP is not configured.
type Noop struct{}

func (Noop) NotifyAdmin(ctx context.Context, sub *domain.ContactSubmission) error { return nil }

func (Noop) ConfirmSubmitter(ctx context.Context, sub *domain.ContactSubmission) error { return nil }
