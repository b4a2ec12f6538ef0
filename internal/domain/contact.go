package domain

import (
	"fmt"
	"time"
)

// Contact submission statuses form a closed set.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ContactSubmission is a message received through the public contact form.
// IPAddress and UserAgent are captured from the submitting request.
type ContactSubmission struct {
	ID          int64
	Name        string
	Phone       string
	Email       string
	Message     string
	Status      string
	IPAddress   string
	UserAgent   string
	SubmittedAt time.Time
}

func (c *ContactSubmission) Validate() error {
	if c.Name == "" || len(c.Name) > 255 {
		return fmt.Errorf("%w: name must be between 1 and 255 characters", ErrInvalidInput)
	}
	if len(c.Phone) < 5 || len(c.Phone) > 20 {
		return fmt.Errorf("%w: phone must be between 5 and 20 characters", ErrInvalidInput)
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	if len(c.Message) < 10 {
		return fmt.Errorf("%w: message must be at least 10 characters", ErrInvalidInput)
	}
	return nil
}

// ValidContactStatus reports whether s is an accepted submission status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

// ContactFilter narrows submission listings. Offset/Limit form the page window.
type ContactFilter struct {
	Status string
	Offset int
	Limit  int
}
