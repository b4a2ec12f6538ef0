package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createContactTable = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'new',
	ip_address TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	submitted_at DATETIME NOT NULL
);
`

// defaultContactLimit caps unpaged submission listings.
const defaultContactLimit = 50

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createContactTable); err != nil {
		return fmt.Errorf("create contact_submissions table: %w", err)
	}
	return nil
}

func (r *ContactRepository) Create(ctx context.Context, s *domain.ContactSubmission) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.Status == "" {
		s.Status = domain.ContactStatusNew
	}
	s.SubmittedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO contact_submissions (name, phone, email, message, status, ip_address, user_agent, submitted_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.Phone, s.Email, s.Message,
		s.Status, s.IPAddress, s.UserAgent,
		s.SubmittedAt,
	)
	if err != nil {
		return 0, mapWriteErr(err, "contact submission")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contact submission last insert id: %w", err)
	}
	s.ID = id
	return id, nil
}

func (r *ContactRepository) Get(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	row := r.db.QueryRowContext(ctx, selectContact+` WHERE id = ?`, id)
	return scanContact(row)
}

func (r *ContactRepository) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, error) {
	query := selectContact
	args := []any{}
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultContactLimit
	}
	query += ` ORDER BY submitted_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contact submissions: %w", err)
	}
	defer rows.Close()

	subs := []domain.ContactSubmission{}
	for rows.Next() {
		s, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *s)
	}
	return subs, rows.Err()
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status string) (*domain.ContactSubmission, error) {
	if !domain.ValidContactStatus(status) {
		return nil, fmt.Errorf("%w: status must be new, read, replied or archived", domain.ErrInvalidInput)
	}

	res, err := r.db.ExecContext(ctx, `UPDATE contact_submissions SET status=? WHERE id=?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("contact status rows affected: %w", err)
	} else if aff == 0 {
		return nil, fmt.Errorf("contact submission %w", domain.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_submissions WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("contact delete rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("contact submission %w", domain.ErrNotFound)
	}
	return nil
}

const selectContact = `
SELECT id, name, phone, email, message, status, ip_address, user_agent, submitted_at
FROM contact_submissions`

func scanContact(row interface {
	Scan(dest ...any) error
}) (*domain.ContactSubmission, error) {
	var s domain.ContactSubmission
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Phone,
		&s.Email,
		&s.Message,
		&s.Status,
		&s.IPAddress,
		&s.UserAgent,
		&s.SubmittedAt,
	); err != nil {
		return nil, notFoundErr(err, "contact submission")
	}
	return &s, nil
}
