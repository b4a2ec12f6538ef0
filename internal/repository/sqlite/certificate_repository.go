package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createCertificatesTable = `
CREATE TABLE IF NOT EXISTS certificates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL,
	title_fa TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_fa TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	issue_date TEXT NOT NULL DEFAULT '',
	expiry_date TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type CertificateRepository struct {
	db *sql.DB
}

func NewCertificateRepository(db *sql.DB) repository.CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCertificatesTable); err != nil {
		return fmt.Errorf("create certificates table: %w", err)
	}
	return nil
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO certificates (title_en, title_fa, description_en, description_fa, image_url, issue_date, expiry_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.TitleEN, c.TitleFA, c.DescriptionEN, c.DescriptionFA,
		c.ImageURL, c.IssueDate, c.ExpiryDate,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return 0, mapWriteErr(err, "certificate")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("certificate last insert id: %w", err)
	}
	c.ID = id
	return id, nil
}

func (r *CertificateRepository) Get(ctx context.Context, id int64) (*domain.Certificate, error) {
	row := r.db.QueryRowContext(ctx, selectCertificate+` WHERE id = ?`, id)
	return scanCertificate(row)
}

func (r *CertificateRepository) List(ctx context.Context) ([]domain.Certificate, error) {
	rows, err := r.db.QueryContext(ctx, selectCertificate+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query certificates: %w", err)
	}
	defer rows.Close()

	certs := []domain.Certificate{}
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, *c)
	}
	return certs, rows.Err()
}

func (r *CertificateRepository) Update(ctx context.Context, id int64, patch domain.CertificatePatch) (*domain.Certificate, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE certificates
SET title_en=?, title_fa=?, description_en=?, description_fa=?, image_url=?, issue_date=?, expiry_date=?, updated_at=?
WHERE id=?`,
		c.TitleEN, c.TitleFA, c.DescriptionEN, c.DescriptionFA,
		c.ImageURL, c.IssueDate, c.ExpiryDate,
		c.UpdatedAt, id,
	)
	if err != nil {
		return nil, mapWriteErr(err, "certificate")
	}
	return c, nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM certificates WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("certificate delete rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("certificate %w", domain.ErrNotFound)
	}
	return nil
}

func (r *CertificateRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE certificates SET image_url=?, updated_at=? WHERE id=?`,
		url, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set certificate image: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("certificate image rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("certificate %w", domain.ErrNotFound)
	}
	return nil
}

const selectCertificate = `
SELECT id, title_en, title_fa, description_en, description_fa, image_url, issue_date, expiry_date, created_at, updated_at
FROM certificates`

func scanCertificate(row interface {
	Scan(dest ...any) error
}) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := row.Scan(
		&c.ID,
		&c.TitleEN,
		&c.TitleFA,
		&c.DescriptionEN,
		&c.DescriptionFA,
		&c.ImageURL,
		&c.IssueDate,
		&c.ExpiryDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "certificate")
	}
	return &c, nil
}
