package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createLicensesTable = `
CREATE TABLE IF NOT EXISTS licenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL,
	title_fa TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_fa TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	issue_date TEXT NOT NULL DEFAULT '',
	issue_authority TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type LicenseRepository struct {
	db *sql.DB
}

func NewLicenseRepository(db *sql.DB) repository.LicenseRepository {
	return &LicenseRepository{db: db}
}

func (r *LicenseRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createLicensesTable); err != nil {
		return fmt.Errorf("create licenses table: %w", err)
	}
	return nil
}

func (r *LicenseRepository) Create(ctx context.Context, l *domain.License) (int64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO licenses (title_en, title_fa, description_en, description_fa, image_url, issue_date, issue_authority, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.TitleEN, l.TitleFA, l.DescriptionEN, l.DescriptionFA,
		l.ImageURL, l.IssueDate, l.IssueAuthority,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return 0, mapWriteErr(err, "license")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("license last insert id: %w", err)
	}
	l.ID = id
	return id, nil
}

func (r *LicenseRepository) Get(ctx context.Context, id int64) (*domain.License, error) {
	row := r.db.QueryRowContext(ctx, selectLicense+` WHERE id = ?`, id)
	return scanLicense(row)
}

func (r *LicenseRepository) List(ctx context.Context) ([]domain.License, error) {
	rows, err := r.db.QueryContext(ctx, selectLicense+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query licenses: %w", err)
	}
	defer rows.Close()

	licenses := []domain.License{}
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, *l)
	}
	return licenses, rows.Err()
}

func (r *LicenseRepository) Update(ctx context.Context, id int64, patch domain.LicensePatch) (*domain.License, error) {
	l, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(l)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE licenses
SET title_en=?, title_fa=?, description_en=?, description_fa=?, image_url=?, issue_date=?, issue_authority=?, updated_at=?
WHERE id=?`,
		l.TitleEN, l.TitleFA, l.DescriptionEN, l.DescriptionFA,
		l.ImageURL, l.IssueDate, l.IssueAuthority,
		l.UpdatedAt, id,
	)
	if err != nil {
		return nil, mapWriteErr(err, "license")
	}
	return l, nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM licenses WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("license delete rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("license %w", domain.ErrNotFound)
	}
	return nil
}

func (r *LicenseRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE licenses SET image_url=?, updated_at=? WHERE id=?`,
		url, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set license image: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("license image rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("license %w", domain.ErrNotFound)
	}
	return nil
}

const selectLicense = `
SELECT id, title_en, title_fa, description_en, description_fa, image_url, issue_date, issue_authority, created_at, updated_at
FROM licenses`

func scanLicense(row interface {
	Scan(dest ...any) error
}) (*domain.License, error) {
	var l domain.License
	if err := row.Scan(
		&l.ID,
		&l.TitleEN,
		&l.TitleFA,
		&l.DescriptionEN,
		&l.DescriptionFA,
		&l.ImageURL,
		&l.IssueDate,
		&l.IssueAuthority,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "license")
	}
	return &l, nil
}
