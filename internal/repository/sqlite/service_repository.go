package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createServicesTable = `
CREATE TABLE IF NOT EXISTS services (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL,
	title_fa TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_fa TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	software_tools TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ServiceRepository struct {
	db *sql.DB
}

func NewServiceRepository(db *sql.DB) repository.ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createServicesTable); err != nil {
		return fmt.Errorf("create services table: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) (int64, error) {
	s.Normalize()
	if err := s.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO services (title_en, title_fa, title, description_en, description_fa, description, category, image_url, software_tools, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.TitleEN, s.TitleFA, s.Title,
		s.DescriptionEN, s.DescriptionFA, s.Description,
		s.Category, s.ImageURL, s.SoftwareTools,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return 0, mapWriteErr(err, "service")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("service last insert id: %w", err)
	}
	s.ID = id
	return id, nil
}

func (r *ServiceRepository) Get(ctx context.Context, id int64) (*domain.Service, error) {
	row := r.db.QueryRowContext(ctx, selectService+` WHERE id = ?`, id)
	return scanService(row)
}

func (r *ServiceRepository) List(ctx context.Context, category string) ([]domain.Service, error) {
	query := selectService
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) Update(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(s)
	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE services
SET title_en=?, title_fa=?, title=?, description_en=?, description_fa=?, description=?, category=?, image_url=?, software_tools=?, updated_at=?
WHERE id=?`,
		s.TitleEN, s.TitleFA, s.Title,
		s.DescriptionEN, s.DescriptionFA, s.Description,
		s.Category, s.ImageURL, s.SoftwareTools,
		s.UpdatedAt, id,
	)
	if err != nil {
		return nil, mapWriteErr(err, "service")
	}
	return s, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("service delete rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("service %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ServiceRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE services SET image_url=?, updated_at=? WHERE id=?`,
		url, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set service image: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("service image rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("service %w", domain.ErrNotFound)
	}
	return nil
}

const selectService = `
SELECT id, title_en, title_fa, title, description_en, description_fa, description, category, image_url, software_tools, created_at, updated_at
FROM services`

func scanService(row interface {
	Scan(dest ...any) error
}) (*domain.Service, error) {
	var s domain.Service
	if err := row.Scan(
		&s.ID,
		&s.TitleEN,
		&s.TitleFA,
		&s.Title,
		&s.DescriptionEN,
		&s.DescriptionFA,
		&s.Description,
		&s.Category,
		&s.ImageURL,
		&s.SoftwareTools,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "service")
	}
	return &s, nil
}
