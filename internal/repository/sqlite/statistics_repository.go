package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createStatisticsTable = `
CREATE TABLE IF NOT EXISTS statistics (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	annual_projects INTEGER NOT NULL DEFAULT 0,
	service_types INTEGER NOT NULL DEFAULT 0,
	employees INTEGER NOT NULL DEFAULT 0,
	satisfied_clients INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME NOT NULL
);
`

// StatisticsRepository manages the single statistics row, seeded with the
// domain defaults on first read.
type StatisticsRepository struct {
	db *sql.DB
}

func NewStatisticsRepository(db *sql.DB) repository.StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createStatisticsTable); err != nil {
		return fmt.Errorf("create statistics table: %w", err)
	}
	return nil
}

func (r *StatisticsRepository) Get(ctx context.Context) (*domain.Statistics, error) {
	stats, err := r.first(ctx)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	seeded := domain.DefaultStatistics()
	seeded.UpdatedAt = time.Now().UTC()
	if err := r.insert(ctx, &seeded); err != nil {
		return nil, err
	}
	return &seeded, nil
}

func (r *StatisticsRepository) Update(ctx context.Context, patch domain.StatisticsPatch) (*domain.Statistics, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	stats, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	patch.Apply(stats)
	stats.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE statistics
SET annual_projects=?, service_types=?, employees=?, satisfied_clients=?, updated_at=?
WHERE id=?`,
		stats.AnnualProjects, stats.ServiceTypes,
		stats.Employees, stats.SatisfiedClients,
		stats.UpdatedAt, stats.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update statistics: %w", err)
	}
	return stats, nil
}

func (r *StatisticsRepository) first(ctx context.Context) (*domain.Statistics, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, annual_projects, service_types, employees, satisfied_clients, updated_at
FROM statistics
ORDER BY id ASC
LIMIT 1`)

	var s domain.Statistics
	if err := row.Scan(
		&s.ID,
		&s.AnnualProjects,
		&s.ServiceTypes,
		&s.Employees,
		&s.SatisfiedClients,
		&s.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "statistics")
	}
	return &s, nil
}

func (r *StatisticsRepository) insert(ctx context.Context, s *domain.Statistics) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO statistics (annual_projects, service_types, employees, satisfied_clients, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		s.AnnualProjects, s.ServiceTypes, s.Employees, s.SatisfiedClients,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert statistics: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("statistics last insert id: %w", err)
	}
	s.ID = id
	return nil
}
