package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL,
	title_fa TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_fa TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	archive_url TEXT NOT NULL DEFAULT '',
	iframe_url TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL DEFAULT 0,
	is_featured INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO projects (title_en, title_fa, description_en, description_fa, image_url, archive_url, iframe_url, category, sort_order, is_featured, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.TitleEN, p.TitleFA, p.DescriptionEN, p.DescriptionFA,
		p.ImageURL, p.ArchiveURL, p.IframeURL, p.Category,
		p.SortOrder, p.IsFeatured,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return 0, mapWriteErr(err, "project")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project last insert id: %w", err)
	}
	p.ID = id
	return id, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, selectProject+` WHERE id = ?`, id)
	return scanProject(row)
}

func (r *ProjectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Featured != nil {
		conds = append(conds, "is_featured = ?")
		args = append(args, *filter.Featured)
	}

	query := selectProject
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE projects
SET title_en=?, title_fa=?, description_en=?, description_fa=?, image_url=?, archive_url=?, iframe_url=?, category=?, sort_order=?, is_featured=?, updated_at=?
WHERE id=?`,
		p.TitleEN, p.TitleFA, p.DescriptionEN, p.DescriptionFA,
		p.ImageURL, p.ArchiveURL, p.IframeURL, p.Category,
		p.SortOrder, p.IsFeatured,
		p.UpdatedAt, id,
	)
	if err != nil {
		return nil, mapWriteErr(err, "project")
	}
	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("project delete rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("project %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ProjectRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE projects SET image_url=?, updated_at=? WHERE id=?`,
		url, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set project image: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("project image rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("project %w", domain.ErrNotFound)
	}
	return nil
}

const selectProject = `
SELECT id, title_en, title_fa, description_en, description_fa, image_url, archive_url, iframe_url, category, sort_order, is_featured, created_at, updated_at
FROM projects`

func scanProject(row interface {
	Scan(dest ...any) error
}) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(
		&p.ID,
		&p.TitleEN,
		&p.TitleFA,
		&p.DescriptionEN,
		&p.DescriptionFA,
		&p.ImageURL,
		&p.ArchiveURL,
		&p.IframeURL,
		&p.Category,
		&p.SortOrder,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "project")
	}
	return &p, nil
}
