package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createTeamTable = `
CREATE TABLE IF NOT EXISTS team_members (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name_en TEXT NOT NULL,
	name_fa TEXT NOT NULL DEFAULT '',
	position_en TEXT NOT NULL DEFAULT '',
	position_fa TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	bio_en TEXT NOT NULL DEFAULT '',
	bio_fa TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTeamTable); err != nil {
		return fmt.Errorf("create team_members table: %w", err)
	}
	return nil
}

func (r *TeamRepository) Create(ctx context.Context, m *domain.TeamMember) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO team_members (name_en, name_fa, position_en, position_fa, email, phone, image_url, bio_en, bio_fa, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.NameEN, m.NameFA, m.PositionEN, m.PositionFA,
		m.Email, m.Phone, m.ImageURL, m.BioEN, m.BioFA,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return 0, mapWriteErr(err, "team member")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("team member last insert id: %w", err)
	}
	m.ID = id
	return id, nil
}

func (r *TeamRepository) Get(ctx context.Context, id int64) (*domain.TeamMember, error) {
	row := r.db.QueryRowContext(ctx, selectTeamMember+` WHERE id = ?`, id)
	return scanTeamMember(row)
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx, selectTeamMember+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query team members: %w", err)
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) Update(ctx context.Context, id int64, patch domain.TeamMemberPatch) (*domain.TeamMember, error) {
	m, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(m)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE team_members
SET name_en=?, name_fa=?, position_en=?, position_fa=?, email=?, phone=?, image_url=?, bio_en=?, bio_fa=?, updated_at=?
WHERE id=?`,
		m.NameEN, m.NameFA, m.PositionEN, m.PositionFA,
		m.Email, m.Phone, m.ImageURL, m.BioEN, m.BioFA,
		m.UpdatedAt, id,
	)
	if err != nil {
		return nil, mapWriteErr(err, "team member")
	}
	return m, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("team member delete rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("team member %w", domain.ErrNotFound)
	}
	return nil
}

func (r *TeamRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE team_members SET image_url=?, updated_at=? WHERE id=?`,
		url, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set team member image: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("team member image rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("team member %w", domain.ErrNotFound)
	}
	return nil
}

const selectTeamMember = `
SELECT id, name_en, name_fa, position_en, position_fa, email, phone, image_url, bio_en, bio_fa, created_at, updated_at
FROM team_members`

func scanTeamMember(row interface {
	Scan(dest ...any) error
}) (*domain.TeamMember, error) {
	var m domain.TeamMember
	if err := row.Scan(
		&m.ID,
		&m.NameEN,
		&m.NameFA,
		&m.PositionEN,
		&m.PositionFA,
		&m.Email,
		&m.Phone,
		&m.ImageURL,
		&m.BioEN,
		&m.BioFA,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "team member")
	}
	return &m, nil
}
