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

const createCompanyInfoTable = `
CREATE TABLE IF NOT EXISTS company_info (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_fa TEXT NOT NULL DEFAULT '',
	founded_year INTEGER NOT NULL DEFAULT 0,
	headquarters TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	address_city TEXT NOT NULL DEFAULT '',
	address_country TEXT NOT NULL DEFAULT '',
	total_employees INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME NOT NULL
);
`

// CompanyInfoRepository manages the single company_info row. The row is
// created lazily on first read so GET never 404s.
type CompanyInfoRepository struct {
	db *sql.DB
}

func NewCompanyInfoRepository(db *sql.DB) repository.CompanyInfoRepository {
	return &CompanyInfoRepository{db: db}
}

func (r *CompanyInfoRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCompanyInfoTable); err != nil {
		return fmt.Errorf("create company_info table: %w", err)
	}
	return nil
}

func (r *CompanyInfoRepository) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	info, err := r.first(ctx)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	blank := &domain.CompanyInfo{UpdatedAt: time.Now().UTC()}
	if err := r.insert(ctx, blank); err != nil {
		return nil, err
	}
	return blank, nil
}

func (r *CompanyInfoRepository) Update(ctx context.Context, patch domain.CompanyInfoPatch) (*domain.CompanyInfo, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	info, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	patch.Apply(info)
	info.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE company_info
SET name=?, description_en=?, description_fa=?, founded_year=?, headquarters=?, phone=?, email=?, address_city=?, address_country=?, total_employees=?, updated_at=?
WHERE id=?`,
		info.Name, info.DescriptionEN, info.DescriptionFA,
		info.FoundedYear, info.Headquarters, info.Phone, info.Email,
		info.AddressCity, info.AddressCountry, info.TotalEmployees,
		info.UpdatedAt, info.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update company info: %w", err)
	}
	return info, nil
}

func (r *CompanyInfoRepository) first(ctx context.Context) (*domain.CompanyInfo, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, description_en, description_fa, founded_year, headquarters, phone, email, address_city, address_country, total_employees, updated_at
FROM company_info
ORDER BY id ASC
LIMIT 1`)

	var c domain.CompanyInfo
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.DescriptionEN,
		&c.DescriptionFA,
		&c.FoundedYear,
		&c.Headquarters,
		&c.Phone,
		&c.Email,
		&c.AddressCity,
		&c.AddressCountry,
		&c.TotalEmployees,
		&c.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "company info")
	}
	return &c, nil
}

func (r *CompanyInfoRepository) insert(ctx context.Context, c *domain.CompanyInfo) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO company_info (name, description_en, description_fa, founded_year, headquarters, phone, email, address_city, address_country, total_employees, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.DescriptionEN, c.DescriptionFA,
		c.FoundedYear, c.Headquarters, c.Phone, c.Email,
		c.AddressCity, c.AddressCountry, c.TotalEmployees,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company info: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("company info last insert id: %w", err)
	}
	c.ID = id
	return nil
}
