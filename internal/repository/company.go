package repository

import (
	"context"

	"company-cms/internal/domain"
)

// CompanyInfoRepository manages the company-info singleton. Get lazily
// inserts an empty row when none exists; Update upserts.
type CompanyInfoRepository interface {
	Init(ctx context.Context) error
	Get(ctx context.Context) (*domain.CompanyInfo, error)
	Update(ctx context.Context, patch domain.CompanyInfoPatch) (*domain.CompanyInfo, error)
}

// StatisticsRepository manages the statistics singleton with the same
// lazy-create and upsert semantics, seeded from domain.DefaultStatistics.
type StatisticsRepository interface {
	Init(ctx context.Context) error
	Get(ctx context.Context) (*domain.Statistics, error)
	Update(ctx context.Context, patch domain.StatisticsPatch) (*domain.Statistics, error)
}
