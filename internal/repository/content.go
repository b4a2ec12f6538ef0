package repository

import (
	"context"

	"company-cms/internal/domain"
)

// ServiceRepository exposes CRUD for offered services.
type ServiceRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, s *domain.Service) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, category string) ([]domain.Service, error)
	Update(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, url string) error
}

// TeamRepository exposes CRUD for team members.
type TeamRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, m *domain.TeamMember) (int64, error)
	Get(ctx context.Context, id int64) (*domain.TeamMember, error)
	List(ctx context.Context) ([]domain.TeamMember, error)
	Update(ctx context.Context, id int64, patch domain.TeamMemberPatch) (*domain.TeamMember, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, url string) error
}

// CertificateRepository exposes CRUD for certificates.
type CertificateRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, c *domain.Certificate) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Certificate, error)
	List(ctx context.Context) ([]domain.Certificate, error)
	Update(ctx context.Context, id int64, patch domain.CertificatePatch) (*domain.Certificate, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, url string) error
}

// LicenseRepository exposes CRUD for licenses.
type LicenseRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, l *domain.License) (int64, error)
	Get(ctx context.Context, id int64) (*domain.License, error)
	List(ctx context.Context) ([]domain.License, error)
	Update(ctx context.Context, id int64, patch domain.LicensePatch) (*domain.License, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, url string) error
}

// ProjectRepository exposes CRUD for portfolio projects.
type ProjectRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, p *domain.Project) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, url string) error
}

// ArticleRepository exposes CRUD for articles. GetBySlugOrID resolves by
// numeric id when the identifier parses as one, otherwise by slug.
// IncrementViews bumps the durable view counter by exactly one.
type ArticleRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, a *domain.Article) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	GetBySlugOrID(ctx context.Context, idOrSlug string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	ListTags(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, patch domain.ArticlePatch) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, url string) error
	IncrementViews(ctx context.Context, id int64) error
}
