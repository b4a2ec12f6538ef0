package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

const createArticlesTable = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL,
	title_fa TEXT NOT NULL DEFAULT '',
	slug TEXT NOT NULL UNIQUE,
	summary_en TEXT NOT NULL,
	summary_fa TEXT NOT NULL DEFAULT '',
	content_en TEXT NOT NULL,
	content_fa TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	author TEXT NOT NULL DEFAULT '',
	is_published INTEGER NOT NULL DEFAULT 0,
	views INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// defaultArticleLimit caps unpaged article listings.
const defaultArticleLimit = 10

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createArticlesTable); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO articles (title_en, title_fa, slug, summary_en, summary_fa, content_en, content_fa, image_url, tags, category, author, is_published, views, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.TitleEN, a.TitleFA, a.Slug,
		a.SummaryEN, a.SummaryFA, a.ContentEN, a.ContentFA,
		a.ImageURL, a.Tags, a.Category, a.Author,
		a.IsPublished, a.Views,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return 0, mapWriteErr(err, "article slug")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("article last insert id: %w", err)
	}
	a.ID = id
	return id, nil
}

func (r *ArticleRepository) Get(ctx context.Context, id int64) (*domain.Article, error) {
	row := r.db.QueryRowContext(ctx, selectArticle+` WHERE id = ?`, id)
	return scanArticle(row)
}

// GetBySlugOrID resolves a numeric identifier as an id and anything else as a
// slug, matching the public detail route.
func (r *ArticleRepository) GetBySlugOrID(ctx context.Context, idOrSlug string) (*domain.Article, error) {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		return r.Get(ctx, id)
	}
	row := r.db.QueryRowContext(ctx, selectArticle+` WHERE slug = ?`, idOrSlug)
	return scanArticle(row)
}

// List returns published articles only, newest first.
func (r *ArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	conds := []string{"is_published = 1"}
	args := []any{}
	if filter.Tag != "" {
		conds = append(conds, "tags LIKE ?")
		args = append(args, "%"+filter.Tag+"%")
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultArticleLimit
	}

	query := selectArticle + ` WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, filter.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

// ListTags collects the unique trimmed tags of published articles, sorted.
func (r *ArticleRepository) ListTags(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tags FROM articles WHERE is_published = 1 AND tags != ''`)
	if err != nil {
		return nil, fmt.Errorf("query article tags: %w", err)
	}
	defer rows.Close()

	seen := map[string]struct{}{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan article tags: %w", err)
		}
		for _, part := range strings.Split(raw, ",") {
			if tag := strings.TrimSpace(part); tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

func (r *ArticleRepository) Update(ctx context.Context, id int64, patch domain.ArticlePatch) (*domain.Article, error) {
	a, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(a)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE articles
SET title_en=?, title_fa=?, slug=?, summary_en=?, summary_fa=?, content_en=?, content_fa=?, image_url=?, tags=?, category=?, author=?, is_published=?, updated_at=?
WHERE id=?`,
		a.TitleEN, a.TitleFA, a.Slug,
		a.SummaryEN, a.SummaryFA, a.ContentEN, a.ContentFA,
		a.ImageURL, a.Tags, a.Category, a.Author,
		a.IsPublished,
		a.UpdatedAt, id,
	)
	if err != nil {
		return nil, mapWriteErr(err, "article slug")
	}
	return a, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("article delete rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("article %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ArticleRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE articles SET image_url=?, updated_at=? WHERE id=?`,
		url, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set article image: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("article image rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("article %w", domain.ErrNotFound)
	}
	return nil
}

// IncrementViews adds exactly one view. Each call is durable; repeated reads
// keep adding.
func (r *ArticleRepository) IncrementViews(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE articles SET views = views + 1 WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("increment article views: %w", err)
	}
	if aff, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("article views rows affected: %w", err)
	} else if aff == 0 {
		return fmt.Errorf("article %w", domain.ErrNotFound)
	}
	return nil
}

const selectArticle = `
SELECT id, title_en, title_fa, slug, summary_en, summary_fa, content_en, content_fa, image_url, tags, category, author, is_published, views, created_at, updated_at
FROM articles`

func scanArticle(row interface {
	Scan(dest ...any) error
}) (*domain.Article, error) {
	var a domain.Article
	if err := row.Scan(
		&a.ID,
		&a.TitleEN,
		&a.TitleFA,
		&a.Slug,
		&a.SummaryEN,
		&a.SummaryFA,
		&a.ContentEN,
		&a.ContentFA,
		&a.ImageURL,
		&a.Tags,
		&a.Category,
		&a.Author,
		&a.IsPublished,
		&a.Views,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, notFoundErr(err, "article")
	}
	return &a, nil
}
