package domain

import (
	"fmt"
	"strings"
	"time"
)

// Article is a blog post. Slug is unique and usable interchangeably with the
// numeric id for detail lookup. Views is bumped on every detail read.
type Article struct {
	ID          int64
	TitleEN     string
	TitleFA     string
	Slug        string
	SummaryEN   string
	SummaryFA   string
	ContentEN   string
	ContentFA   string
	ImageURL    string
	Tags        string
	Category    string
	Author      string
	IsPublished bool
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Article) Validate() error {
	if a.TitleEN == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if a.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if a.SummaryEN == "" {
		return fmt.Errorf("%w: summary is required", ErrInvalidInput)
	}
	if a.ContentEN == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}

// TagList splits the comma-separated Tags field into trimmed tags.
func (a *Article) TagList() []string {
	if a.Tags == "" {
		return nil
	}
	parts := strings.Split(a.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

type ArticlePatch struct {
	TitleEN     *string
	TitleFA     *string
	Slug        *string
	SummaryEN   *string
	SummaryFA   *string
	ContentEN   *string
	ContentFA   *string
	ImageURL    *string
	Tags        *string
	Category    *string
	Author      *string
	IsPublished *bool
}

func (p ArticlePatch) Apply(a *Article) {
	if p.TitleEN != nil {
		a.TitleEN = *p.TitleEN
	}
	if p.TitleFA != nil {
		a.TitleFA = *p.TitleFA
	}
	if p.Slug != nil {
		a.Slug = *p.Slug
	}
	if p.SummaryEN != nil {
		a.SummaryEN = *p.SummaryEN
	}
	if p.SummaryFA != nil {
		a.SummaryFA = *p.SummaryFA
	}
	if p.ContentEN != nil {
		a.ContentEN = *p.ContentEN
	}
	if p.ContentFA != nil {
		a.ContentFA = *p.ContentFA
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Tags != nil {
		a.Tags = *p.Tags
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}
}

// ArticleFilter narrows article listings. Skip/Limit form the page window.
type ArticleFilter struct {
	Tag      string
	Category string
	Skip     int
	Limit    int
}
