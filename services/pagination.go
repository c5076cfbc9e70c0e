package services

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination selects a 1-based page of a listing.
type Pagination struct {
	Page int `json:"page" validate:"gte=1"`
	Size int `json:"size" validate:"gte=1,lte=100"`
}

// QueryInput is the common argument of every list operation.
type QueryInput struct {
	Pagination Pagination `json:"pagination"`
	Search     *string    `json:"search"`
}

// DefaultQueryInput returns the first page of ten with no search.
func DefaultQueryInput() QueryInput {
	return QueryInput{Pagination: Pagination{Page: DefaultPage, Size: DefaultPageSize}}
}

func (q QueryInput) search() string {
	if q.Search == nil {
		return ""
	}
	return strings.TrimSpace(*q.Search)
}

// Page is the envelope returned by every list operation.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage builds the envelope, computing the page count from the total.
func NewPage[T any](items []T, total int64, p Pagination) *Page[T] {
	if items == nil {
		items = []T{}
	}

	pages := int(total) / p.Size
	if int(total)%p.Size > 0 {
		pages++
	}

	return &Page[T]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: pages,
	}
}

type scope = func(*gorm.DB) *gorm.DB

// paginate counts and fetches one page of T, ordered by insertion.
// Preloads only apply to the page fetch, never to the count.
func paginate[T any](ctx context.Context, db *gorm.DB, in QueryInput, filter scope, preloads ...string) (*Page[T], error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(filter).Count(&total).Error; err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Model(new(T)).Scopes(filter)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var items []T
	offset := (in.Pagination.Page - 1) * in.Pagination.Size
	if err := query.Order("created_at ASC").Order("id ASC").
		Limit(in.Pagination.Size).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return NewPage(items, total, in.Pagination), nil
}

// searchAny filters rows whose columns contain term, ignoring case.
func searchAny(term string, columns ...string) scope {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}

		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		conditions := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, column := range columns {
			conditions[i] = "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func chain(scopes ...scope) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(scopes...)
	}
}
