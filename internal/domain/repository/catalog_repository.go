package repository

import (
	"context"

	"musika/internal/domain/entity"
)

// ProductRepository answers catalog queries against the products table.
type ProductRepository interface {
	// Search returns products whose name or description contains the query,
	// newest first, plus the total match count.
	Search(ctx context.Context, query string) ([]*entity.Product, int64, error)

	// SuggestNames returns up to limit product names starting with prefix.
	SuggestNames(ctx context.Context, prefix string, limit int) ([]string, error)
}

// BlogRepository answers content queries against the blogs table.
type BlogRepository interface {
	// Search returns blogs whose title or content contains the query,
	// newest first, plus the total match count.
	Search(ctx context.Context, query string) ([]*entity.Blog, int64, error)

	// SuggestTitles returns up to limit blog titles starting with prefix.
	SuggestTitles(ctx context.Context, prefix string, limit int) ([]string, error)
}
