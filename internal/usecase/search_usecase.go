package usecase

import (
	"context"

	"musika/internal/domain/entity"
)

// SearchInput defines the parameters of a global search request.
type SearchInput struct {
	Query string
	Type  string // Optional filter: "product" or "blog"; empty searches both.
	Page  int
	Limit int
}

// SearchCategories reports how many matches each content type contributed.
type SearchCategories struct {
	Products int64 `json:"products"`
	Blogs    int64 `json:"blogs"`
}

// SearchOutput is the paginated, merged search result set.
type SearchOutput struct {
	Results    []*entity.SearchResult `json:"results"`
	Categories SearchCategories       `json:"categories"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
	HasNext    bool                   `json:"hasNext"`
	HasPrev    bool                   `json:"hasPrev"`
}

// SearchUsecase defines the interface for global search operations.
type SearchUsecase interface {
	// Search runs the query against products and blogs, merges the matches
	// by recency and paginates the combined set.
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// Suggest returns prefix-matched product names and blog titles.
	Suggest(ctx context.Context, query string) ([]string, error)
}
