package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchResultType discriminates the source table of a unified search hit.
type SearchResultType string

const (
	SearchResultProduct SearchResultType = "product"
	SearchResultBlog    SearchResultType = "blog"
)

// SearchResult is a derived, non-persisted unified view over product and blog
// rows. URL is the frontend path for the hit.
type SearchResult struct {
	ID        uuid.UUID        `json:"id"`
	Type      SearchResultType `json:"type"`
	Title     string           `json:"title"`
	Snippet   string           `json:"snippet"`
	URL       string           `json:"url"`
	CreatedAt time.Time        `json:"created_at"`
}
