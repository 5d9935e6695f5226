package impl

import (
	"context"
	"sort"
	"strings"

	"musika/config"
	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/usecase"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
	snippetLength      = 160
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	productRepo    repository.ProductRepository
	blogRepo       repository.BlogRepository
	minQueryLength int
	maxSuggestions int
	frontendURL    string
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	BlogRepo    repository.BlogRepository
	Config      *config.Config
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	minLen := 2
	maxSuggestions := 10
	frontendURL := ""
	if params.Config != nil && params.Config.Search != nil {
		if params.Config.Search.MinQueryLength > 0 {
			minLen = params.Config.Search.MinQueryLength
		}
		if params.Config.Search.MaxSuggestions > 0 {
			maxSuggestions = params.Config.Search.MaxSuggestions
		}
		frontendURL = params.Config.Search.FrontendURL
	}

	return &searchService{
		productRepo:    params.ProductRepo,
		blogRepo:       params.BlogRepo,
		minQueryLength: minLen,
		maxSuggestions: maxSuggestions,
		frontendURL:    frontendURL,
	}
}

// Search runs the query against products and blogs independently, merges the
// matches by recency and paginates the combined set. With no type filter the
// category counts always sum to the reported total.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if len(query) < srv.minQueryLength {
		return nil, domainerrors.ErrQueryTooShort
	}

	searchType := strings.TrimSpace(input.Type)
	if searchType != "" &&
		searchType != string(entity.SearchResultProduct) &&
		searchType != string(entity.SearchResultBlog) {
		return nil, domainerrors.ErrInvalidSearchType
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	var (
		results       []*entity.SearchResult
		productsTotal int64
		blogsTotal    int64
	)

	if searchType == "" || searchType == string(entity.SearchResultProduct) {
		products, total, err := srv.productRepo.Search(ctx, query)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search products")
		}
		productsTotal = total
		results = append(results, lo.Map(products, func(p *entity.Product, _ int) *entity.SearchResult {
			return srv.productResult(p)
		})...)
	}

	if searchType == "" || searchType == string(entity.SearchResultBlog) {
		blogs, total, err := srv.blogRepo.Search(ctx, query)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search blogs")
		}
		blogsTotal = total
		results = append(results, lo.Map(blogs, func(b *entity.Blog, _ int) *entity.SearchResult {
			return srv.blogResult(b)
		})...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	total := productsTotal + blogsTotal
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	start := (page - 1) * limit
	end := start + limit
	if start > len(results) {
		start = len(results)
	}
	if end > len(results) {
		end = len(results)
	}
	pageResults := results[start:end]

	return &usecase.SearchOutput{
		Results: pageResults,
		Categories: usecase.SearchCategories{
			Products: productsTotal,
			Blogs:    blogsTotal,
		},
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}, nil
}

// Suggest returns prefix-matched product names and blog titles, capped at the
// configured maximum.
func (srv *searchService) Suggest(ctx context.Context, query string) ([]string, error) {
	prefix := strings.TrimSpace(query)
	if len(prefix) < srv.minQueryLength {
		return nil, domainerrors.ErrQueryTooShort
	}

	names, err := srv.productRepo.SuggestNames(ctx, prefix, srv.maxSuggestions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest product names")
	}

	titles, err := srv.blogRepo.SuggestTitles(ctx, prefix, srv.maxSuggestions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest blog titles")
	}

	suggestions := lo.Uniq(append(names, titles...))
	if len(suggestions) > srv.maxSuggestions {
		suggestions = suggestions[:srv.maxSuggestions]
	}

	return suggestions, nil
}

func (srv *searchService) productResult(p *entity.Product) *entity.SearchResult {
	return &entity.SearchResult{
		ID:        p.ID,
		Type:      entity.SearchResultProduct,
		Title:     p.Name,
		Snippet:   snippet(p.Description),
		URL:       srv.frontendURL + "/products/" + p.ID.String(),
		CreatedAt: p.CreatedAt,
	}
}

func (srv *searchService) blogResult(b *entity.Blog) *entity.SearchResult {
	return &entity.SearchResult{
		ID:        b.ID,
		Type:      entity.SearchResultBlog,
		Title:     b.Title,
		Snippet:   snippet(b.Content),
		URL:       srv.frontendURL + "/blog/" + b.Slug,
		CreatedAt: b.CreatedAt,
	}
}

// snippet truncates text on a rune boundary for result previews.
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return text
	}

	return string(runes[:snippetLength]) + "…"
}
