package impl

import (
	"context"
	"testing"
	"time"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	mockRepo "musika/internal/mocks/repository"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchService(t *testing.T) (usecase.SearchUsecase, *mockRepo.MockProductRepository, *mockRepo.MockBlogRepository) {
	t.Helper()

	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockBlogRepo := mockRepo.NewMockBlogRepository(t)

	svc := NewSearchService(SearchServiceParams{
		ProductRepo: mockProductRepo,
		BlogRepo:    mockBlogRepo,
		Config:      newSearchTestConfig(),
	})

	return svc, mockProductRepo, mockBlogRepo
}

func testProducts(n int, base time.Time) []*entity.Product {
	products := make([]*entity.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, &entity.Product{
			ID:          uuid.New(),
			Name:        "Mbira",
			Description: "Handcrafted mbira instrument",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
	}

	return products
}

func testBlogs(n int, base time.Time) []*entity.Blog {
	blogs := make([]*entity.Blog, 0, n)
	for i := 0; i < n; i++ {
		blogs = append(blogs, &entity.Blog{
			ID:        uuid.New(),
			Title:     "Playing the mbira",
			Slug:      "playing-the-mbira",
			Content:   "A beginner's guide to the mbira",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	return blogs
}

func TestSearchService_Search_MergesAndSortsByRecency(t *testing.T) {
	svc, mockProductRepo, mockBlogRepo := newSearchService(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	products := testProducts(2, base)                 // 12:00, 13:00
	blogs := testBlogs(1, base.Add(30*time.Minute))   // 12:30

	mockProductRepo.EXPECT().Search(ctx, "mbira").Return(products, 2, nil)
	mockBlogRepo.EXPECT().Search(ctx, "mbira").Return(blogs, 1, nil)

	output, err := svc.Search(ctx, &usecase.SearchInput{Query: "mbira", Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, output.Results, 3)
	assert.Equal(t, entity.SearchResultProduct, output.Results[0].Type) // 13:00
	assert.Equal(t, entity.SearchResultBlog, output.Results[1].Type)    // 12:30
	assert.Equal(t, entity.SearchResultProduct, output.Results[2].Type) // 12:00

	// With no type filter the category counts partition the total.
	assert.Equal(t, output.Total, output.Categories.Products+output.Categories.Blogs)
	assert.Equal(t, int64(3), output.Total)
	assert.Equal(t, 1, output.TotalPages)
	assert.False(t, output.HasNext)
	assert.False(t, output.HasPrev)
}

func TestSearchService_Search_TypeFilter(t *testing.T) {
	svc, mockProductRepo, _ := newSearchService(t)
	ctx := context.Background()
	base := time.Now()

	mockProductRepo.EXPECT().Search(ctx, "mbira").Return(testProducts(2, base), 2, nil)

	output, err := svc.Search(ctx, &usecase.SearchInput{Query: "mbira", Type: "product"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), output.Total)
	assert.Equal(t, int64(0), output.Categories.Blogs)
	for _, result := range output.Results {
		assert.Equal(t, entity.SearchResultProduct, result.Type)
	}
}

func TestSearchService_Search_InvalidType(t *testing.T) {
	svc, _, _ := newSearchService(t)

	output, err := svc.Search(context.Background(), &usecase.SearchInput{Query: "mbira", Type: "podcast"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSearchType)
}

func TestSearchService_Search_QueryTooShort(t *testing.T) {
	svc, _, _ := newSearchService(t)

	output, err := svc.Search(context.Background(), &usecase.SearchInput{Query: " m "})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrQueryTooShort)
}

func TestSearchService_Search_PaginationMetadata(t *testing.T) {
	svc, mockProductRepo, mockBlogRepo := newSearchService(t)
	ctx := context.Background()
	base := time.Now()

	mockProductRepo.EXPECT().Search(ctx, "mbira").Return(testProducts(3, base), 3, nil)
	mockBlogRepo.EXPECT().Search(ctx, "mbira").Return(testBlogs(2, base), 2, nil)

	output, err := svc.Search(ctx, &usecase.SearchInput{Query: "mbira", Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), output.Total)
	assert.Equal(t, 3, output.TotalPages)
	assert.Equal(t, 2, output.Page)
	assert.Len(t, output.Results, 2)
	assert.True(t, output.HasNext)
	assert.True(t, output.HasPrev)
}

func TestSearchService_Search_ResultURLs(t *testing.T) {
	svc, mockProductRepo, mockBlogRepo := newSearchService(t)
	ctx := context.Background()
	base := time.Now()

	products := testProducts(1, base)
	blogs := testBlogs(1, base.Add(time.Hour))
	mockProductRepo.EXPECT().Search(ctx, "mbira").Return(products, 1, nil)
	mockBlogRepo.EXPECT().Search(ctx, "mbira").Return(blogs, 1, nil)

	output, err := svc.Search(ctx, &usecase.SearchInput{Query: "mbira"})
	require.NoError(t, err)

	require.Len(t, output.Results, 2)
	assert.Equal(t, "https://musika.example/blog/playing-the-mbira", output.Results[0].URL)
	assert.Equal(t, "https://musika.example/products/"+products[0].ID.String(), output.Results[1].URL)
}

func TestSearchService_Suggest(t *testing.T) {
	svc, mockProductRepo, mockBlogRepo := newSearchService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().SuggestNames(ctx, "mb", 10).Return([]string{"Mbira", "Mbira bag"}, nil)
	mockBlogRepo.EXPECT().SuggestTitles(ctx, "mb", 10).Return([]string{"Mbira"}, nil)

	suggestions, err := svc.Suggest(ctx, "mb")
	require.NoError(t, err)

	// Duplicates across sources are collapsed.
	assert.Equal(t, []string{"Mbira", "Mbira bag"}, suggestions)
}

func TestSearchService_Suggest_QueryTooShort(t *testing.T) {
	svc, _, _ := newSearchService(t)

	suggestions, err := svc.Suggest(context.Background(), "m")
	assert.Nil(t, suggestions)
	assert.ErrorIs(t, err, domainerrors.ErrQueryTooShort)
}
