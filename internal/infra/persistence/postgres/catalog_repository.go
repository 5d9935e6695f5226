package postgres

import (
	"context"

	"musika/internal/domain/entity"
	"musika/internal/domain/repository"
	"musika/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the repository.ProductRepository interface.
// Search queries are routed to read replicas via dbresolver.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Search returns products whose name or description contains the query,
// newest first, plus the total match count.
func (repo *productRepository) Search(ctx context.Context, query string) ([]*entity.Product, int64, error) {
	pattern := "%" + query + "%"
	base := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ProductModel{}).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count matching products")
	}

	var productModels []*model.ProductModel
	if err := base.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// SuggestNames returns up to limit product names starting with prefix.
func (repo *productRepository) SuggestNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ProductModel{}).
		Where("name ILIKE ?", prefix+"%").
		Order("name ASC").
		Limit(limit).
		Pluck("name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest product names")
	}

	return names, nil
}

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// Search returns blogs whose title or content contains the query, newest
// first, plus the total match count.
func (repo *blogRepository) Search(ctx context.Context, query string) ([]*entity.Blog, int64, error) {
	pattern := "%" + query + "%"
	base := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.BlogModel{}).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count matching blogs")
	}

	var blogModels []*model.BlogModel
	if err := base.Order("created_at DESC").Find(&blogModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, total, nil
}

// SuggestTitles returns up to limit blog titles starting with prefix.
func (repo *blogRepository) SuggestTitles(ctx context.Context, prefix string, limit int) ([]string, error) {
	var titles []string

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.BlogModel{}).
		Where("title ILIKE ?", prefix+"%").
		Order("title ASC").
		Limit(limit).
		Pluck("title", &titles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest blog titles")
	}

	return titles, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Content:     data.Content,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
