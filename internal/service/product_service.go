package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shopsphere/internal/cache"
	apperrors "shopsphere/internal/errors"
	"shopsphere/internal/model"
	"shopsphere/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductService handles catalog product operations.
type ProductService interface {
	List(ctx context.Context, categoryID *uint, search string) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id uint, fields *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{
		repo:  repo,
		cache: cache,
	}
}

func (s *productService) cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// List returns products filtered by category or search term. The category
// filter wins when both are present.
func (s *productService) List(ctx context.Context, categoryID *uint, search string) ([]model.Product, error) {
	switch {
	case categoryID != nil:
		return s.repo.ListByCategory(ctx, *categoryID)
	case search != "":
		return s.repo.Search(ctx, search)
	default:
		return s.repo.List(ctx)
	}
}

// Get retrieves a product by ID with caching.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if data, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), data, productCacheTTL)
	}

	return product, nil
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update replaces the mutable fields of an existing product and drops the
// stale cache entry.
func (s *productService) Update(ctx context.Context, id uint, fields *model.Product) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product.Name = fields.Name
	product.Description = fields.Description
	product.Price = fields.Price
	product.OriginalPrice = fields.OriginalPrice
	product.Discount = fields.Discount
	product.Rating = fields.Rating
	product.Reviews = fields.Reviews
	product.Image = fields.Image
	product.CategoryID = fields.CategoryID

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return apperrors.ErrProductNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
