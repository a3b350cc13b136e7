package product

import (
	"context"
	"errors"
	"fmt"

	"herbalMart/domain"
	"herbalMart/pkg/logger"

	"github.com/google/uuid"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CacheInvalidator drops derived catalog snapshots after writes. Optional.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type productService struct {
	productRepo ProductRepository
	cache       CacheInvalidator
}

func NewProductService(productRepo ProductRepository, cache CacheInvalidator) *productService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all products", "error", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateProduct(product); err != nil {
		logger.Error("invalid product data", "error", err)
		return nil, err
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidateCache(ctx)
	logger.Info("product created", "product_id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == "" {
		return nil, errors.New("product id is required")
	}

	if err := validateProduct(product); err != nil {
		logger.Error("invalid product data", "error", err)
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		return nil, errors.New("product not found")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updated, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	s.invalidateCache(ctx)
	logger.Info("product updated", "product_id", product.ID)

	return &updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return errors.New("product not found")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidateCache(ctx)
	logger.Info("product deleted", "product_id", id)

	return nil
}

func validateProduct(product *domain.Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}
	if product.Category == "" {
		return errors.New("product category is required")
	}
	if product.Price <= 0 {
		return errors.New("price must be greater than 0")
	}
	if product.Discount < 0 || product.Discount > 100 {
		return errors.New("discount must be between 0 and 100")
	}
	if product.Rating < 0 || product.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	if product.ReviewCount < 0 {
		return errors.New("review count cannot be negative")
	}
	return nil
}

func (s *productService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate catalog cache", "error", err)
	}
}
