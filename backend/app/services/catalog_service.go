package services

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"stocklist/backend/app/apperr"
	"stocklist/backend/app/cache"
	"stocklist/backend/app/dto"
	"stocklist/backend/app/models"
	"stocklist/backend/app/repo"

	"gorm.io/gorm"
)

type CatalogService struct {
	products *repo.ProductRepository
	cache    *cache.Catalog // nil-safe, may be a no-op
}

func NewCatalogService(products *repo.ProductRepository, c *cache.Catalog) *CatalogService {
	return &CatalogService{products: products, cache: c}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	if products, ok := s.cache.GetList(ctx); ok {
		return products, nil
	}
	products, err := s.products.List()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error fetching products", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	s.cache.SetList(ctx, products)
	return products, nil
}

func (s *CatalogService) Search(query string) ([]models.Product, error) {
	if query == "" {
		return nil, apperr.New(apperr.Validation, "Search text is required")
	}
	if utf8.RuneCountInString(query) < 2 {
		return nil, apperr.New(apperr.Validation, "Search text must contain at least 2 characters")
	}
	products, err := s.products.Search(query)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error searching products", err)
	}
	// no match is an empty 200 list, never an error
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *CatalogService) Get(productID int) (*models.Product, error) {
	p, err := s.products.FindByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Product not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}
	return p, nil
}

func (s *CatalogService) Create(ctx context.Context, req dto.CreateProductRequest) (*models.Product, error) {
	if req.ProductName == "" || req.ProductDescription == "" {
		return nil, apperr.New(apperr.Validation, "Product name and description are required")
	}
	if req.CurrentStockLevel < 0 {
		return nil, apperr.New(apperr.Validation, "Stock level cannot be negative")
	}
	p := &models.Product{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		CurrentStockLevel:  req.CurrentStockLevel,
		Status:             true,
		CreationDate:       time.Now(),
	}
	if err := s.products.CreateAssigningID(p); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}
	s.cache.Invalidate(ctx)
	return p, nil
}

// Update merges the provided fields into the stored record; omitted fields
// keep their values.
func (s *CatalogService) Update(ctx context.Context, productID int, req dto.UpdateProductRequest) (*models.Product, error) {
	fields := map[string]any{}
	if req.ProductName != nil {
		if *req.ProductName == "" {
			return nil, apperr.New(apperr.Validation, "Product name cannot be empty")
		}
		fields["product_name"] = *req.ProductName
	}
	if req.ProductDescription != nil {
		fields["product_description"] = *req.ProductDescription
	}
	if req.CurrentStockLevel != nil {
		if *req.CurrentStockLevel < 0 {
			return nil, apperr.New(apperr.Validation, "Stock level cannot be negative")
		}
		fields["current_stock_level"] = *req.CurrentStockLevel
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	p, err := s.products.UpdateFields(productID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Product not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}
	s.cache.Invalidate(ctx)
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, productID int) (*models.Product, error) {
	p, err := s.products.DeleteByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Product not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}
	s.cache.Invalidate(ctx)
	return p, nil
}
