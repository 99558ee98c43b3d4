package services

import (
	"context"

	"cafestore/internal/domain"
)

// ProductSource is the remote catalog dependency; tests substitute a fake.
type ProductSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type CatalogService struct {
	Source ProductSource
}

func NewCatalogService(src ProductSource) *CatalogService {
	return &CatalogService{Source: src}
}

// Products returns the full catalog. No retry: a failed fetch is the caller's
// to log, and pages render empty.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.Source.Products(ctx)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.Source.Categories(ctx)
}

// Find locates a product by id in the catalog.
func (s *CatalogService) Find(ctx context.Context, id int) (domain.Product, bool, error) {
	products, err := s.Source.Products(ctx)
	if err != nil {
		return domain.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}
