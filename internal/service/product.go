package service

import (
	"context"
	"errors"

	"finder-service/internal/model"
	"finder-service/internal/repository"
)

// ProductListFilter carries the query parameters of the product listing
type ProductListFilter struct {
	BrandID uint
	Query   string
	Page    int
	PerPage int
}

type ProductService interface {
	// List returns published grouped products matching the filter.
	List(ctx context.Context, filter ProductListFilter) ([]ProductView, error)
	// Get returns one product by id regardless of kind or status.
	Get(ctx context.Context, id uint) (*ProductView, error)
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context, filter ProductListFilter) ([]ProductView, error) {
	items, err := s.products.List(ctx, repository.ProductFilter{
		Kind:    model.KindGrouped,
		Status:  model.StatusPublish,
		BrandID: filter.BrandID,
		Search:  filter.Query,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	})
	if err != nil {
		return nil, err
	}

	resolve := attachmentResolver(ctx, s.products)
	views := make([]ProductView, 0, len(items))
	for i := range items {
		views = append(views, *ShapeProduct(&items[i], resolve))
	}
	return views, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*ProductView, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return ShapeProduct(product, attachmentResolver(ctx, s.products)), nil
}

// attachmentResolver adapts the repository's URL lookup to the shaping
// function's resolver contract
func attachmentResolver(ctx context.Context, products repository.ProductRepository) AttachmentResolver {
	return func(id uint) (string, bool) {
		url, err := products.AttachmentURL(ctx, id)
		if err != nil {
			return "", false
		}
		return url, true
	}
}
