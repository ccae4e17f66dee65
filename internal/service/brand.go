package service

import (
	"context"
	"errors"

	"finder-service/internal/model"
	"finder-service/internal/repository"
)

// BrandView is the externally-visible shape of a brand term
type BrandView struct {
	ID          uint                `json:"ID"`
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Taxonomy    string              `json:"taxonomy"`
	Count       int                 `json:"count"`
	Meta        map[string][]string `json:"meta"`
}

type BrandService interface {
	List(ctx context.Context, page, perPage int, search string) ([]BrandView, error)
	Get(ctx context.Context, id uint) (*BrandView, error)
}

type brandService struct {
	terms repository.TermRepository
}

func NewBrandService(terms repository.TermRepository) BrandService {
	return &brandService{terms: terms}
}

func (s *brandService) List(ctx context.Context, page, perPage int, search string) ([]BrandView, error) {
	items, err := s.terms.List(ctx, repository.TermFilter{
		Taxonomy: model.TaxonomyBrand,
		Search:   search,
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		return nil, err
	}

	views := make([]BrandView, 0, len(items))
	for i := range items {
		views = append(views, shapeBrand(&items[i]))
	}
	return views, nil
}

func (s *brandService) Get(ctx context.Context, id uint) (*BrandView, error) {
	term, err := s.terms.Get(ctx, id, model.TaxonomyBrand)
	if err != nil {
		if errors.Is(err, repository.ErrTermNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	view := shapeBrand(term)
	return &view, nil
}

func shapeBrand(t *model.Term) BrandView {
	return BrandView{
		ID:          t.ID,
		Slug:        t.Slug,
		Name:        t.Name,
		Description: t.Description,
		Taxonomy:    t.Taxonomy,
		Count:       t.Count,
		Meta:        t.MetaMap(),
	}
}
