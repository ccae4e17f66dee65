package service

import (
	"context"
	"strings"

	"finder-service/internal/model"
	"finder-service/internal/repository"
)

// In-memory repository fakes backing the service tests

type fixture struct {
	products *fakeProductRepo
	terms    *fakeTermRepo
	dealers  *fakeDealerRepo
}

func newFixture() *fixture {
	terms := &fakeTermRepo{}
	return &fixture{
		products: &fakeProductRepo{
			products:     make(map[uint]*model.Product),
			productTerms: make(map[uint][]model.Term),
			attachments:  make(map[uint]string),
			nextID:       1,
			termSource:   terms,
		},
		terms: terms,
		dealers: &fakeDealerRepo{
			dealers: make(map[uint]*model.Dealer),
		},
	}
}

func (f *fixture) dealerService() DealerService {
	return NewDealerService(f.products, f.terms, f.dealers)
}

func copyProduct(p *model.Product) *model.Product {
	clone := *p
	clone.Attributes = make([]model.ProductAttribute, len(p.Attributes))
	for i, a := range p.Attributes {
		clone.Attributes[i] = a
		clone.Attributes[i].Options = append([]string(nil), a.Options...)
	}
	clone.GalleryImageIDs = append([]uint(nil), p.GalleryImageIDs...)
	clone.Terms = append([]model.Term(nil), p.Terms...)
	return &clone
}

type fakeProductRepo struct {
	products     map[uint]*model.Product
	productTerms map[uint][]model.Term
	attachments  map[uint]string
	nextID       uint
	termSource   *fakeTermRepo
}

func (r *fakeProductRepo) add(p model.Product) {
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.products[p.ID] = copyProduct(&p)
}

func (r *fakeProductRepo) Get(ctx context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	clone := copyProduct(p)
	clone.Terms = append([]model.Term(nil), r.productTerms[id]...)
	return clone, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	var out []model.Product
	for id := uint(1); id < r.nextID; id++ {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if filter.Kind != "" && p.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.OwnerID != 0 && p.OwnerID != filter.OwnerID {
			continue
		}
		if filter.BrandID != 0 && !r.tagged(id, filter.BrandID) {
			continue
		}
		if filter.Search != "" && !matches(p, filter.Search) {
			continue
		}
		out = append(out, *copyProduct(p))
	}
	if filter.Page > 0 && filter.PerPage > 0 {
		start := (filter.Page - 1) * filter.PerPage
		if start >= len(out) {
			return nil, nil
		}
		end := start + filter.PerPage
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, nil
}

func (r *fakeProductRepo) tagged(productID, termID uint) bool {
	for _, t := range r.productTerms[productID] {
		if t.ID == termID {
			return true
		}
	}
	return false
}

func matches(p *model.Product, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), s) ||
		strings.Contains(strings.ToLower(p.SKU), s) ||
		strings.Contains(strings.ToLower(p.Description), s)
}

func (r *fakeProductRepo) CreateVariant(ctx context.Context, variant *model.Product, termIDs []uint) error {
	variant.ID = r.nextID
	r.nextID++
	for i := range variant.Attributes {
		variant.Attributes[i].ProductID = variant.ID
	}
	r.products[variant.ID] = copyProduct(variant)
	for _, termID := range termIDs {
		term := model.Term{ID: termID}
		for _, t := range r.termSource.terms {
			if t.ID == termID {
				term = t
				break
			}
		}
		r.productTerms[variant.ID] = append(r.productTerms[variant.ID], term)
	}
	return nil
}

func (r *fakeProductRepo) Save(ctx context.Context, product *model.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.products[product.ID] = copyProduct(product)
	return nil
}

func (r *fakeProductRepo) HardDelete(ctx context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)
	delete(r.productTerms, id)
	return nil
}

func (r *fakeProductRepo) TermsFor(ctx context.Context, productID uint, taxonomy string) ([]model.Term, error) {
	var out []model.Term
	for _, t := range r.productTerms[productID] {
		if t.Taxonomy == taxonomy {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AttachmentURL(ctx context.Context, id uint) (string, error) {
	url, ok := r.attachments[id]
	if !ok {
		return "", repository.ErrAttachmentNotFound
	}
	return url, nil
}

type fakeTermRepo struct {
	terms   []model.Term
	ensured []string
}

func (r *fakeTermRepo) Get(ctx context.Context, id uint, taxonomy string) (*model.Term, error) {
	for i := range r.terms {
		if r.terms[i].ID == id && r.terms[i].Taxonomy == taxonomy {
			t := r.terms[i]
			return &t, nil
		}
	}
	return nil, repository.ErrTermNotFound
}

func (r *fakeTermRepo) GetBySlug(ctx context.Context, slug, taxonomy string) (*model.Term, error) {
	for i := range r.terms {
		if r.terms[i].Slug == slug && r.terms[i].Taxonomy == taxonomy {
			t := r.terms[i]
			return &t, nil
		}
	}
	return nil, repository.ErrTermNotFound
}

func (r *fakeTermRepo) List(ctx context.Context, filter repository.TermFilter) ([]model.Term, error) {
	var out []model.Term
	for _, t := range r.terms {
		if t.Taxonomy != filter.Taxonomy {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(t.Slug), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, t)
	}
	if filter.Page > 0 && filter.PerPage > 0 {
		start := (filter.Page - 1) * filter.PerPage
		if start >= len(out) {
			return nil, nil
		}
		end := start + filter.PerPage
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, nil
}

func (r *fakeTermRepo) EnsureAttributeTaxonomy(ctx context.Context, name, slug string) error {
	for _, s := range r.ensured {
		if s == slug {
			return nil
		}
	}
	r.ensured = append(r.ensured, slug)
	return nil
}

type fakeDealerRepo struct {
	dealers map[uint]*model.Dealer
}

func (r *fakeDealerRepo) Get(ctx context.Context, id uint) (*model.Dealer, error) {
	d, ok := r.dealers[id]
	if !ok {
		return nil, repository.ErrDealerNotFound
	}
	clone := *d
	clone.Meta = append([]model.DealerMeta(nil), d.Meta...)
	return &clone, nil
}
