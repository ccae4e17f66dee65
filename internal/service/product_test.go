package service

import (
	"context"
	"errors"
	"testing"

	"finder-service/internal/model"

	"github.com/shopspring/decimal"
)

func seedCatalog(f *fixture) {
	f.products.add(model.Product{
		ID: 1, Kind: model.KindGrouped, Status: model.StatusPublish,
		SKU: "BIKE-100", Name: "Bike 100", RegularPrice: decimal.NewFromInt(250),
	})
	f.products.add(model.Product{
		ID: 2, Kind: model.KindGrouped, Status: model.StatusPublish,
		SKU: "TRK-7", Name: "Trekker 7", RegularPrice: decimal.NewFromInt(400),
	})
	// Neither a draft grouped product nor a simple variant belongs in
	// the public listing
	f.products.add(model.Product{
		ID: 3, Kind: model.KindGrouped, Status: "draft",
		SKU: "DRAFT-1", Name: "Unreleased", RegularPrice: decimal.NewFromInt(100),
	})
	f.products.add(model.Product{
		ID: 4, Kind: model.KindSimple, Status: model.StatusPublish,
		SKU: "BIKE-100-jdoe-red-m", Name: "Bike 100 - jdoe", RegularPrice: decimal.NewFromInt(199), OwnerID: 42,
	})
	f.products.productTerms[1] = []model.Term{{ID: 7, Taxonomy: model.TaxonomyBrand, Slug: "acme", Name: "Acme"}}
}

func TestProductListGroupedPublishedOnly(t *testing.T) {
	f := newFixture()
	seedCatalog(f)
	svc := NewProductService(f.products)

	views, err := svc.List(context.Background(), ProductListFilter{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len = %d, want 2", len(views))
	}
	for _, v := range views {
		if v.Kind != model.KindGrouped || v.Status != model.StatusPublish {
			t.Errorf("unexpected record in listing: %+v", v)
		}
	}
}

func TestProductListBrandFilter(t *testing.T) {
	f := newFixture()
	seedCatalog(f)
	svc := NewProductService(f.products)

	views, err := svc.List(context.Background(), ProductListFilter{BrandID: 7, Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 || views[0].SKU != "BIKE-100" {
		t.Errorf("views = %v, want only the acme-tagged product", views)
	}
}

func TestProductListTextSearch(t *testing.T) {
	f := newFixture()
	seedCatalog(f)
	svc := NewProductService(f.products)

	views, err := svc.List(context.Background(), ProductListFilter{Query: "trekker", Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 || views[0].SKU != "TRK-7" {
		t.Errorf("views = %v, want only the matching product", views)
	}
}

func TestProductGetAnyKindOrStatus(t *testing.T) {
	f := newFixture()
	seedCatalog(f)
	svc := NewProductService(f.products)

	// Get is unconstrained: drafts and simple variants resolve too
	for _, id := range []uint{1, 3, 4} {
		if _, err := svc.Get(context.Background(), id); err != nil {
			t.Errorf("Get(%d): %v", id, err)
		}
	}

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Get(999) = %v, want ErrProductNotFound", err)
	}
}
