package service

import (
	"context"
	"errors"

	"finder-service/internal/model"
	"finder-service/internal/repository"

	"github.com/shopspring/decimal"
)

// CreateVariantInput carries the dealer's variant creation request.
// All fields are required.
type CreateVariantInput struct {
	ParentID uint   `json:"parent_id"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Price    string `json:"price"`
}

// EditVariantInput carries the dealer's variant update request. Empty
// fields are left unchanged.
type EditVariantInput struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Price string `json:"price"`
}

type DealerService interface {
	// Profile returns the dealer record plus flattened metadata.
	Profile(ctx context.Context, dealerID uint) (map[string]interface{}, error)
	// ListVariants returns the dealer's own published simple products.
	ListVariants(ctx context.Context, dealerID uint, page, perPage int) ([]ProductView, error)
	// GetVariant returns one variant by id. Ownership is not checked on
	// the read path.
	GetVariant(ctx context.Context, id uint) (*ProductView, error)
	CreateVariant(ctx context.Context, dealerID uint, in CreateVariantInput) (*ProductView, error)
	EditVariant(ctx context.Context, dealerID, id uint, in EditVariantInput) (*ProductView, error)
	DeleteVariant(ctx context.Context, dealerID, id uint) error
}

type dealerService struct {
	products repository.ProductRepository
	terms    repository.TermRepository
	dealers  repository.DealerRepository
}

func NewDealerService(products repository.ProductRepository, terms repository.TermRepository, dealers repository.DealerRepository) DealerService {
	return &dealerService{products: products, terms: terms, dealers: dealers}
}

func (s *dealerService) Profile(ctx context.Context, dealerID uint) (map[string]interface{}, error) {
	dealer, err := s.dealers.Get(ctx, dealerID)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, ErrDealerNotFound
		}
		return nil, err
	}

	// Single-valued metadata keys are unwrapped from their list form
	grouped := make(map[string][]string)
	for _, m := range dealer.Meta {
		grouped[m.Key] = append(grouped[m.Key], m.Value)
	}
	meta := make(map[string]interface{}, len(grouped))
	for key, values := range grouped {
		if len(values) == 1 {
			meta[key] = values[0]
		} else {
			meta[key] = values
		}
	}

	return map[string]interface{}{
		"id":           dealer.ID,
		"login":        dealer.Login,
		"email":        dealer.Email,
		"display_name": dealer.DisplayName,
		"region":       dealer.Region,
		"city":         dealer.City,
		"created_at":   dealer.CreatedAt,
		"meta":         meta,
	}, nil
}

func (s *dealerService) ListVariants(ctx context.Context, dealerID uint, page, perPage int) ([]ProductView, error) {
	items, err := s.products.List(ctx, repository.ProductFilter{
		Kind:    model.KindSimple,
		Status:  model.StatusPublish,
		OwnerID: dealerID,
		Page:    page,
		PerPage: perPage,
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

func (s *dealerService) GetVariant(ctx context.Context, id uint) (*ProductView, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return ShapeProduct(product, attachmentResolver(ctx, s.products)), nil
}

func (s *dealerService) CreateVariant(ctx context.Context, dealerID uint, in CreateVariantInput) (*ProductView, error) {
	if in.ParentID == 0 || in.Size == "" || in.Color == "" || in.Price == "" {
		return nil, ErrInvalidVariantInput
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || !price.IsPositive() {
		return nil, ErrInvalidVariantInput
	}

	parent, err := s.products.Get(ctx, in.ParentID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrInvalidVariantInput
		}
		return nil, err
	}
	if !parent.IsGrouped() {
		return nil, ErrInvalidVariantInput
	}

	dealer, err := s.dealers.Get(ctx, dealerID)
	if err != nil {
		if errors.Is(err, repository.ErrDealerNotFound) {
			return nil, ErrDealerNotFound
		}
		return nil, err
	}

	// Brand comes from the parent, condition is the pre-provisioned
	// "new" term. Both must resolve or creation fails.
	brandTerms, err := s.products.TermsFor(ctx, parent.ID, model.TaxonomyBrand)
	if err != nil {
		return nil, err
	}
	if len(brandTerms) == 0 {
		return nil, ErrInvalidVariantInput
	}
	condition, err := s.terms.GetBySlug(ctx, model.ConditionNewSlug, model.TaxonomyCondition)
	if err != nil {
		if errors.Is(err, repository.ErrTermNotFound) {
			return nil, ErrInvalidVariantInput
		}
		return nil, err
	}

	variant := &model.Product{
		Kind:             model.KindSimple,
		Status:           model.StatusPublish,
		SKU:              DeriveSKU(parent.SKU, dealer.Login, in.Color, in.Size),
		Name:             DeriveTitle(parent.Name, dealer.Login),
		Description:      parent.Description,
		ShortDescription: parent.ShortDescription,
		RegularPrice:     price,
		ParentID:         &parent.ID,
		OwnerID:          dealer.ID,
		ImageID:          parent.ImageID,
		GalleryImageIDs:  append([]uint(nil), parent.GalleryImageIDs...),
		Attributes:       variantAttributes(parent, in.Color, in.Size, dealer.Region, dealer.City),
	}

	if err := s.products.CreateVariant(ctx, variant, []uint{brandTerms[0].ID, condition.ID}); err != nil {
		return nil, err
	}

	created, err := s.products.Get(ctx, variant.ID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return ShapeProduct(created, attachmentResolver(ctx, s.products)), nil
}

func (s *dealerService) EditVariant(ctx context.Context, dealerID, id uint, in EditVariantInput) (*ProductView, error) {
	variant, err := s.ownedVariant(ctx, dealerID, id)
	if err != nil {
		return nil, err
	}

	if in.Color != "" {
		setAttributeOption(variant, model.AttrColor, "color", in.Color)
	}
	if in.Size != "" {
		setAttributeOption(variant, model.AttrSize, "size", in.Size)
	}
	if in.Price != "" {
		price, err := decimal.NewFromString(in.Price)
		if err != nil || !price.IsPositive() {
			return nil, ErrInvalidPrice
		}
		variant.RegularPrice = price
	}

	if err := s.products.Save(ctx, variant); err != nil {
		return nil, err
	}
	return ShapeProduct(variant, attachmentResolver(ctx, s.products)), nil
}

func (s *dealerService) DeleteVariant(ctx context.Context, dealerID, id uint) error {
	variant, err := s.products.Get(ctx, id)
	if err != nil || variant.OwnerID != dealerID {
		return ErrVariantDelete
	}
	if err := s.products.HardDelete(ctx, id); err != nil {
		return ErrVariantDelete
	}
	return nil
}

// ownedVariant resolves a simple product owned by the acting dealer.
// Anything else reads as not found.
func (s *dealerService) ownedVariant(ctx context.Context, dealerID, id uint) (*model.Product, error) {
	variant, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, ErrDealerProductNotFound
	}
	if !variant.IsSimple() || variant.OwnerID == 0 || variant.OwnerID != dealerID {
		return nil, ErrDealerProductNotFound
	}
	return variant, nil
}

// variantAttributes clones the parent's attribute set, overrides color
// and size with the dealer's values, and appends the region and city
// snapshot from the dealer profile.
func variantAttributes(parent *model.Product, color, size, region, city string) []model.ProductAttribute {
	attrs := make([]model.ProductAttribute, 0, len(parent.Attributes)+4)
	for _, a := range parent.Attributes {
		clone := model.ProductAttribute{
			Key:      a.Key,
			Name:     a.Name,
			Position: a.Position,
			Visible:  a.Visible,
			Options:  append([]string(nil), a.Options...),
		}
		switch a.Key {
		case model.AttrColor:
			clone.Options = []string{color}
		case model.AttrSize:
			clone.Options = []string{size}
		}
		attrs = append(attrs, clone)
	}

	ensure := func(key, name, value string, position int, visible bool) {
		for i := range attrs {
			if attrs[i].Key == key {
				return
			}
		}
		attrs = append(attrs, model.ProductAttribute{
			Key:      key,
			Name:     name,
			Position: position,
			Visible:  visible,
			Options:  []string{value},
		})
	}
	ensure(model.AttrColor, "color", color, 0, true)
	ensure(model.AttrSize, "size", size, 0, true)
	ensure(model.AttrRegion, "region", region, 1, true)
	ensure(model.AttrCity, "city", city, 0, true)

	return attrs
}

// setAttributeOption overrides an attribute's value list, appending the
// entry when the key is not present yet
func setAttributeOption(p *model.Product, key, name, value string) {
	if attr := p.Attribute(key); attr != nil {
		attr.Options = []string{value}
		return
	}
	p.Attributes = append(p.Attributes, model.ProductAttribute{
		ProductID: p.ID,
		Key:       key,
		Name:      name,
		Visible:   true,
		Options:   []string{value},
	})
}
