package repository

import (
	"context"
	"errors"
	"time"

	"finder-service/internal/model"
	"finder-service/prometheus"

	"gorm.io/gorm"
)

// ProductFilter narrows product listings. Zero values leave the
// corresponding constraint unapplied.
type ProductFilter struct {
	Kind    string
	Status  string
	OwnerID uint
	BrandID uint
	Search  string
	Page    int
	PerPage int
}

type ProductRepository interface {
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	// CreateVariant persists the variant, its attributes, and its term
	// links as a single transaction.
	CreateVariant(ctx context.Context, variant *model.Product, termIDs []uint) error
	Save(ctx context.Context, product *model.Product) error
	// HardDelete removes the product permanently, bypassing soft delete.
	HardDelete(ctx context.Context, id uint) error
	TermsFor(ctx context.Context, productID uint, taxonomy string) ([]model.Term, error)
	AttachmentURL(ctx context.Context, id uint) (string, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Get(ctx context.Context, id uint) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var product model.Product
	result := r.db.WithContext(ctx).
		Preload("Attributes").
		Preload("Terms").
		First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, result.Error
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := r.db.WithContext(ctx).Model(&model.Product{}).
		Preload("Attributes").
		Preload("Terms")

	if filter.Kind != "" {
		query = query.Where("products.kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		query = query.Where("products.status = ?", filter.Status)
	}
	if filter.OwnerID != 0 {
		query = query.Where("products.owner_id = ?", filter.OwnerID)
	}
	if filter.BrandID != 0 {
		query = query.
			Joins("JOIN product_terms ON product_terms.product_id = products.id").
			Where("product_terms.term_id = ?", filter.BrandID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"products.name ILIKE ? OR products.sku ILIKE ? OR products.description ILIKE ?",
			like, like, like,
		)
	}
	if filter.Page > 0 && filter.PerPage > 0 {
		query = query.Offset((filter.Page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	var products []model.Product
	if result := query.Order("products.id").Find(&products); result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

func (r *productRepository) CreateVariant(ctx context.Context, variant *model.Product, termIDs []uint) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(variant).Error; err != nil {
			return err
		}
		if len(termIDs) == 0 {
			return nil
		}
		var terms []model.Term
		if err := tx.Find(&terms, termIDs).Error; err != nil {
			return err
		}
		return tx.Model(variant).Association("Terms").Append(&terms)
	})
}

func (r *productRepository) Save(ctx context.Context, product *model.Product) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Omit associations so term links are not rewritten on every save
		if err := tx.Omit("Attributes", "Terms").Save(product).Error; err != nil {
			return err
		}
		for i := range product.Attributes {
			if err := tx.Save(&product.Attributes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepository) HardDelete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product := model.Product{ID: id}
		if err := tx.Model(&product).Association("Terms").Clear(); err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductAttribute{}).Error; err != nil {
			return err
		}
		result := tx.Unscoped().Delete(&model.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

func (r *productRepository) TermsFor(ctx context.Context, productID uint, taxonomy string) ([]model.Term, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var terms []model.Term
	result := r.db.WithContext(ctx).
		Joins("JOIN product_terms ON product_terms.term_id = terms.id").
		Where("product_terms.product_id = ? AND terms.taxonomy = ?", productID, taxonomy).
		Find(&terms)
	if result.Error != nil {
		return nil, result.Error
	}
	return terms, nil
}

func (r *productRepository) AttachmentURL(ctx context.Context, id uint) (string, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var attachment model.Attachment
	result := r.db.WithContext(ctx).First(&attachment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrAttachmentNotFound
		}
		return "", result.Error
	}
	return attachment.URL, nil
}
