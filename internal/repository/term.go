package repository

import (
	"context"
	"errors"
	"time"

	"finder-service/internal/model"
	"finder-service/prometheus"

	"gorm.io/gorm"
)

// TermFilter narrows term listings within one taxonomy
type TermFilter struct {
	Taxonomy string
	Search   string
	Page     int
	PerPage  int
}

type TermRepository interface {
	Get(ctx context.Context, id uint, taxonomy string) (*model.Term, error)
	GetBySlug(ctx context.Context, slug, taxonomy string) (*model.Term, error)
	List(ctx context.Context, filter TermFilter) ([]model.Term, error)
	// EnsureAttributeTaxonomy registers an attribute schema entry if it
	// does not exist yet. Safe to call repeatedly.
	EnsureAttributeTaxonomy(ctx context.Context, name, slug string) error
}

type termRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) Get(ctx context.Context, id uint, taxonomy string) (*model.Term, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var term model.Term
	result := r.db.WithContext(ctx).
		Preload("Meta").
		Where("taxonomy = ?", taxonomy).
		First(&term, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		return nil, result.Error
	}
	return &term, nil
}

func (r *termRepository) GetBySlug(ctx context.Context, slug, taxonomy string) (*model.Term, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var term model.Term
	result := r.db.WithContext(ctx).
		Preload("Meta").
		Where("slug = ? AND taxonomy = ?", slug, taxonomy).
		First(&term)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		return nil, result.Error
	}
	return &term, nil
}

func (r *termRepository) List(ctx context.Context, filter TermFilter) ([]model.Term, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := r.db.WithContext(ctx).Model(&model.Term{}).
		Preload("Meta").
		Where("taxonomy = ?", filter.Taxonomy)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ?", like, like)
	}
	if filter.Page > 0 && filter.PerPage > 0 {
		query = query.Offset((filter.Page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	var terms []model.Term
	if result := query.Order("name").Find(&terms); result.Error != nil {
		return nil, result.Error
	}
	return terms, nil
}

func (r *termRepository) EnsureAttributeTaxonomy(ctx context.Context, name, slug string) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	taxonomy := model.AttributeTaxonomy{
		Name:    name,
		Slug:    slug,
		Type:    "select",
		OrderBy: "name",
	}
	return r.db.WithContext(ctx).
		Where(model.AttributeTaxonomy{Slug: slug}).
		FirstOrCreate(&taxonomy).Error
}
