package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product kinds as stored in the catalog
const (
	KindGrouped = "grouped"
	KindSimple  = "simple"
)

// StatusPublish is the only product status served by this API
const StatusPublish = "publish"

// Product represents a catalog entry. A "grouped" product is a family
// sharing one SKU; a "simple" product is one dealer's concrete offering
// under a grouped parent.
type Product struct {
	ID               uint            `json:"id" gorm:"primarykey"`
	Kind             string          `json:"kind" gorm:"type:varchar(20);not null;index"`
	Status           string          `json:"status" gorm:"type:varchar(20);not null;index"`
	SKU              string          `json:"sku" gorm:"type:varchar(100);unique;not null"`
	Name             string          `json:"name" gorm:"type:varchar(255);not null"`
	Description      string          `json:"description" gorm:"type:text"`
	ShortDescription string          `json:"short_description" gorm:"type:text"`
	RegularPrice     decimal.Decimal `json:"regular_price" gorm:"type:decimal(16,2);not null"`
	ParentID         *uint           `json:"parent_id,omitempty" gorm:"index"`
	OwnerID          uint            `json:"owner_id" gorm:"index"`
	ImageID          *uint           `json:"image_id,omitempty"`
	GalleryImageIDs  []uint          `json:"gallery_image_ids" gorm:"serializer:json"`

	Attributes []ProductAttribute `json:"attributes" gorm:"constraint:OnDelete:CASCADE"`
	Terms      []Term             `json:"terms" gorm:"many2many:product_terms;"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// IsGrouped reports whether the product is a grouped parent
func (p *Product) IsGrouped() bool {
	return p.Kind == KindGrouped
}

// IsSimple reports whether the product is a simple variant
func (p *Product) IsSimple() bool {
	return p.Kind == KindSimple
}

// Attribute looks up an attribute entry by key, e.g. "pa_color"
func (p *Product) Attribute(key string) *ProductAttribute {
	for i := range p.Attributes {
		if p.Attributes[i].Key == key {
			return &p.Attributes[i]
		}
	}
	return nil
}

// Well-known attribute keys
const (
	AttrColor  = "pa_color"
	AttrSize   = "pa_size"
	AttrRegion = "pa_region"
	AttrCity   = "pa_city"
)

// ProductAttribute is one entry of a product's attribute set
type ProductAttribute struct {
	ID        uint     `json:"id" gorm:"primarykey"`
	ProductID uint     `json:"product_id" gorm:"index;not null"`
	Key       string   `json:"key" gorm:"type:varchar(100);not null"`
	Name      string   `json:"name" gorm:"type:varchar(100);not null"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Options   []string `json:"options" gorm:"serializer:json"`
}

// First returns the first option value, or the empty string
func (a *ProductAttribute) First() string {
	if len(a.Options) == 0 {
		return ""
	}
	return a.Options[0]
}

// Attachment maps a media reference to its public URL
type Attachment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	URL       string    `json:"url" gorm:"type:varchar(2048);not null"`
	CreatedAt time.Time `json:"created_at"`
}
