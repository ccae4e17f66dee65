package model

import "time"

// Taxonomies used by the marketplace
const (
	TaxonomyBrand     = "brand"
	TaxonomyCondition = "condition"
)

// ConditionNewSlug is the pre-provisioned condition term attached to
// every dealer-created variant
const ConditionNewSlug = "new"

// Term is a taxonomy entry, e.g. a brand or a condition tag
type Term struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Taxonomy    string     `json:"taxonomy" gorm:"type:varchar(50);not null;index"`
	Slug        string     `json:"slug" gorm:"type:varchar(200);not null;index"`
	Name        string     `json:"name" gorm:"type:varchar(200);not null"`
	Description string     `json:"description" gorm:"type:text"`
	Count       int        `json:"count" gorm:"default:0"`
	Meta        []TermMeta `json:"meta,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MetaMap groups the term's metadata rows by key
func (t *Term) MetaMap() map[string][]string {
	meta := make(map[string][]string, len(t.Meta))
	for _, m := range t.Meta {
		meta[m.Key] = append(meta[m.Key], m.Value)
	}
	return meta
}

// TermMeta is one metadata entry attached to a term
type TermMeta struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	TermID uint   `json:"term_id" gorm:"index;not null"`
	Key    string `json:"key" gorm:"type:varchar(200);not null"`
	Value  string `json:"value" gorm:"type:text"`
}

// AttributeTaxonomy is a registered product attribute schema entry.
// The region and city taxonomies are ensured at startup.
type AttributeTaxonomy struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(100);unique;not null"`
	Type        string    `json:"type" gorm:"type:varchar(20);default:'select'"`
	OrderBy     string    `json:"order_by" gorm:"type:varchar(20);default:'name'"`
	HasArchives bool      `json:"has_archives" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
