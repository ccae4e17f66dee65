package service

import (
	"time"

	"finder-service/internal/model"
)

// AttachmentResolver resolves a media reference to its public URL.
// The second return value is false when the reference cannot be resolved.
type AttachmentResolver func(id uint) (string, bool)

// TermRef is the externally-visible shape of a term tag on a product
type TermRef struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// AttributeView is the externally-visible shape of one attribute entry
type AttributeView struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Visible  bool     `json:"visible"`
	Options  []string `json:"options"`
}

// ProductView is the externally-visible shape of a product record
type ProductView struct {
	ID               uint                     `json:"id"`
	Kind             string                   `json:"kind"`
	Status           string                   `json:"status"`
	SKU              string                   `json:"sku"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	ShortDescription string                   `json:"short_description"`
	RegularPrice     string                   `json:"regular_price"`
	ParentID         *uint                    `json:"parent_id,omitempty"`
	OwnerID          uint                     `json:"owner_id"`
	Image            *string                  `json:"image"`
	Gallery          []string                 `json:"gallery"`
	Attributes       map[string]AttributeView `json:"attributes"`
	Terms            map[string][]TermRef     `json:"terms"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// ShapeProduct maps a raw product record to its response shape. Returns
// nil for a nil source record; callers translate that to a not-found
// error. Gallery references that fail to resolve are skipped, a failed
// image reference yields a null image.
func ShapeProduct(p *model.Product, resolve AttachmentResolver) *ProductView {
	if p == nil {
		return nil
	}

	view := &ProductView{
		ID:               p.ID,
		Kind:             p.Kind,
		Status:           p.Status,
		SKU:              p.SKU,
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		RegularPrice:     p.RegularPrice.StringFixed(2),
		ParentID:         p.ParentID,
		OwnerID:          p.OwnerID,
		Gallery:          []string{},
		Attributes:       make(map[string]AttributeView, len(p.Attributes)),
		Terms:            make(map[string][]TermRef),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	if p.ImageID != nil {
		if url, ok := resolve(*p.ImageID); ok {
			view.Image = &url
		}
	}
	for _, id := range p.GalleryImageIDs {
		if url, ok := resolve(id); ok {
			view.Gallery = append(view.Gallery, url)
		}
	}

	for _, a := range p.Attributes {
		options := a.Options
		if options == nil {
			options = []string{}
		}
		view.Attributes[a.Key] = AttributeView{
			ID:       a.ID,
			Name:     a.Name,
			Position: a.Position,
			Visible:  a.Visible,
			Options:  options,
		}
	}

	for _, t := range p.Terms {
		view.Terms[t.Taxonomy] = append(view.Terms[t.Taxonomy], TermRef{
			ID:   t.ID,
			Slug: t.Slug,
			Name: t.Name,
		})
	}

	return view
}
