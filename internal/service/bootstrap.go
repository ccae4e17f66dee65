package service

import (
	"context"

	"finder-service/internal/repository"
)

// EnsureAttributeSchema registers the region and city attribute
// taxonomies. Runs once at startup; repeated calls are no-ops.
func EnsureAttributeSchema(ctx context.Context, terms repository.TermRepository) error {
	if err := terms.EnsureAttributeTaxonomy(ctx, "region", "region"); err != nil {
		return err
	}
	return terms.EnsureAttributeTaxonomy(ctx, "city", "city")
}
