package service

import (
	"context"
	"reflect"
	"testing"
)

func TestEnsureAttributeSchema(t *testing.T) {
	f := newFixture()

	if err := EnsureAttributeSchema(context.Background(), f.terms); err != nil {
		t.Fatalf("EnsureAttributeSchema: %v", err)
	}
	if !reflect.DeepEqual(f.terms.ensured, []string{"region", "city"}) {
		t.Errorf("ensured = %v, want [region city]", f.terms.ensured)
	}

	// Repeated runs must not register duplicates
	if err := EnsureAttributeSchema(context.Background(), f.terms); err != nil {
		t.Fatalf("EnsureAttributeSchema (repeat): %v", err)
	}
	if len(f.terms.ensured) != 2 {
		t.Errorf("ensured = %v, want no duplicates", f.terms.ensured)
	}
}
