package authz

import "testing"

func TestLookupCoversEveryOperation(t *testing.T) {
	operations := []Operation{
		{ResourceBrands, ActionList},
		{ResourceBrands, ActionGet},
		{ResourceProducts, ActionList},
		{ResourceProducts, ActionGet},
		{ResourceDealer, ActionProfile},
		{ResourceDealer, ActionList},
		{ResourceDealer, ActionGet},
		{ResourceDealer, ActionCreate},
		{ResourceDealer, ActionEdit},
		{ResourceDealer, ActionDelete},
	}

	for _, op := range operations {
		policy, ok := Lookup(op.Resource, op.Action)
		if !ok {
			t.Errorf("no policy for %s/%s", op.Resource, op.Action)
			continue
		}
		if policy.Capability != CapManageCatalog {
			t.Errorf("%s/%s capability = %q, want %q", op.Resource, op.Action, policy.Capability, CapManageCatalog)
		}
	}
}

func TestLookupUnknownOperation(t *testing.T) {
	if _, ok := Lookup("orders", ActionList); ok {
		t.Error("unexpected policy for unregistered resource")
	}
}

func TestDealerWritesAreOwnerScoped(t *testing.T) {
	for _, action := range []string{ActionEdit, ActionDelete} {
		policy, _ := Lookup(ResourceDealer, action)
		if !policy.OwnerScoped {
			t.Errorf("dealer/%s should be owner scoped", action)
		}
	}
	policy, _ := Lookup(ResourceDealer, ActionGet)
	if policy.OwnerScoped {
		t.Error("dealer/get must not be owner scoped: reads are owner-transparent")
	}
}

func TestAllowed(t *testing.T) {
	policy := Policy{Capability: CapManageCatalog}

	if !Allowed(policy, []string{"something_else", CapManageCatalog}) {
		t.Error("capability present but denied")
	}
	if Allowed(policy, []string{"something_else"}) {
		t.Error("capability absent but allowed")
	}
	if Allowed(policy, nil) {
		t.Error("empty capability set but allowed")
	}
}
