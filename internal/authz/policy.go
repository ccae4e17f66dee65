// Package authz declares the authorization policy table. Every resource
// operation maps to the capability an authenticated dealer must carry.
// Ownership checks on dealer writes are enforced per-operation in the
// service layer, not here.
package authz

// CapManageCatalog gates every resource of the dashboard API
const CapManageCatalog = "manage_catalog"

// Resource and action names used as policy keys
const (
	ResourceBrands   = "brands"
	ResourceProducts = "products"
	ResourceDealer   = "dealer"

	ActionList    = "list"
	ActionGet     = "get"
	ActionProfile = "profile"
	ActionCreate  = "create"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
)

// Operation identifies one resource operation
type Operation struct {
	Resource string
	Action   string
}

// Policy names the capability required for an operation and whether the
// operation is additionally scoped to records owned by the actor
type Policy struct {
	Capability  string
	OwnerScoped bool
}

var table = map[Operation]Policy{
	{ResourceBrands, ActionList}:    {Capability: CapManageCatalog},
	{ResourceBrands, ActionGet}:     {Capability: CapManageCatalog},
	{ResourceProducts, ActionList}:  {Capability: CapManageCatalog},
	{ResourceProducts, ActionGet}:   {Capability: CapManageCatalog},
	{ResourceDealer, ActionProfile}: {Capability: CapManageCatalog},
	{ResourceDealer, ActionList}:    {Capability: CapManageCatalog},
	{ResourceDealer, ActionGet}:     {Capability: CapManageCatalog},
	{ResourceDealer, ActionCreate}:  {Capability: CapManageCatalog},
	{ResourceDealer, ActionEdit}:    {Capability: CapManageCatalog, OwnerScoped: true},
	{ResourceDealer, ActionDelete}:  {Capability: CapManageCatalog, OwnerScoped: true},
}

// Lookup returns the policy for a resource operation
func Lookup(resource, action string) (Policy, bool) {
	policy, ok := table[Operation{Resource: resource, Action: action}]
	return policy, ok
}

// Allowed reports whether the capability set satisfies the policy
func Allowed(policy Policy, capabilities []string) bool {
	for _, c := range capabilities {
		if c == policy.Capability {
			return true
		}
	}
	return false
}
