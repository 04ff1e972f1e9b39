// Package authz decides whether a user's role allows an operation on a
// resource kind. Decisions are pure lookups against an immutable
// role→permission table plus three role-specific override rules that are
// always evaluated before the table. The package never returns errors;
// callers translate a false into an authorization failure.
package authz

import "github.com/medlmo/gcpRSM/internal/model"

// ResourceKind identifies a permission-gated entity kind. The set is
// closed: a kind outside this enumeration never receives a grant.
type ResourceKind string

// Canonical resource kinds (snake_case identifiers).
const (
	KindTender       ResourceKind = "tender"
	KindSupplier     ResourceKind = "supplier"
	KindBid          ResourceKind = "bid"
	KindContract     ResourceKind = "contract"
	KindServiceOrder ResourceKind = "service_order"
	KindAmendment    ResourceKind = "amendment"
	KindInvoice      ResourceKind = "invoice"
)

// ResourceKinds lists every permission-gated kind.
var ResourceKinds = []ResourceKind{
	KindTender, KindSupplier, KindBid, KindContract,
	KindServiceOrder, KindAmendment, KindInvoice,
}

// Action is a mutating operation on a resource kind.
type Action string

// Actions.
const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Permission is a single grantable capability.
type Permission string

// Administrative permissions.
const (
	PermViewAdmin      Permission = "view_admin"
	PermManageUsers    Permission = "manage_users"
	PermManageSettings Permission = "manage_settings"
)

// Perm builds the resource permission for an action on a kind,
// e.g. Perm(ActionAdd, KindTender) == "add_tender".
func Perm(action Action, kind ResourceKind) Permission {
	return Permission(string(action) + "_" + string(kind))
}

// Policy holds the role→permission table. It is built once at process
// start and never mutated afterwards; inject an alternate table in tests
// via NewPolicyFromTable.
type Policy struct {
	grants map[string]map[Permission]struct{}
}

// DefaultTable returns the production role→permission mapping.
func DefaultTable() map[string][]Permission {
	allResource := make([]Permission, 0, 3*len(ResourceKinds))
	for _, action := range []Action{ActionAdd, ActionEdit, ActionDelete} {
		for _, kind := range ResourceKinds {
			allResource = append(allResource, Perm(action, kind))
		}
	}

	return map[string][]Permission{
		model.RoleAdmin: append([]Permission{
			PermViewAdmin, PermManageUsers, PermManageSettings,
		}, allResource...),
		model.RoleMarchesManager: {
			Perm(ActionAdd, KindTender),
			Perm(ActionAdd, KindSupplier),
			Perm(ActionAdd, KindBid),
			Perm(ActionAdd, KindContract),
			Perm(ActionAdd, KindServiceOrder),
			Perm(ActionAdd, KindAmendment),
			Perm(ActionEdit, KindTender),
			Perm(ActionEdit, KindSupplier),
			Perm(ActionEdit, KindBid),
			Perm(ActionEdit, KindContract),
			Perm(ActionEdit, KindServiceOrder),
			Perm(ActionEdit, KindAmendment),
			Perm(ActionEdit, KindInvoice),
			Perm(ActionDelete, KindTender),
			Perm(ActionDelete, KindSupplier),
			Perm(ActionDelete, KindBid),
		},
		model.RoleTechnicalService: {
			Perm(ActionAdd, KindServiceOrder),
			Perm(ActionAdd, KindAmendment),
			Perm(ActionAdd, KindInvoice),
			Perm(ActionEdit, KindServiceOrder),
			Perm(ActionEdit, KindAmendment),
			Perm(ActionEdit, KindInvoice),
		},
		model.RoleOrdonnateur: {},
	}
}

// NewPolicy builds the policy from the default table.
func NewPolicy() *Policy {
	return NewPolicyFromTable(DefaultTable())
}

// NewPolicyFromTable builds a policy from an explicit table.
func NewPolicyFromTable(table map[string][]Permission) *Policy {
	grants := make(map[string]map[Permission]struct{}, len(table))
	for role, perms := range table {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		grants[role] = set
	}
	return &Policy{grants: grants}
}

// HasPermission reports whether the user's role carries the permission.
// A nil user or an unknown role carries nothing.
func (p *Policy) HasPermission(user *model.User, perm Permission) bool {
	if user == nil {
		return false
	}
	set, ok := p.grants[user.Role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// Can reports whether the user may perform action on kind.
//
// The override rules run before the table and take precedence:
//  1. ordonnateur is read-only: every add/edit/delete is denied;
//  2. technical_service may only touch execution resources
//     (service_order, amendment, invoice); any other kind is denied
//     even where the table would grant it;
//  3. marches_manager may never add invoices.
//
// Only then is the permission table consulted.
func (p *Policy) Can(user *model.User, action Action, kind ResourceKind) bool {
	if user == nil {
		return false
	}

	if user.Role == model.RoleOrdonnateur {
		return false
	}

	if user.Role == model.RoleTechnicalService && !isExecutionKind(kind) {
		return false
	}

	if user.Role == model.RoleMarchesManager && action == ActionAdd && kind == KindInvoice {
		return false
	}

	return p.HasPermission(user, Perm(action, kind))
}

// CanAdd reports whether the user may create resources of the kind.
func (p *Policy) CanAdd(user *model.User, kind ResourceKind) bool {
	return p.Can(user, ActionAdd, kind)
}

// CanEdit reports whether the user may edit resources of the kind.
func (p *Policy) CanEdit(user *model.User, kind ResourceKind) bool {
	return p.Can(user, ActionEdit, kind)
}

// CanDelete reports whether the user may delete resources of the kind.
func (p *Policy) CanDelete(user *model.User, kind ResourceKind) bool {
	return p.Can(user, ActionDelete, kind)
}

// CanAccessAdmin reports whether the user may view the administrative
// section.
func (p *Policy) CanAccessAdmin(user *model.User) bool {
	return p.HasPermission(user, PermViewAdmin)
}

func isExecutionKind(kind ResourceKind) bool {
	switch kind {
	case KindServiceOrder, KindAmendment, KindInvoice:
		return true
	}
	return false
}
