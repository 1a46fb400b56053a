// Package permission holds the object-level access rules. Every predicate is
// a pure function of the acting user and the target record; the HTTP layer
// decides status codes, this package only answers allow/deny.
package permission

import "go-sales-network/internal/model"

// Operation is the kind of access being attempted on a single record.
type Operation int

const (
	OpRead Operation = iota
	OpWrite
	OpDelete
)

// CanList reports whether the user may list records of any resource type.
// Listing needs only an active account; the reduced list projections keep
// other users' details hidden.
func CanList(actor *model.User) bool {
	return actor != nil && actor.IsActive
}

// CanAccessContact applies the contact rules: read and write are owner-only,
// delete is owner or superuser.
func CanAccessContact(actor *model.User, op Operation, contact *model.Contact) bool {
	if actor == nil || !actor.IsActive {
		return false
	}
	isOwner := actor.ID == contact.OwnerID
	if op == OpDelete {
		return isOwner || actor.IsSuperuser
	}
	return isOwner
}

// CanAccessProduct applies the product rules, identical in shape to contacts.
func CanAccessProduct(actor *model.User, op Operation, product *model.Product) bool {
	if actor == nil || !actor.IsActive {
		return false
	}
	isOwner := actor.ID == product.OwnerID
	if op == OpDelete {
		return isOwner || actor.IsSuperuser
	}
	return isOwner
}

// CanAccessSale applies the sale rules. Read and write first cross-check that
// the referenced product and contact belong to the sale's owner; a mismatch
// denies everyone, including the owner. Delete follows the owner-or-superuser
// pattern without the cross-check.
func CanAccessSale(actor *model.User, op Operation, sale *model.Sale) bool {
	if actor == nil || !actor.IsActive {
		return false
	}
	isOwner := actor.ID == sale.OwnerID
	if op == OpDelete {
		return isOwner || actor.IsSuperuser
	}
	if sale.Product != nil && sale.Product.OwnerID != sale.OwnerID {
		return false
	}
	if sale.Contact != nil && sale.Contact.OwnerID != sale.OwnerID {
		return false
	}
	return isOwner
}
