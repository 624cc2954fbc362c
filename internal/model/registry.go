package model

import (
	"github.com/google/uuid"

	"github.com/lifesim/life-simulator/internal/finance"
)

// Owner identifies the holder of registered financial entities. The key
// is a stable identity assigned at construction, never derived from
// mutable fields.
type Owner interface {
	OwnerID() uuid.UUID
}

// Registry is an owner-keyed multimap of financial entities.
// Registration order is preserved and semantically significant: it
// determines draw order during settlement.
type Registry[T any] struct {
	items map[uuid.UUID][]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[uuid.UUID][]T)}
}

// Register appends an item to the owner's list.
func (r *Registry[T]) Register(owner Owner, item T) {
	key := owner.OwnerID()
	r.items[key] = append(r.items[key], item)
}

// Unregister removes an item from the owner's list. It reports whether
// the item was found.
func (r *Registry[T]) Unregister(owner Owner, item T) bool {
	key := owner.OwnerID()
	list := r.items[key]
	for i, existing := range list {
		if any(existing) == any(item) {
			r.items[key] = append(list[:i:i], list[i+1:]...)
			if len(r.items[key]) == 0 {
				delete(r.items, key)
			}
			return true
		}
	}
	return false
}

// Items returns the owner's items in registration order.
func (r *Registry[T]) Items(owner Owner) []T {
	return r.items[owner.OwnerID()]
}

// Clear removes all items for the owner.
func (r *Registry[T]) Clear(owner Owner) {
	delete(r.items, owner.OwnerID())
}

// Registries holds the per-concern registries of a model. People
// discover their financial entities here instead of carrying lists.
type Registries struct {
	BankAccounts       *Registry[finance.BalanceBearing]
	RetirementAccounts *Registry[finance.DualBalance]
	Jobs               *Registry[finance.Employment]
	Homes              *Registry[finance.Housing]
	Apartments         *Registry[finance.Rental]
	Loans              *Registry[finance.Loan]
	Benefits           *Registry[finance.Benefit]
}

// NewRegistries creates the empty registry set.
func NewRegistries() *Registries {
	return &Registries{
		BankAccounts:       NewRegistry[finance.BalanceBearing](),
		RetirementAccounts: NewRegistry[finance.DualBalance](),
		Jobs:               NewRegistry[finance.Employment](),
		Homes:              NewRegistry[finance.Housing](),
		Apartments:         NewRegistry[finance.Rental](),
		Loans:              NewRegistry[finance.Loan](),
		Benefits:           NewRegistry[finance.Benefit](),
	}
}

// ClearAll removes every registered entity for an owner.
func (r *Registries) ClearAll(owner Owner) {
	r.BankAccounts.Clear(owner)
	r.RetirementAccounts.Clear(owner)
	r.Jobs.Clear(owner)
	r.Homes.Clear(owner)
	r.Apartments.Clear(owner)
	r.Loans.Clear(owner)
	r.Benefits.Clear(owner)
}
