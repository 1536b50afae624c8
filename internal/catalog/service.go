// Package catalog is the service layer of the admin back-office: it composes
// the entity stores with the shared audit stamping policy and the input
// validation rules. Every mutating operation takes the acting user's id as an
// explicit argument; nothing in this package reads the actor from ambient
// state.
package catalog

import (
	"catalog-service/internal/store"
)

// Service exposes the catalog operations consumed by the admin surface.
type Service struct {
	categories store.CategoryStore
	brands     store.BrandStore
	suppliers  store.SupplierStore
	products   store.ProductStore
	users      store.UserStore
}

func NewService(
	categories store.CategoryStore,
	brands store.BrandStore,
	suppliers store.SupplierStore,
	products store.ProductStore,
	users store.UserStore,
) *Service {
	return &Service{
		categories: categories,
		brands:     brands,
		suppliers:  suppliers,
		products:   products,
		users:      users,
	}
}
