package catalog_test

import (
	"testing"

	"catalog-service/internal/catalog"

	"github.com/stretchr/testify/assert"
)

type testStores struct {
	categories *CategoryStoreMock
	brands     *BrandStoreMock
	suppliers  *SupplierStoreMock
	products   *ProductStoreMock
	users      *UserStoreMock
}

func newTestService() (*catalog.Service, *testStores) {
	st := &testStores{
		categories: new(CategoryStoreMock),
		brands:     new(BrandStoreMock),
		suppliers:  new(SupplierStoreMock),
		products:   new(ProductStoreMock),
		users:      new(UserStoreMock),
	}
	svc := catalog.NewService(st.categories, st.brands, st.suppliers, st.products, st.users)
	return svc, st
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	ve, ok := catalog.AsValidationError(err)
	if assert.True(t, ok, "expected a validation error, got %v", err) {
		assert.Equal(t, field, ve.Field)
	}
}
