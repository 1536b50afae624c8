package catalog_test

import (
	"context"
	"testing"

	"catalog-service/internal/catalog"
	"catalog-service/internal/model"
	"catalog-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validProductInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:       "Espresso Beans 1kg",
		PriceBuy:   8.50,
		PriceSell:  12.90,
		Stock:      40,
		MinStock:   10,
		DesStock:   60,
		CategoryID: 1,
		BrandID:    2,
		SupplierID: 3,
	}
}

// expectActiveParents wires the three parent lookups the validator performs.
func expectActiveParents(st *testStores) {
	st.categories.On("Find", mock.Anything, uint(1), store.ScopeActive).Return(model.Category{ID: 1}, nil)
	st.brands.On("Find", mock.Anything, uint(2), store.ScopeActive).Return(model.Brand{ID: 2}, nil)
	st.suppliers.On("Find", mock.Anything, uint(3), store.ScopeActive).Return(model.Supplier{ID: 3}, nil)
}

func TestCreateProduct_NameRequired(t *testing.T) {
	svc, _ := newTestService()

	in := validProductInput()
	in.Name = ""

	_, err := svc.CreateProduct(context.Background(), in, 1)
	assertValidationError(t, err, "name")
}

func TestCreateProduct_PriceOutOfRange(t *testing.T) {
	svc, _ := newTestService()

	in := validProductInput()
	in.PriceBuy = -1

	_, err := svc.CreateProduct(context.Background(), in, 1)
	assertValidationError(t, err, "price_buy")

	in = validProductInput()
	in.PriceSell = 1000000

	_, err = svc.CreateProduct(context.Background(), in, 1)
	assertValidationError(t, err, "price_sell")
}

func TestCreateProduct_NegativeStockLevels(t *testing.T) {
	svc, _ := newTestService()

	for field, mutate := range map[string]func(*catalog.ProductInput){
		"stock":     func(in *catalog.ProductInput) { in.Stock = -1 },
		"min_stock": func(in *catalog.ProductInput) { in.MinStock = -1 },
		"des_stock": func(in *catalog.ProductInput) { in.DesStock = -1 },
	} {
		in := validProductInput()
		mutate(&in)

		_, err := svc.CreateProduct(context.Background(), in, 1)
		assertValidationError(t, err, field)
	}
}

func TestCreateProduct_MissingCategory(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("Find", mock.Anything, uint(1), store.ScopeActive).
		Return(model.Category{}, store.ErrNotFound)

	_, err := svc.CreateProduct(context.Background(), validProductInput(), 1)
	assertValidationError(t, err, "category_id")
}

func TestCreateProduct_TrashedBrandRejected(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("Find", mock.Anything, uint(1), store.ScopeActive).Return(model.Category{ID: 1}, nil)
	// trashed rows are invisible in the active scope
	st.brands.On("Find", mock.Anything, uint(2), store.ScopeActive).
		Return(model.Brand{}, store.ErrNotFound)

	_, err := svc.CreateProduct(context.Background(), validProductInput(), 1)
	assertValidationError(t, err, "brand_id")
}

func TestCreateProduct_MissingSupplier(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("Find", mock.Anything, uint(1), store.ScopeActive).Return(model.Category{ID: 1}, nil)
	st.brands.On("Find", mock.Anything, uint(2), store.ScopeActive).Return(model.Brand{ID: 2}, nil)
	st.suppliers.On("Find", mock.Anything, uint(3), store.ScopeActive).
		Return(model.Supplier{}, store.ErrNotFound)

	_, err := svc.CreateProduct(context.Background(), validProductInput(), 1)
	assertValidationError(t, err, "supplier_id")
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(0)).Return(int64(1), nil)

	_, err := svc.CreateProduct(context.Background(), validProductInput(), 1)
	assertValidationError(t, err, "name")
}

func TestCreateProduct_DuplicateBarcode(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(0)).Return(int64(0), nil)
	st.products.On("CountBarcode", mock.Anything, "8412345678905", uint(0)).Return(int64(1), nil)

	in := validProductInput()
	barcode := "8412345678905"
	in.Barcode = &barcode

	_, err := svc.CreateProduct(context.Background(), in, 1)
	assertValidationError(t, err, "barcode")
}

func TestCreateProduct_EmptyBarcodeStoredAsNull(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(0)).Return(int64(0), nil)
	// an empty barcode must never reach the unique index as ""
	st.products.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Barcode == nil
	})).Return(nil)

	in := validProductInput()
	empty := "  "
	in.Barcode = &empty

	_, err := svc.CreateProduct(context.Background(), in, 1)
	assert.NoError(t, err)

	st.products.AssertNotCalled(t, "CountBarcode", mock.Anything, mock.Anything, mock.Anything)
	st.products.AssertExpectations(t)
}

func TestUpdateProduct_EmptyBarcodeStoredAsNull(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(42)).Return(int64(0), nil)
	st.products.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.ID == 42 && p.Barcode == nil
	})).Return(nil)
	st.products.On("Find", mock.Anything, uint(42), store.ScopeActive).
		Return(model.Product{ID: 42}, nil)

	in := validProductInput()
	empty := ""
	in.Barcode = &empty

	_, err := svc.UpdateProduct(context.Background(), 42, in, 1)
	assert.NoError(t, err)

	st.products.AssertNotCalled(t, "CountBarcode", mock.Anything, mock.Anything, mock.Anything)
	st.products.AssertExpectations(t)
}

func TestCreateProduct_NilBarcodeSkipsUniquenessCheck(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(0)).Return(int64(0), nil)
	st.products.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Barcode == nil
	})).Return(nil)

	_, err := svc.CreateProduct(context.Background(), validProductInput(), 1)
	assert.NoError(t, err)

	// CountBarcode must never have been called
	st.products.AssertNotCalled(t, "CountBarcode", mock.Anything, mock.Anything, mock.Anything)
	st.products.AssertExpectations(t)
}

func TestCreateProduct_StampsCreator(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(0)).Return(int64(0), nil)
	st.products.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.CreatedBy != nil && *p.CreatedBy == 7 &&
			p.UpdatedBy != nil && *p.UpdatedBy == 7 &&
			p.CategoryID == 1 && p.BrandID == 2 && p.SupplierID == 3
	})).Return(nil)

	_, err := svc.CreateProduct(context.Background(), validProductInput(), 7)
	assert.NoError(t, err)

	st.products.AssertExpectations(t)
}

func TestUpdateProduct_ExcludesSelfFromUniqueness(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(42)).Return(int64(0), nil)
	st.products.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.ID == 42 && p.CreatedBy == nil &&
			p.UpdatedBy != nil && *p.UpdatedBy == 9
	})).Return(nil)
	st.products.On("Find", mock.Anything, uint(42), store.ScopeActive).
		Return(model.Product{ID: 42, Name: "Espresso Beans 1kg"}, nil)

	p, err := svc.UpdateProduct(context.Background(), 42, validProductInput(), 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), p.ID)

	st.products.AssertExpectations(t)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc, st := newTestService()

	expectActiveParents(st)
	st.products.On("CountName", mock.Anything, "Espresso Beans 1kg", uint(99)).Return(int64(0), nil)
	st.products.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).
		Return(store.ErrNotFound)

	_, err := svc.UpdateProduct(context.Background(), 99, validProductInput(), 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSoftDeleteProduct_StampsUpdaterOnly(t *testing.T) {
	svc, st := newTestService()

	st.products.On("SoftDelete", mock.Anything, uint(42), map[string]interface{}{"updated_by": uint(3)}).
		Return(nil)

	err := svc.SoftDeleteProduct(context.Background(), 42, 3)
	assert.NoError(t, err)

	st.products.AssertExpectations(t)
}

func TestForceDeleteProduct_NoReferentialCheck(t *testing.T) {
	svc, st := newTestService()

	st.products.On("ForceDelete", mock.Anything, uint(42)).Return(nil)

	err := svc.ForceDeleteProduct(context.Background(), 42)
	assert.NoError(t, err)

	st.products.AssertExpectations(t)
}
