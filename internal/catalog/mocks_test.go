package catalog_test

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/internal/store"

	"github.com/stretchr/testify/mock"
)

type CategoryStoreMock struct{ mock.Mock }

func (m *CategoryStoreMock) List(ctx context.Context, f store.ListFilter) ([]model.Category, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryStoreMock) Find(ctx context.Context, id uint, scope store.Scope) (model.Category, error) {
	args := m.Called(ctx, id, scope)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryStoreMock) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryStoreMock) Update(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryStoreMock) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *CategoryStoreMock) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *CategoryStoreMock) ForceDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryStoreMock) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

type BrandStoreMock struct{ mock.Mock }

func (m *BrandStoreMock) List(ctx context.Context, f store.ListFilter) ([]model.Brand, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Brand)
	return items, args.Error(1)
}

func (m *BrandStoreMock) Find(ctx context.Context, id uint, scope store.Scope) (model.Brand, error) {
	args := m.Called(ctx, id, scope)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *BrandStoreMock) Create(ctx context.Context, b *model.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BrandStoreMock) Update(ctx context.Context, b *model.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BrandStoreMock) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *BrandStoreMock) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *BrandStoreMock) ForceDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BrandStoreMock) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

type SupplierStoreMock struct{ mock.Mock }

func (m *SupplierStoreMock) List(ctx context.Context, f store.ListFilter) ([]model.Supplier, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Supplier)
	return items, args.Error(1)
}

func (m *SupplierStoreMock) Find(ctx context.Context, id uint, scope store.Scope) (model.Supplier, error) {
	args := m.Called(ctx, id, scope)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *SupplierStoreMock) Create(ctx context.Context, s *model.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SupplierStoreMock) Update(ctx context.Context, s *model.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SupplierStoreMock) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *SupplierStoreMock) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *SupplierStoreMock) ForceDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SupplierStoreMock) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

type ProductStoreMock struct{ mock.Mock }

func (m *ProductStoreMock) List(ctx context.Context, f store.ListFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductStoreMock) Find(ctx context.Context, id uint, scope store.Scope) (model.Product, error) {
	args := m.Called(ctx, id, scope)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductStoreMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductStoreMock) Update(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductStoreMock) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *ProductStoreMock) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	args := m.Called(ctx, id, stamp)
	return args.Error(0)
}

func (m *ProductStoreMock) ForceDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductStoreMock) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductStoreMock) CountBarcode(ctx context.Context, barcode string, excludeID uint) (int64, error) {
	args := m.Called(ctx, barcode, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

type UserStoreMock struct{ mock.Mock }

func (m *UserStoreMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *UserStoreMock) Find(ctx context.Context, id uint) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserStoreMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}
