package store

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist or is
	// hidden by the requested soft-delete scope.
	ErrNotFound = errors.New("not found")

	// ErrInUse is returned when a hard delete is rejected because products
	// still reference the row.
	ErrInUse = errors.New("still referenced by products")
)

// Scope selects which rows a query sees with respect to soft deletion.
type Scope int

const (
	ScopeActive Scope = iota
	ScopeTrashed
	ScopeAll
)

// ParseScope maps the three-way status filter of the admin surface onto a
// Scope. Unknown values fall back to active, matching the default view.
func ParseScope(s string) Scope {
	switch s {
	case "trashed":
		return ScopeTrashed
	case "all":
		return ScopeAll
	default:
		return ScopeActive
	}
}

func (s Scope) apply(tx *gorm.DB) *gorm.DB {
	switch s {
	case ScopeTrashed:
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	case ScopeAll:
		return tx.Unscoped()
	default:
		return tx
	}
}

// ListFilter narrows list queries. Q matches against the entity name,
// CreatedBy/UpdatedBy filter on the audit columns.
type ListFilter struct {
	Scope     Scope
	Q         string
	CreatedBy *uint
	UpdatedBy *uint
}

func (f ListFilter) apply(tx *gorm.DB) *gorm.DB {
	tx = f.Scope.apply(tx)
	if f.Q != "" {
		tx = tx.Where("name ILIKE ?", "%"+f.Q+"%")
	}
	if f.CreatedBy != nil {
		tx = tx.Where("created_by = ?", *f.CreatedBy)
	}
	if f.UpdatedBy != nil {
		tx = tx.Where("updated_by = ?", *f.UpdatedBy)
	}
	return tx
}

// CategoryStore persists categories.
type CategoryStore interface {
	List(ctx context.Context, f ListFilter) ([]model.Category, error)
	Find(ctx context.Context, id uint, scope Scope) (model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error
	Restore(ctx context.Context, id uint, stamp map[string]interface{}) error
	ForceDelete(ctx context.Context, id uint) error
	CountName(ctx context.Context, name string, excludeID uint) (int64, error)
}

// BrandStore persists brands.
type BrandStore interface {
	List(ctx context.Context, f ListFilter) ([]model.Brand, error)
	Find(ctx context.Context, id uint, scope Scope) (model.Brand, error)
	Create(ctx context.Context, b *model.Brand) error
	Update(ctx context.Context, b *model.Brand) error
	SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error
	Restore(ctx context.Context, id uint, stamp map[string]interface{}) error
	ForceDelete(ctx context.Context, id uint) error
	CountName(ctx context.Context, name string, excludeID uint) (int64, error)
}

// SupplierStore persists suppliers.
type SupplierStore interface {
	List(ctx context.Context, f ListFilter) ([]model.Supplier, error)
	Find(ctx context.Context, id uint, scope Scope) (model.Supplier, error)
	Create(ctx context.Context, s *model.Supplier) error
	Update(ctx context.Context, s *model.Supplier) error
	SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error
	Restore(ctx context.Context, id uint, stamp map[string]interface{}) error
	ForceDelete(ctx context.Context, id uint) error
	CountName(ctx context.Context, name string, excludeID uint) (int64, error)
}

// ProductStore persists products.
type ProductStore interface {
	List(ctx context.Context, f ListFilter) ([]model.Product, error)
	Find(ctx context.Context, id uint, scope Scope) (model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error
	Restore(ctx context.Context, id uint, stamp map[string]interface{}) error
	ForceDelete(ctx context.Context, id uint) error
	CountName(ctx context.Context, name string, excludeID uint) (int64, error)
	CountBarcode(ctx context.Context, barcode string, excludeID uint) (int64, error)
}

// UserStore reads operator accounts.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Find(ctx context.Context, id uint) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
}
