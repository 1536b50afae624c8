package store

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// CategoryGormStore is the GORM-backed CategoryStore.
type CategoryGormStore struct {
	db *gorm.DB
}

func NewCategoryGormStore(db *gorm.DB) *CategoryGormStore {
	return &CategoryGormStore{db: db}
}

func (s *CategoryGormStore) List(ctx context.Context, f ListFilter) ([]model.Category, error) {
	var categories []model.Category
	tx := f.apply(s.db.WithContext(ctx).Model(&model.Category{}))
	err := tx.Preload("Creator").Preload("Updater").
		Order("name asc").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryGormStore) Find(ctx context.Context, id uint, scope Scope) (model.Category, error) {
	var c model.Category
	tx := scope.apply(s.db.WithContext(ctx))
	err := tx.Preload("Creator").Preload("Updater").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (s *CategoryGormStore) Create(ctx context.Context, c *model.Category) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *CategoryGormStore) Update(ctx context.Context, c *model.Category) error {
	res := s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":        c.Name,
			"image":       c.Image,
			"description": c.Description,
			"updated_by":  c.UpdatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete stamps the audit columns and marks the row deleted in one
// transaction so no partially-stamped row can be observed.
func (s *CategoryGormStore) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Category{}).Where("id = ?", id).Updates(stamp)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&model.Category{}, id).Error
	})
}

func (s *CategoryGormStore) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	res := s.db.WithContext(ctx).Unscoped().Model(&model.Category{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(restorePatch(stamp))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ForceDelete physically removes the row. It is rejected while any product,
// active or trashed, still references the category.
func (s *CategoryGormStore) ForceDelete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Unscoped().Model(&model.Product{}).
			Where("category_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrInUse
		}
		res := tx.Unscoped().Delete(&model.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CountName counts rows holding the given name, trashed rows included, so
// uniqueness matches the table-wide constraint.
func (s *CategoryGormStore) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	var count int64
	tx := s.db.WithContext(ctx).Unscoped().Model(&model.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	err := tx.Count(&count).Error
	return count, err
}

// restorePatch extends the audit stamp with the column reset that undoes the
// soft delete.
func restorePatch(stamp map[string]interface{}) map[string]interface{} {
	patch := map[string]interface{}{"deleted_at": nil}
	for k, v := range stamp {
		patch[k] = v
	}
	return patch
}
