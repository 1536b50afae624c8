package store

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// BrandGormStore is the GORM-backed BrandStore.
type BrandGormStore struct {
	db *gorm.DB
}

func NewBrandGormStore(db *gorm.DB) *BrandGormStore {
	return &BrandGormStore{db: db}
}

func (s *BrandGormStore) List(ctx context.Context, f ListFilter) ([]model.Brand, error) {
	var brands []model.Brand
	tx := f.apply(s.db.WithContext(ctx).Model(&model.Brand{}))
	err := tx.Preload("Creator").Preload("Updater").
		Order("name asc").Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *BrandGormStore) Find(ctx context.Context, id uint, scope Scope) (model.Brand, error) {
	var b model.Brand
	tx := scope.apply(s.db.WithContext(ctx))
	err := tx.Preload("Creator").Preload("Updater").First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Brand{}, ErrNotFound
	}
	if err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (s *BrandGormStore) Create(ctx context.Context, b *model.Brand) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *BrandGormStore) Update(ctx context.Context, b *model.Brand) error {
	res := s.db.WithContext(ctx).Model(&model.Brand{}).Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"name":        b.Name,
			"image":       b.Image,
			"description": b.Description,
			"updated_by":  b.UpdatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BrandGormStore) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Brand{}).Where("id = ?", id).Updates(stamp)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&model.Brand{}, id).Error
	})
}

func (s *BrandGormStore) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	res := s.db.WithContext(ctx).Unscoped().Model(&model.Brand{}).
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

func (s *BrandGormStore) ForceDelete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Unscoped().Model(&model.Product{}).
			Where("brand_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrInUse
		}
		res := tx.Unscoped().Delete(&model.Brand{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *BrandGormStore) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	var count int64
	tx := s.db.WithContext(ctx).Unscoped().Model(&model.Brand{}).Where("name = ?", name)
	if excludeID != 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	err := tx.Count(&count).Error
	return count, err
}
