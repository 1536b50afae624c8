package store

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// SupplierGormStore is the GORM-backed SupplierStore.
type SupplierGormStore struct {
	db *gorm.DB
}

func NewSupplierGormStore(db *gorm.DB) *SupplierGormStore {
	return &SupplierGormStore{db: db}
}

func (s *SupplierGormStore) List(ctx context.Context, f ListFilter) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	tx := f.apply(s.db.WithContext(ctx).Model(&model.Supplier{}))
	err := tx.Preload("Creator").Preload("Updater").
		Order("name asc").Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *SupplierGormStore) Find(ctx context.Context, id uint, scope Scope) (model.Supplier, error) {
	var sup model.Supplier
	tx := scope.apply(s.db.WithContext(ctx))
	err := tx.Preload("Creator").Preload("Updater").First(&sup, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return sup, nil
}

func (s *SupplierGormStore) Create(ctx context.Context, sup *model.Supplier) error {
	return s.db.WithContext(ctx).Create(sup).Error
}

func (s *SupplierGormStore) Update(ctx context.Context, sup *model.Supplier) error {
	res := s.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", sup.ID).
		Updates(map[string]interface{}{
			"name":          sup.Name,
			"image":         sup.Image,
			"description":   sup.Description,
			"contact_name":  sup.ContactName,
			"contact_email": sup.ContactEmail,
			"contact_phone": sup.ContactPhone,
			"address":       sup.Address,
			"notes":         sup.Notes,
			"updated_by":    sup.UpdatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SupplierGormStore) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Supplier{}).Where("id = ?", id).Updates(stamp)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&model.Supplier{}, id).Error
	})
}

func (s *SupplierGormStore) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	res := s.db.WithContext(ctx).Unscoped().Model(&model.Supplier{}).
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

func (s *SupplierGormStore) ForceDelete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Unscoped().Model(&model.Product{}).
			Where("supplier_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrInUse
		}
		res := tx.Unscoped().Delete(&model.Supplier{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *SupplierGormStore) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	var count int64
	tx := s.db.WithContext(ctx).Unscoped().Model(&model.Supplier{}).Where("name = ?", name)
	if excludeID != 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	err := tx.Count(&count).Error
	return count, err
}
