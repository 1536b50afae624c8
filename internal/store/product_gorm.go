package store

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// ProductGormStore is the GORM-backed ProductStore. Listing and lookup
// preload the category, brand, supplier and audit users so the admin surface
// gets resolved names in one round trip.
type ProductGormStore struct {
	db *gorm.DB
}

func NewProductGormStore(db *gorm.DB) *ProductGormStore {
	return &ProductGormStore{db: db}
}

func (s *ProductGormStore) List(ctx context.Context, f ListFilter) ([]model.Product, error) {
	var products []model.Product
	tx := f.apply(s.db.WithContext(ctx).Model(&model.Product{}))
	err := tx.Preload("Category").Preload("Brand").Preload("Supplier").
		Preload("Creator").Preload("Updater").
		Order("name asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductGormStore) Find(ctx context.Context, id uint, scope Scope) (model.Product, error) {
	var p model.Product
	tx := scope.apply(s.db.WithContext(ctx))
	err := tx.Preload("Category").Preload("Brand").Preload("Supplier").
		Preload("Creator").Preload("Updater").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *ProductGormStore) Create(ctx context.Context, p *model.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *ProductGormStore) Update(ctx context.Context, p *model.Product) error {
	res := s.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":            p.Name,
			"image_url":       p.ImageURL,
			"description":     p.Description,
			"price_buy":       p.PriceBuy,
			"price_sell":      p.PriceSell,
			"expiration_date": p.ExpirationDate,
			"stock":           p.Stock,
			"min_stock":       p.MinStock,
			"des_stock":       p.DesStock,
			"barcode":         p.Barcode,
			"category_id":     p.CategoryID,
			"brand_id":        p.BrandID,
			"supplier_id":     p.SupplierID,
			"updated_by":      p.UpdatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductGormStore) SoftDelete(ctx context.Context, id uint, stamp map[string]interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).Where("id = ?", id).Updates(stamp)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&model.Product{}, id).Error
	})
}

func (s *ProductGormStore) Restore(ctx context.Context, id uint, stamp map[string]interface{}) error {
	res := s.db.WithContext(ctx).Unscoped().Model(&model.Product{}).
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

// ForceDelete physically removes the product. Nothing references products,
// so no integrity check is needed here.
func (s *ProductGormStore) ForceDelete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductGormStore) CountName(ctx context.Context, name string, excludeID uint) (int64, error) {
	var count int64
	tx := s.db.WithContext(ctx).Unscoped().Model(&model.Product{}).Where("name = ?", name)
	if excludeID != 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	err := tx.Count(&count).Error
	return count, err
}

func (s *ProductGormStore) CountBarcode(ctx context.Context, barcode string, excludeID uint) (int64, error) {
	var count int64
	tx := s.db.WithContext(ctx).Unscoped().Model(&model.Product{}).Where("barcode = ?", barcode)
	if excludeID != 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	err := tx.Count(&count).Error
	return count, err
}
