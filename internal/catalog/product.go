package catalog

import (
	"context"
	"strings"
	"time"

	"catalog-service/internal/model"
	"catalog-service/internal/store"
)

// ProductInput carries the editable product fields. Barcode is a pointer so
// "no barcode" round-trips as NULL and stays exempt from the uniqueness
// check.
type ProductInput struct {
	Name           string     `json:"name"`
	ImageURL       string     `json:"image_url"`
	Description    string     `json:"description"`
	PriceBuy       float64    `json:"price_buy"`
	PriceSell      float64    `json:"price_sell"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Stock          int        `json:"stock"`
	MinStock       int        `json:"min_stock"`
	DesStock       int        `json:"des_stock"`
	Barcode        *string    `json:"barcode"`
	CategoryID     uint       `json:"category_id"`
	BrandID        uint       `json:"brand_id"`
	SupplierID     uint       `json:"supplier_id"`
}

func (s *Service) ListProducts(ctx context.Context, f store.ListFilter) ([]model.Product, error) {
	return s.products.List(ctx, f)
}

func (s *Service) GetProduct(ctx context.Context, id uint, scope store.Scope) (model.Product, error) {
	return s.products.Find(ctx, id, scope)
}

// normalize folds an empty or blank barcode into NULL so it never occupies
// the unique barcode index.
func (in *ProductInput) normalize() {
	if in.Barcode != nil && strings.TrimSpace(*in.Barcode) == "" {
		in.Barcode = nil
	}
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput, actorID uint) (model.Product, error) {
	in.normalize()
	if err := s.validateProduct(ctx, in, 0); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Name:           in.Name,
		ImageURL:       in.ImageURL,
		Description:    in.Description,
		PriceBuy:       in.PriceBuy,
		PriceSell:      in.PriceSell,
		ExpirationDate: in.ExpirationDate,
		Stock:          in.Stock,
		MinStock:       in.MinStock,
		DesStock:       in.DesStock,
		Barcode:        in.Barcode,
		CategoryID:     in.CategoryID,
		BrandID:        in.BrandID,
		SupplierID:     in.SupplierID,
	}
	Stamp(OpCreate, actorID, &p.AuditFields)

	if err := s.products.Create(ctx, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uint, in ProductInput, actorID uint) (model.Product, error) {
	in.normalize()
	if err := s.validateProduct(ctx, in, id); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:             id,
		Name:           in.Name,
		ImageURL:       in.ImageURL,
		Description:    in.Description,
		PriceBuy:       in.PriceBuy,
		PriceSell:      in.PriceSell,
		ExpirationDate: in.ExpirationDate,
		Stock:          in.Stock,
		MinStock:       in.MinStock,
		DesStock:       in.DesStock,
		Barcode:        in.Barcode,
		CategoryID:     in.CategoryID,
		BrandID:        in.BrandID,
		SupplierID:     in.SupplierID,
	}
	Stamp(OpUpdate, actorID, &p.AuditFields)

	if err := s.products.Update(ctx, &p); err != nil {
		return model.Product{}, err
	}
	return s.products.Find(ctx, id, store.ScopeActive)
}

func (s *Service) SoftDeleteProduct(ctx context.Context, id uint, actorID uint) error {
	return s.products.SoftDelete(ctx, id, Patch(OpSoftDelete, actorID))
}

func (s *Service) RestoreProduct(ctx context.Context, id uint, actorID uint) error {
	return s.products.Restore(ctx, id, Patch(OpRestore, actorID))
}

func (s *Service) ForceDeleteProduct(ctx context.Context, id uint) error {
	return s.products.ForceDelete(ctx, id)
}

func (s *Service) validateProduct(ctx context.Context, in ProductInput, excludeID uint) error {
	if !validName(in.Name) {
		return invalid("name", "name is required")
	}
	if !validPrice(in.PriceBuy) {
		return invalid("price_buy", "must be between 0 and 999999.99")
	}
	if !validPrice(in.PriceSell) {
		return invalid("price_sell", "must be between 0 and 999999.99")
	}
	if in.Stock < 0 {
		return invalid("stock", "must not be negative")
	}
	if in.MinStock < 0 {
		return invalid("min_stock", "must not be negative")
	}
	if in.DesStock < 0 {
		return invalid("des_stock", "must not be negative")
	}

	// Category, brand and supplier must resolve to active rows; the stores
	// return ErrNotFound for trashed parents as well.
	if _, err := s.categories.Find(ctx, in.CategoryID, store.ScopeActive); err != nil {
		if err == store.ErrNotFound {
			return invalid("category_id", "category does not exist")
		}
		return err
	}
	if _, err := s.brands.Find(ctx, in.BrandID, store.ScopeActive); err != nil {
		if err == store.ErrNotFound {
			return invalid("brand_id", "brand does not exist")
		}
		return err
	}
	if _, err := s.suppliers.Find(ctx, in.SupplierID, store.ScopeActive); err != nil {
		if err == store.ErrNotFound {
			return invalid("supplier_id", "supplier does not exist")
		}
		return err
	}

	count, err := s.products.CountName(ctx, in.Name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return invalid("name", "name is already in use")
	}

	if in.Barcode != nil {
		count, err := s.products.CountBarcode(ctx, *in.Barcode, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return invalid("barcode", "barcode is already in use")
		}
	}
	return nil
}
