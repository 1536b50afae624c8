package catalog

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/internal/store"
)

// BrandInput carries the editable brand fields.
type BrandInput struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (s *Service) ListBrands(ctx context.Context, f store.ListFilter) ([]model.Brand, error) {
	return s.brands.List(ctx, f)
}

func (s *Service) GetBrand(ctx context.Context, id uint, scope store.Scope) (model.Brand, error) {
	return s.brands.Find(ctx, id, scope)
}

func (s *Service) CreateBrand(ctx context.Context, in BrandInput, actorID uint) (model.Brand, error) {
	if err := s.validateBrand(ctx, in, 0); err != nil {
		return model.Brand{}, err
	}

	b := model.Brand{
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
	}
	Stamp(OpCreate, actorID, &b.AuditFields)

	if err := s.brands.Create(ctx, &b); err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (s *Service) UpdateBrand(ctx context.Context, id uint, in BrandInput, actorID uint) (model.Brand, error) {
	if err := s.validateBrand(ctx, in, id); err != nil {
		return model.Brand{}, err
	}

	b := model.Brand{
		ID:          id,
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
	}
	Stamp(OpUpdate, actorID, &b.AuditFields)

	if err := s.brands.Update(ctx, &b); err != nil {
		return model.Brand{}, err
	}
	return s.brands.Find(ctx, id, store.ScopeActive)
}

func (s *Service) SoftDeleteBrand(ctx context.Context, id uint, actorID uint) error {
	return s.brands.SoftDelete(ctx, id, Patch(OpSoftDelete, actorID))
}

func (s *Service) RestoreBrand(ctx context.Context, id uint, actorID uint) error {
	return s.brands.Restore(ctx, id, Patch(OpRestore, actorID))
}

func (s *Service) ForceDeleteBrand(ctx context.Context, id uint) error {
	return s.brands.ForceDelete(ctx, id)
}

func (s *Service) validateBrand(ctx context.Context, in BrandInput, excludeID uint) error {
	if !validName(in.Name) {
		return invalid("name", "name is required")
	}
	count, err := s.brands.CountName(ctx, in.Name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return invalid("name", "name is already in use")
	}
	return nil
}
