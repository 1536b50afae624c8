package catalog

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/internal/store"
)

// CategoryInput carries the editable category fields.
type CategoryInput struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (s *Service) ListCategories(ctx context.Context, f store.ListFilter) ([]model.Category, error) {
	return s.categories.List(ctx, f)
}

func (s *Service) GetCategory(ctx context.Context, id uint, scope store.Scope) (model.Category, error) {
	return s.categories.Find(ctx, id, scope)
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput, actorID uint) (model.Category, error) {
	if err := s.validateCategory(ctx, in, 0); err != nil {
		return model.Category{}, err
	}

	c := model.Category{
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
	}
	Stamp(OpCreate, actorID, &c.AuditFields)

	if err := s.categories.Create(ctx, &c); err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uint, in CategoryInput, actorID uint) (model.Category, error) {
	if err := s.validateCategory(ctx, in, id); err != nil {
		return model.Category{}, err
	}

	c := model.Category{
		ID:          id,
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
	}
	Stamp(OpUpdate, actorID, &c.AuditFields)

	if err := s.categories.Update(ctx, &c); err != nil {
		return model.Category{}, err
	}
	return s.categories.Find(ctx, id, store.ScopeActive)
}

func (s *Service) SoftDeleteCategory(ctx context.Context, id uint, actorID uint) error {
	return s.categories.SoftDelete(ctx, id, Patch(OpSoftDelete, actorID))
}

func (s *Service) RestoreCategory(ctx context.Context, id uint, actorID uint) error {
	return s.categories.Restore(ctx, id, Patch(OpRestore, actorID))
}

func (s *Service) ForceDeleteCategory(ctx context.Context, id uint) error {
	return s.categories.ForceDelete(ctx, id)
}

func (s *Service) validateCategory(ctx context.Context, in CategoryInput, excludeID uint) error {
	if !validName(in.Name) {
		return invalid("name", "name is required")
	}
	count, err := s.categories.CountName(ctx, in.Name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return invalid("name", "name is already in use")
	}
	return nil
}
