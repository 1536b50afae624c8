package catalog

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/internal/store"
)

// SupplierInput carries the editable supplier fields.
type SupplierInput struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

func (s *Service) ListSuppliers(ctx context.Context, f store.ListFilter) ([]model.Supplier, error) {
	return s.suppliers.List(ctx, f)
}

func (s *Service) GetSupplier(ctx context.Context, id uint, scope store.Scope) (model.Supplier, error) {
	return s.suppliers.Find(ctx, id, scope)
}

func (s *Service) CreateSupplier(ctx context.Context, in SupplierInput, actorID uint) (model.Supplier, error) {
	if err := s.validateSupplier(ctx, in, 0); err != nil {
		return model.Supplier{}, err
	}

	sup := model.Supplier{
		Name:         in.Name,
		Image:        in.Image,
		Description:  in.Description,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		Notes:        in.Notes,
	}
	Stamp(OpCreate, actorID, &sup.AuditFields)

	if err := s.suppliers.Create(ctx, &sup); err != nil {
		return model.Supplier{}, err
	}
	return sup, nil
}

func (s *Service) UpdateSupplier(ctx context.Context, id uint, in SupplierInput, actorID uint) (model.Supplier, error) {
	if err := s.validateSupplier(ctx, in, id); err != nil {
		return model.Supplier{}, err
	}

	sup := model.Supplier{
		ID:           id,
		Name:         in.Name,
		Image:        in.Image,
		Description:  in.Description,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		Notes:        in.Notes,
	}
	Stamp(OpUpdate, actorID, &sup.AuditFields)

	if err := s.suppliers.Update(ctx, &sup); err != nil {
		return model.Supplier{}, err
	}
	return s.suppliers.Find(ctx, id, store.ScopeActive)
}

func (s *Service) SoftDeleteSupplier(ctx context.Context, id uint, actorID uint) error {
	return s.suppliers.SoftDelete(ctx, id, Patch(OpSoftDelete, actorID))
}

func (s *Service) RestoreSupplier(ctx context.Context, id uint, actorID uint) error {
	return s.suppliers.Restore(ctx, id, Patch(OpRestore, actorID))
}

func (s *Service) ForceDeleteSupplier(ctx context.Context, id uint) error {
	return s.suppliers.ForceDelete(ctx, id)
}

func (s *Service) validateSupplier(ctx context.Context, in SupplierInput, excludeID uint) error {
	if !validName(in.Name) {
		return invalid("name", "name is required")
	}
	if in.ContactEmail != "" && !validEmail(in.ContactEmail) {
		return invalid("contact_email", "must be a valid email address")
	}
	if in.ContactPhone != "" && !validPhone(in.ContactPhone) {
		return invalid("contact_phone", "must be a valid phone number")
	}
	if len(in.Notes) > maxNotesLen {
		return invalid("notes", "must not exceed 65535 characters")
	}
	count, err := s.suppliers.CountName(ctx, in.Name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return invalid("name", "name is already in use")
	}
	return nil
}
