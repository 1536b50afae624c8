package catalog_test

import (
	"context"
	"testing"

	"catalog-service/internal/catalog"
	"catalog-service/internal/model"
	"catalog-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCategory_NameRequired(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateCategory(context.Background(), catalog.CategoryInput{Name: "  "}, 1)
	assertValidationError(t, err, "name")
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("CountName", mock.Anything, "Drinks", uint(0)).Return(int64(1), nil)

	_, err := svc.CreateCategory(context.Background(), catalog.CategoryInput{Name: "Drinks"}, 1)
	assertValidationError(t, err, "name")

	st.categories.AssertExpectations(t)
}

func TestCreateCategory_StampsCreatorAndUpdater(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("CountName", mock.Anything, "Drinks", uint(0)).Return(int64(0), nil)
	st.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Drinks" &&
			c.CreatedBy != nil && *c.CreatedBy == 7 &&
			c.UpdatedBy != nil && *c.UpdatedBy == 7
	})).Return(nil)

	cat, err := svc.CreateCategory(context.Background(), catalog.CategoryInput{Name: "Drinks"}, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Drinks", cat.Name)

	st.categories.AssertExpectations(t)
}

func TestUpdateCategory_KeepsCreatorChangesUpdater(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("CountName", mock.Anything, "Snacks", uint(3)).Return(int64(0), nil)
	st.categories.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		// updates never touch created_by; only the updater is stamped
		return c.ID == 3 && c.CreatedBy == nil &&
			c.UpdatedBy != nil && *c.UpdatedBy == 9
	})).Return(nil)
	st.categories.On("Find", mock.Anything, uint(3), store.ScopeActive).
		Return(model.Category{ID: 3, Name: "Snacks"}, nil)

	cat, err := svc.UpdateCategory(context.Background(), 3, catalog.CategoryInput{Name: "Snacks"}, 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), cat.ID)

	st.categories.AssertExpectations(t)
}

func TestUpdateCategory_DuplicateNameExcludesSelf(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("CountName", mock.Anything, "Drinks", uint(3)).Return(int64(0), nil)
	st.categories.On("Update", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
	st.categories.On("Find", mock.Anything, uint(3), store.ScopeActive).
		Return(model.Category{ID: 3, Name: "Drinks"}, nil)

	_, err := svc.UpdateCategory(context.Background(), 3, catalog.CategoryInput{Name: "Drinks"}, 1)
	assert.NoError(t, err)

	st.categories.AssertExpectations(t)
}

func TestSoftDeleteCategory_StampsUpdaterOnly(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("SoftDelete", mock.Anything, uint(3), map[string]interface{}{"updated_by": uint(9)}).
		Return(nil)

	err := svc.SoftDeleteCategory(context.Background(), 3, 9)
	assert.NoError(t, err)

	st.categories.AssertExpectations(t)
}

func TestRestoreCategory_StampsUpdaterOnly(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("Restore", mock.Anything, uint(3), map[string]interface{}{"updated_by": uint(4)}).
		Return(nil)

	err := svc.RestoreCategory(context.Background(), 3, 4)
	assert.NoError(t, err)

	st.categories.AssertExpectations(t)
}

func TestRestoreCategory_NotTrashed(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("Restore", mock.Anything, uint(3), mock.Anything).Return(store.ErrNotFound)

	err := svc.RestoreCategory(context.Background(), 3, 4)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestForceDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("ForceDelete", mock.Anything, uint(3)).Return(store.ErrInUse)

	err := svc.ForceDeleteCategory(context.Background(), 3)
	assert.ErrorIs(t, err, store.ErrInUse)
}

func TestGetCategory_PassesScope(t *testing.T) {
	svc, st := newTestService()

	st.categories.On("Find", mock.Anything, uint(3), store.ScopeTrashed).
		Return(model.Category{ID: 3}, nil)

	cat, err := svc.GetCategory(context.Background(), 3, store.ScopeTrashed)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), cat.ID)

	st.categories.AssertExpectations(t)
}
