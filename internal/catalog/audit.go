package catalog

import (
	"catalog-service/internal/model"
)

// Operation is the kind of mutation being stamped.
type Operation int

const (
	OpCreate Operation = iota
	OpUpdate
	OpSoftDelete
	OpRestore
)

// Stamp applies the audit policy for op to the entity's audit fields:
// creation sets both created_by and updated_by to the actor, every other
// mutation sets updated_by only and leaves created_by untouched. This is the
// single shared implementation used for all entity types.
func Stamp(op Operation, actorID uint, f *model.AuditFields) {
	actor := actorID
	if op == OpCreate {
		f.CreatedBy = &actor
	}
	f.UpdatedBy = &actor
}

// Patch returns the audit columns for op as an update map, for mutations
// that go through column updates (soft delete, restore) rather than struct
// writes.
func Patch(op Operation, actorID uint) map[string]interface{} {
	patch := map[string]interface{}{"updated_by": actorID}
	if op == OpCreate {
		patch["created_by"] = actorID
	}
	return patch
}
