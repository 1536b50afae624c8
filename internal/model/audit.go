package model

// AuditFields records which user created and last mutated a row. Every
// catalog entity embeds it. The columns are nullable so that deleting a user
// nulls the references instead of cascading into catalog rows.
type AuditFields struct {
	CreatedBy *uint `json:"created_by" gorm:"index"`
	UpdatedBy *uint `json:"updated_by"`

	// Relations for resolving audit ids to display names
	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
	Updater *User `json:"updater,omitempty" gorm:"foreignKey:UpdatedBy;constraint:OnDelete:SET NULL"`
}
