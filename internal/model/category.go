package model

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products. The name is unique table-wide, so a soft-deleted
// category still holds its name until it is force-deleted.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Image       string `json:"image" gorm:"type:varchar(255)"` // relative storage path
	Description string `json:"description" gorm:"type:text"`
	AuditFields
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
