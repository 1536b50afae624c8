package model

import (
	"time"

	"gorm.io/gorm"
)

// Brand is the manufacturer label attached to products. Same shape as
// Category.
type Brand struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Image       string `json:"image" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:text"`
	AuditFields
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
