package model

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a vendor products are purchased from.
type Supplier struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Image        string `json:"image" gorm:"type:varchar(255)"`
	Description  string `json:"description" gorm:"type:text"`
	ContactName  string `json:"contact_name" gorm:"type:varchar(255)"`
	ContactEmail string `json:"contact_email" gorm:"type:varchar(255)"`
	ContactPhone string `json:"contact_phone" gorm:"type:varchar(50)"`
	Address      string `json:"address" gorm:"type:varchar(255)"`
	Notes        string `json:"notes" gorm:"type:text"` // bounded to 65535 chars at validation
	AuditFields
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
