package model

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the product master data. Category, brand and supplier
// references are RESTRICT on delete: the parent row cannot be removed while
// any product, active or trashed, still points at it.
type Product struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	ImageURL       string     `json:"image_url" gorm:"type:varchar(255)"`
	Description    string     `json:"description" gorm:"type:text"`
	PriceBuy       float64    `json:"price_buy" gorm:"type:decimal(8,2);not null"`
	PriceSell      float64    `json:"price_sell" gorm:"type:decimal(8,2);not null"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty" gorm:"type:date"`
	Stock          int        `json:"stock" gorm:"not null;default:0"`
	MinStock       int        `json:"min_stock" gorm:"not null;default:0"` // reorder threshold
	DesStock       int        `json:"des_stock" gorm:"not null;default:0"` // discarded / written-off quantity
	Barcode        *string    `json:"barcode,omitempty" gorm:"type:varchar(255);uniqueIndex"`
	CategoryID     uint       `json:"category_id" gorm:"index;not null"`
	BrandID        uint       `json:"brand_id" gorm:"index;not null"`
	SupplierID     uint       `json:"supplier_id" gorm:"index;not null"`
	Category       *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Brand          *Brand     `json:"brand,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	Supplier       *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
	AuditFields
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
