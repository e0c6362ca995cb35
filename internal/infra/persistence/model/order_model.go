package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Total is stored so listings never recompute it.
type OrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PurchaseDate time.Time `gorm:"not null"`
	Quantity     int       `gorm:"not null;default:1"`
	UnitPrice    float64   `gorm:"not null"`
	Total        float64   `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'in-progress'"`
	Location     string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Customer *UserModel    `gorm:"foreignKey:UserID"`
	Product  *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
