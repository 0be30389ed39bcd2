package models

import "time"

// Product is a catalog-store record. ProductID is assigned max+1 at creation
// and is never reused after a delete.
type Product struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	ProductID          int       `gorm:"uniqueIndex;not null" json:"product_id"`
	ProductName        string    `gorm:"size:255;not null" json:"product_name"`
	ProductDescription string    `gorm:"size:1024;not null" json:"product_description"`
	CreationDate       time.Time `json:"creation_date"`
	Status             bool      `gorm:"default:true" json:"status"`
	CurrentStockLevel  int       `gorm:"default:0" json:"current_stock_level"`
}
