package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OrderID      uint            `json:"order_id" gorm:"not null;index"`
	CropTypeID   uint            `json:"crop_type_id" gorm:"not null;index"`
	CropType     *CropType       `json:"crop_type,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity     decimal.Decimal `json:"quantity" gorm:"type:decimal(20,4);not null"`
	Unit         string          `json:"unit" gorm:"not null"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" gorm:"type:decimal(20,2);not null"`
	Total        decimal.Decimal `json:"total" gorm:"type:decimal(20,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (i *OrderItem) CalculateTotal() {
	i.Total = LineTotal(i.Quantity, i.PricePerUnit)
}
