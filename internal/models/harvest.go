package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CropType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Harvest struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	GardenID     uint            `json:"garden_id" gorm:"not null;index"`
	Garden       *Garden         `json:"garden,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	CropTypeID   uint            `json:"crop_type_id" gorm:"not null;index"`
	CropType     *CropType       `json:"crop_type,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	HarvestDate  time.Time       `json:"harvest_date" gorm:"type:date;not null;index"`
	Quantity     decimal.Decimal `json:"quantity" gorm:"type:decimal(20,4);not null"`
	Unit         string          `json:"unit" gorm:"not null"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" gorm:"type:decimal(20,2);not null"`
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,2);not null"`
	Note         string          `json:"note"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CalculateTotal sets TotalAmount from quantity and unit price.
func (h *Harvest) CalculateTotal() {
	h.TotalAmount = LineTotal(h.Quantity, h.PricePerUnit)
}

// LineTotal is the amount of a single priced line: quantity × unit price.
func LineTotal(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price)
}
