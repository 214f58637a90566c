package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InventoryItem struct {
	ID              uint               `json:"id" gorm:"primaryKey"`
	CategoryID      uint               `json:"category_id" gorm:"not null;index"`
	Category        *InventoryCategory `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Name            string             `json:"name" gorm:"not null"`
	Unit            string             `json:"unit" gorm:"not null"`
	CurrentQuantity decimal.Decimal    `json:"current_quantity" gorm:"type:decimal(20,4);not null;default:0"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIn || t == TransactionOut
}

type InventoryTransaction struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ItemID    uint            `json:"item_id" gorm:"not null;index"`
	Item      *InventoryItem  `json:"item,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Type      TransactionType `json:"type" gorm:"type:varchar(8);not null;index"`
	Quantity  decimal.Decimal `json:"quantity" gorm:"type:decimal(20,4);not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;default:0"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(20,2);not null;default:0"`
	Date      time.Time       `json:"date" gorm:"type:date;not null;index"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// CalculateTotal sets Total from quantity and unit price.
func (t *InventoryTransaction) CalculateTotal() {
	t.Total = LineTotal(t.Quantity, t.Price)
}

// ApplyStockMovement returns the stock level after moving quantity in or out
// of current. An outbound movement that would leave negative stock is rejected
// with ErrInsufficientStock.
func ApplyStockMovement(current decimal.Decimal, typ TransactionType, quantity decimal.Decimal) (decimal.Decimal, error) {
	var next decimal.Decimal
	switch typ {
	case TransactionIn:
		next = current.Add(quantity)
	case TransactionOut:
		next = current.Sub(quantity)
	default:
		return current, NewValidationError("type", "must be one of in, out")
	}
	if next.IsNegative() {
		return current, ErrInsufficientStock
	}
	return next, nil
}
