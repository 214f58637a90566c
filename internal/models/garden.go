package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Garden struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"not null"`
	Location     string          `json:"location" gorm:"not null"`
	Area         decimal.Decimal `json:"area" gorm:"type:decimal(20,2);not null;default:0"`
	NumberOfBeds int             `json:"number_of_beds" gorm:"not null;default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
