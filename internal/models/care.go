package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityType string

const (
	ActivityFertilize ActivityType = "fertilize"
	ActivitySpray     ActivityType = "spray"
)

func (a ActivityType) Valid() bool {
	return a == ActivityFertilize || a == ActivitySpray
}

type CareActivity struct {
	ID           uint                 `json:"id" gorm:"primaryKey"`
	GardenID     uint                 `json:"garden_id" gorm:"not null;index"`
	Garden       *Garden              `json:"garden,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	ActivityType ActivityType         `json:"activity_type" gorm:"type:varchar(16);not null"`
	ActivityDate time.Time            `json:"activity_date" gorm:"type:date;not null;index"`
	Note         string               `json:"note"`
	Details      []CareActivityDetail `json:"details,omitempty" gorm:"foreignKey:CareActivityID"`
	CreatedAt    time.Time            `json:"created_at"`
}

type CareActivityDetail struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CareActivityID  uint            `json:"care_activity_id" gorm:"not null;index"`
	InventoryItemID uint            `json:"inventory_item_id" gorm:"not null;index"`
	InventoryItem   *InventoryItem  `json:"inventory_item,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	QuantityUsed    decimal.Decimal `json:"quantity_used" gorm:"type:decimal(20,4);not null"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CareActivitySummary is the short form shown on the statistics page.
type CareActivitySummary struct {
	ID           uint         `json:"id"`
	ActivityType ActivityType `json:"activity_type"`
	ActivityDate time.Time    `json:"activity_date"`
	GardenName   string       `json:"garden_name"`
}
