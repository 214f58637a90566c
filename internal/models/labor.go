package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"not null"`
	Phone      string          `json:"phone"`
	HourlyRate decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(20,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type LaborPaymentStatus string

const (
	LaborUnpaid LaborPaymentStatus = "unpaid"
	LaborPaid   LaborPaymentStatus = "paid"
)

func (s LaborPaymentStatus) Valid() bool {
	return s == LaborUnpaid || s == LaborPaid
}

type LaborRecord struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	WorkerID      uint               `json:"worker_id" gorm:"not null;index"`
	Worker        *Worker            `json:"worker,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	WorkDate      time.Time          `json:"work_date" gorm:"type:date;not null;index"`
	HoursWorked   decimal.Decimal    `json:"hours_worked" gorm:"type:decimal(10,2);not null"`
	HourlyRate    decimal.Decimal    `json:"hourly_rate" gorm:"type:decimal(20,2);not null"`
	TotalAmount   decimal.Decimal    `json:"total_amount" gorm:"type:decimal(20,2);not null"`
	PaymentStatus LaborPaymentStatus `json:"payment_status" gorm:"type:varchar(16);not null;default:'unpaid'"`
	Note          string             `json:"note"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// NewLaborRecord bills hours at the worker's current rate. The rate is copied
// so later rate changes do not alter existing records.
func NewLaborRecord(worker *Worker, workDate time.Time, hours decimal.Decimal, note string) *LaborRecord {
	return &LaborRecord{
		WorkerID:      worker.ID,
		WorkDate:      workDate,
		HoursWorked:   hours,
		HourlyRate:    worker.HourlyRate,
		TotalAmount:   LineTotal(hours, worker.HourlyRate),
		PaymentStatus: LaborUnpaid,
		Note:          note,
	}
}
