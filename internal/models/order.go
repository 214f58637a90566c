package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CustomerID      uint            `json:"customer_id" gorm:"not null;index"`
	Customer        *Customer       `json:"customer,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	OrderDate       time.Time       `json:"order_date" gorm:"type:date;not null;index"`
	DeliveryDate    time.Time       `json:"delivery_date" gorm:"type:date;not null"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(16);not null;default:'new';index"`
	ShippingType    ShippingType    `json:"shipping_type" gorm:"type:varchar(16);not null"`
	ShippingFee     decimal.Decimal `json:"shipping_fee" gorm:"type:decimal(20,2);not null;default:0"`
	SubTotal        decimal.Decimal `json:"sub_total" gorm:"type:decimal(20,2);not null;default:0"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,2);not null;default:0"`
	DepositAmount   decimal.Decimal `json:"deposit_amount" gorm:"type:decimal(20,2);not null;default:0"`
	DepositDate     *time.Time      `json:"deposit_date" gorm:"type:date"`
	RemainingAmount decimal.Decimal `json:"remaining_amount" gorm:"type:decimal(20,2);not null;default:0"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"type:varchar(16);not null;default:'no_deposit'"`
	Note            string          `json:"note"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderStatus string

const (
	OrderNew        OrderStatus = "new"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderDelivering OrderStatus = "delivering"
	OrderCompleted  OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderNew, OrderConfirmed, OrderDelivering, OrderCompleted:
		return true
	}
	return false
}

type ShippingType string

const (
	ShippingGrowerPays   ShippingType = "grower_pays"
	ShippingCustomerPays ShippingType = "customer_pays"
)

func (s ShippingType) Valid() bool {
	return s == ShippingGrowerPays || s == ShippingCustomerPays
}

type PaymentStatus string

const (
	PaymentNoDeposit PaymentStatus = "no_deposit"
	PaymentDeposited PaymentStatus = "deposited"
	PaymentPaid      PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentNoDeposit, PaymentDeposited, PaymentPaid:
		return true
	}
	return false
}

// CalculateTotals derives every computed amount of the order from its items,
// shipping terms and deposit:
//
//	item.total       = quantity × price_per_unit
//	sub_total        = Σ item.total
//	total_amount     = sub_total + shipping_fee   (grower_pays)
//	                 = sub_total                  (customer_pays)
//	remaining_amount = total_amount − deposit_amount
func (o *Order) CalculateTotals() {
	subTotal := decimal.Zero
	for i := range o.Items {
		o.Items[i].CalculateTotal()
		subTotal = subTotal.Add(o.Items[i].Total)
	}
	o.SubTotal = subTotal

	o.TotalAmount = subTotal
	if o.ShippingType == ShippingGrowerPays {
		o.TotalAmount = subTotal.Add(o.ShippingFee)
	}
	o.CalculateRemaining()
}

// CalculateRemaining keeps remaining_amount = total_amount − deposit_amount.
func (o *Order) CalculateRemaining() {
	o.RemainingAmount = o.TotalAmount.Sub(o.DepositAmount)
}

// InitialPaymentStatus is the payment state of a freshly created order.
func InitialPaymentStatus(deposit decimal.Decimal) PaymentStatus {
	if deposit.IsPositive() {
		return PaymentDeposited
	}
	return PaymentNoDeposit
}
