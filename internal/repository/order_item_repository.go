package repository

import (
	"farm_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderItemRepository manages the line items of an order. Order writes pass
// their transaction handle so items and order commit together.
type OrderItemRepository interface {
	Create(orderItem *models.OrderItem) error
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	DeleteByOrderID(orderID uint) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(orderItem *models.OrderItem) error {
	return translateError(r.db.Omit(clause.Associations).Create(orderItem).Error)
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Preload("CropType").Where("order_id = ?", orderID).Order("id").Find(&orderItems).Error
	return orderItems, translateError(err)
}

func (r *orderItemRepository) DeleteByOrderID(orderID uint) error {
	return translateError(r.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error)
}
