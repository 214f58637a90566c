package repository

import (
	"time"

	"farm_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFilter narrows an order listing. A nil Status lists every order.
type OrderFilter struct {
	Status *models.OrderStatus
}

type OrderRepository interface {
	// Create writes the order and its items in one transaction.
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderFilter) ([]models.Order, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Order, error)
	UpdateStatus(id uint, status models.OrderStatus) error
	UpdatePayment(order *models.Order) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	items := order.Items
	order.Items = nil
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return translateError(err)
		}
		itemRepo := NewOrderItemRepository(tx)
		for i := range items {
			items[i].OrderID = order.ID
			if err := itemRepo.Create(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	order.Items = items
	return err
}

func (r *orderRepository) preloaded() *gorm.DB {
	return r.db.Preload("Customer").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Preload("Items.CropType")
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.preloaded().First(&order, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}

func (r *orderRepository) List(filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	query := r.preloaded()
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	err := query.Order("order_date desc, id desc").Find(&orders).Error
	return orders, translateError(err)
}

// GetByDateRange returns orders whose order_date falls within the inclusive
// day range.
func (r *orderRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Order, error) {
	var orders []models.Order
	start, end := dayBounds(startDate, endDate)
	err := r.db.Preload("Customer").
		Where("order_date >= ? AND order_date < ?", start, end).
		Order("order_date, id").
		Find(&orders).Error
	return orders, translateError(err)
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return checkAffected(r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status))
}

func (r *orderRepository) UpdatePayment(order *models.Order) error {
	return checkAffected(r.db.Model(order).
		Select("payment_status", "deposit_amount", "deposit_date", "remaining_amount").
		Updates(order))
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := NewOrderItemRepository(tx).DeleteByOrderID(id); err != nil {
			return err
		}
		return checkAffected(tx.Delete(&models.Order{}, id))
	})
}
