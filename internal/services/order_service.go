package services

import (
	"fmt"
	"strings"
	"time"

	"farm_manager/internal/events"
	"farm_manager/internal/models"
	"farm_manager/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

type OrderItemInput struct {
	CropTypeID   uint
	Quantity     decimal.Decimal
	Unit         string
	PricePerUnit decimal.Decimal
}

type OrderInput struct {
	CustomerID    uint
	OrderDate     time.Time
	DeliveryDate  time.Time
	ShippingType  models.ShippingType
	ShippingFee   decimal.Decimal
	DepositAmount decimal.Decimal
	DepositDate   *time.Time
	Note          string
	Items         []OrderItemInput
}

type PaymentInput struct {
	PaymentStatus models.PaymentStatus
	DepositAmount decimal.Decimal
	DepositDate   *time.Time
}

type OrderService interface {
	ListCustomers() ([]models.Customer, error)
	CreateCustomer(input CustomerInput) (*models.Customer, error)
	UpdateCustomer(id uint, input CustomerInput) (*models.Customer, error)
	DeleteCustomer(id uint) error

	ListOrders(status *models.OrderStatus) ([]models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetOrderItems(orderID uint) ([]models.OrderItem, error)
	CreateOrder(input OrderInput) (*models.Order, error)
	UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error)
	UpdatePayment(id uint, input PaymentInput) (*models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	customerRepo  repository.CustomerRepository
	cropTypeRepo  repository.CropTypeRepository
	notifier      NotificationService
	publisher     events.Publisher
	log           *zap.Logger
}

type OrderServiceDeps struct {
	Orders     repository.OrderRepository
	OrderItems repository.OrderItemRepository
	Customers  repository.CustomerRepository
	CropTypes  repository.CropTypeRepository
	// Notifier is optional.
	Notifier   NotificationService
	Publisher  events.Publisher
	Log        *zap.Logger
}

func NewOrderService(deps OrderServiceDeps) OrderService {
	return &orderService{
		orderRepo:     deps.Orders,
		orderItemRepo: deps.OrderItems,
		customerRepo:  deps.Customers,
		cropTypeRepo:  deps.CropTypes,
		notifier:      deps.Notifier,
		publisher:     deps.Publisher,
		log:           deps.Log,
	}
}

func (s *orderService) ListCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *orderService) CreateCustomer(input CustomerInput) (*models.Customer, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}
	customer := &models.Customer{}
	input.apply(customer)
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *orderService) UpdateCustomer(id uint, input CustomerInput) (*models.Customer, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	input.apply(customer)
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *orderService) DeleteCustomer(id uint) error {
	return s.customerRepo.Delete(id)
}

func (s *orderService) ListOrders(status *models.OrderStatus) ([]models.Order, error) {
	if status != nil && !status.Valid() {
		return nil, models.NewValidationError("status", "must be one of new, confirmed, delivering, completed")
	}
	return s.orderRepo.List(repository.OrderFilter{Status: status})
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, err
	}
	return s.orderItemRepo.GetByOrderID(orderID)
}

// CreateOrder computes every derived amount server-side, then writes the
// order and its items atomically.
func (s *orderService) CreateOrder(input OrderInput) (*models.Order, error) {
	if err := s.validateOrder(input); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:    input.CustomerID,
		OrderDate:     input.OrderDate,
		DeliveryDate:  input.DeliveryDate,
		Status:        models.OrderNew,
		ShippingType:  input.ShippingType,
		ShippingFee:   input.ShippingFee,
		DepositAmount: input.DepositAmount,
		DepositDate:   input.DepositDate,
		PaymentStatus: models.InitialPaymentStatus(input.DepositAmount),
		Note:          input.Note,
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			CropTypeID:   item.CropTypeID,
			Quantity:     item.Quantity,
			Unit:         strings.TrimSpace(item.Unit),
			PricePerUnit: item.PricePerUnit,
		})
	}
	order.CalculateTotals()

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrOrderCreation, err)
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, s.log, events.OrderCreated, created.ID, created)
	return created, nil
}

func (s *orderService) validateOrder(input OrderInput) error {
	if len(input.Items) == 0 {
		return models.NewValidationError("items", "at least one item is required")
	}
	if !input.ShippingType.Valid() {
		return models.NewValidationError("shipping_type", "must be one of grower_pays, customer_pays")
	}
	if err := firstError(
		requireID("customer_id", input.CustomerID),
		requireNonNegative("shipping_fee", input.ShippingFee),
		requireNonNegative("deposit_amount", input.DepositAmount),
	); err != nil {
		return err
	}
	for i, item := range input.Items {
		if err := firstError(
			requireID(fmt.Sprintf("items[%d].crop_type_id", i), item.CropTypeID),
			requirePositive(fmt.Sprintf("items[%d].quantity", i), item.Quantity),
			requireText(fmt.Sprintf("items[%d].unit", i), item.Unit),
			requireNonNegative(fmt.Sprintf("items[%d].price_per_unit", i), item.PricePerUnit),
		); err != nil {
			return err
		}
	}

	if _, err := s.customerRepo.GetByID(input.CustomerID); err != nil {
		return mustExist("customer_id", err)
	}
	checked := map[uint]bool{}
	for i, item := range input.Items {
		if checked[item.CropTypeID] {
			continue
		}
		if err := mustExist(fmt.Sprintf("items[%d].crop_type_id", i), s.cropTypeRepo.Exists(item.CropTypeID)); err != nil {
			return err
		}
		checked[item.CropTypeID] = true
	}
	return nil
}

// UpdateStatus accepts any status at any time; there is no enforced
// lifecycle.
func (s *orderService) UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("status", "must be one of new, confirmed, delivering, completed")
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	publish(s.publisher, s.log, events.OrderStatusChanged, order.ID, map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})
	s.notify(order)
	return order, nil
}

func (s *orderService) UpdatePayment(id uint, input PaymentInput) (*models.Order, error) {
	if !input.PaymentStatus.Valid() {
		return nil, models.NewValidationError("payment_status", "must be one of no_deposit, deposited, paid")
	}
	if err := requireNonNegative("deposit_amount", input.DepositAmount); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	order.PaymentStatus = input.PaymentStatus
	order.DepositAmount = input.DepositAmount
	order.DepositDate = input.DepositDate
	order.CalculateRemaining()

	if err := s.orderRepo.UpdatePayment(order); err != nil {
		return nil, err
	}

	publish(s.publisher, s.log, events.OrderPaymentUpdated, order.ID, map[string]interface{}{
		"order_id":         order.ID,
		"payment_status":   order.PaymentStatus,
		"deposit_amount":   order.DepositAmount,
		"remaining_amount": order.RemainingAmount,
	})
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	return s.orderRepo.Delete(id)
}

func (s *orderService) notify(order *models.Order) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyOrderStatus(order); err != nil {
		s.log.Warn("Failed to send order notification", zap.Uint("order_id", order.ID), zap.Error(err))
	}
}

func (in CustomerInput) apply(c *models.Customer) {
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Address = strings.TrimSpace(in.Address)
}

