package handlers

import (
	"net/http"

	"farm_manager/internal/models"
	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderHandler serves customers and their orders.
type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type customerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r customerRequest) input() services.CustomerInput {
	return services.CustomerInput{Name: r.Name, Phone: r.Phone, Address: r.Address}
}

func (h *OrderHandler) ListCustomers(c *gin.Context) {
	customers, err := h.orderService.ListCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *OrderHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := h.orderService.CreateCustomer(req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *OrderHandler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := h.orderService.UpdateCustomer(id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *OrderHandler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.orderService.DeleteCustomer(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}

type orderItemRequest struct {
	CropTypeID   uint            `json:"crop_type_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit" binding:"required"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// Amounts derived from the items (sub total, total, remaining) are not
// accepted from the client.
type orderRequest struct {
	CustomerID    uint                `json:"customer_id" binding:"required"`
	OrderDate     string              `json:"order_date" binding:"required"`
	DeliveryDate  string              `json:"delivery_date" binding:"required"`
	ShippingType  models.ShippingType `json:"shipping_type" binding:"required"`
	ShippingFee   decimal.Decimal     `json:"shipping_fee"`
	DepositAmount decimal.Decimal     `json:"deposit_amount"`
	DepositDate   *string             `json:"deposit_date"`
	Note          string              `json:"note"`
	Items         []orderItemRequest  `json:"items" binding:"dive"`
}

func (r orderRequest) input() (services.OrderInput, error) {
	orderDate, err := parseDate("order_date", r.OrderDate)
	if err != nil {
		return services.OrderInput{}, err
	}
	deliveryDate, err := parseDate("delivery_date", r.DeliveryDate)
	if err != nil {
		return services.OrderInput{}, err
	}
	depositDate, err := parseOptionalDate("deposit_date", r.DepositDate)
	if err != nil {
		return services.OrderInput{}, err
	}

	input := services.OrderInput{
		CustomerID:    r.CustomerID,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
		ShippingType:  r.ShippingType,
		ShippingFee:   r.ShippingFee,
		DepositAmount: r.DepositAmount,
		DepositDate:   depositDate,
		Note:          r.Note,
	}
	for _, item := range r.Items {
		input.Items = append(input.Items, services.OrderItemInput{
			CropTypeID:   item.CropTypeID,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			PricePerUnit: item.PricePerUnit,
		})
	}
	return input, nil
}

// ListOrders accepts an optional ?status= filter.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var status *models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := models.OrderStatus(raw)
		status = &s
	}

	orders, err := h.orderService.ListOrders(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.orderService.GetOrderItems(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := req.input()
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type paymentRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
	DepositAmount decimal.Decimal      `json:"deposit_amount"`
	DepositDate   *string              `json:"deposit_date"`
}

func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	depositDate, err := parseOptionalDate("deposit_date", req.DepositDate)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.orderService.UpdatePayment(id, services.PaymentInput{
		PaymentStatus: req.PaymentStatus,
		DepositAmount: req.DepositAmount,
		DepositDate:   depositDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.orderService.DeleteOrder(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}
