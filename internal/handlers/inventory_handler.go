package handlers

import (
	"net/http"

	"farm_manager/internal/models"
	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *InventoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.inventoryService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *InventoryHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.inventoryService.CreateCategory(services.CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *InventoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.inventoryService.UpdateCategory(id, services.CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *InventoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}

type itemRequest struct {
	CategoryID      uint            `json:"category_id" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Unit            string          `json:"unit" binding:"required"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
}

func (r itemRequest) input() services.ItemInput {
	return services.ItemInput{
		CategoryID:      r.CategoryID,
		Name:            r.Name,
		Unit:            r.Unit,
		InitialQuantity: r.InitialQuantity,
	}
}

// ListItems accepts an optional ?category_id= filter.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.inventoryService.ListItems(categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.inventoryService.CreateItem(req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.inventoryService.UpdateItem(id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}

type transactionRequest struct {
	ItemID   uint                   `json:"item_id" binding:"required"`
	Type     models.TransactionType `json:"type" binding:"required"`
	Quantity decimal.Decimal        `json:"quantity"`
	Price    decimal.Decimal        `json:"price"`
	Date     string                 `json:"date" binding:"required"`
	Note     string                 `json:"note"`
}

// ListTransactions accepts an optional ?item_id= filter.
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	itemID, err := queryID(c, "item_id")
	if err != nil {
		respondError(c, err)
		return
	}

	txns, err := h.inventoryService.ListTransactions(itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

// CreateTransaction responds with the transaction and the item's new stock.
func (h *InventoryHandler) CreateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	txn, item, err := h.inventoryService.CreateTransaction(services.TransactionInput{
		ItemID:   req.ItemID,
		Type:     req.Type,
		Quantity: req.Quantity,
		Price:    req.Price,
		Date:     date,
		Note:     req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"transaction": txn,
		"item":        item,
	})
}
