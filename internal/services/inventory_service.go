package services

import (
	"strings"
	"time"

	"farm_manager/internal/events"
	"farm_manager/internal/models"
	"farm_manager/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CategoryInput struct {
	Name        string
	Description string
}

type ItemInput struct {
	CategoryID uint
	Name       string
	Unit       string
	// InitialQuantity is only read on create.
	InitialQuantity decimal.Decimal
}

func (in ItemInput) validate() error {
	return firstError(
		requireID("category_id", in.CategoryID),
		requireText("name", in.Name),
		requireText("unit", in.Unit),
		requireNonNegative("current_quantity", in.InitialQuantity),
	)
}

type TransactionInput struct {
	ItemID   uint
	Type     models.TransactionType
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Date     time.Time
	Note     string
}

type InventoryService interface {
	ListCategories() ([]models.InventoryCategory, error)
	CreateCategory(input CategoryInput) (*models.InventoryCategory, error)
	UpdateCategory(id uint, input CategoryInput) (*models.InventoryCategory, error)
	DeleteCategory(id uint) error

	ListItems(categoryID *uint) ([]models.InventoryItem, error)
	CreateItem(input ItemInput) (*models.InventoryItem, error)
	UpdateItem(id uint, input ItemInput) (*models.InventoryItem, error)
	DeleteItem(id uint) error

	ListTransactions(itemID *uint) ([]models.InventoryTransaction, error)
	// CreateTransaction moves stock in or out. An outbound movement larger
	// than the stock on hand fails with models.ErrInsufficientStock and
	// changes nothing.
	CreateTransaction(input TransactionInput) (*models.InventoryTransaction, *models.InventoryItem, error)
}

type inventoryService struct {
	repo      repository.InventoryRepository
	publisher events.Publisher
	log       *zap.Logger
}

func NewInventoryService(repo repository.InventoryRepository, publisher events.Publisher, log *zap.Logger) InventoryService {
	return &inventoryService{repo: repo, publisher: publisher, log: log}
}

func (s *inventoryService) ListCategories() ([]models.InventoryCategory, error) {
	return s.repo.ListCategories()
}

func (s *inventoryService) CreateCategory(input CategoryInput) (*models.InventoryCategory, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}
	category := &models.InventoryCategory{Name: strings.TrimSpace(input.Name), Description: input.Description}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *inventoryService) UpdateCategory(id uint, input CategoryInput) (*models.InventoryCategory, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}
	category, err := s.repo.GetCategory(id)
	if err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(input.Name)
	category.Description = input.Description
	if err := s.repo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *inventoryService) DeleteCategory(id uint) error {
	return s.repo.DeleteCategory(id)
}

func (s *inventoryService) ListItems(categoryID *uint) ([]models.InventoryItem, error) {
	return s.repo.ListItems(categoryID)
}

func (s *inventoryService) CreateItem(input ItemInput) (*models.InventoryItem, error) {
	if err := s.checkItem(input); err != nil {
		return nil, err
	}
	item := &models.InventoryItem{
		CategoryID:      input.CategoryID,
		Name:            strings.TrimSpace(input.Name),
		Unit:            strings.TrimSpace(input.Unit),
		CurrentQuantity: input.InitialQuantity,
	}
	if err := s.repo.CreateItem(item); err != nil {
		return nil, err
	}
	return s.repo.GetItem(item.ID)
}

func (s *inventoryService) UpdateItem(id uint, input ItemInput) (*models.InventoryItem, error) {
	if err := s.checkItem(input); err != nil {
		return nil, err
	}
	item, err := s.repo.GetItem(id)
	if err != nil {
		return nil, err
	}
	item.CategoryID = input.CategoryID
	item.Name = strings.TrimSpace(input.Name)
	item.Unit = strings.TrimSpace(input.Unit)
	item.Category = nil
	if err := s.repo.UpdateItem(item); err != nil {
		return nil, err
	}
	return s.repo.GetItem(id)
}

func (s *inventoryService) DeleteItem(id uint) error {
	return s.repo.DeleteItem(id)
}

func (s *inventoryService) checkItem(input ItemInput) error {
	if err := input.validate(); err != nil {
		return err
	}
	_, err := s.repo.GetCategory(input.CategoryID)
	return mustExist("category_id", err)
}

func (s *inventoryService) ListTransactions(itemID *uint) ([]models.InventoryTransaction, error) {
	return s.repo.ListTransactions(itemID)
}

func (s *inventoryService) CreateTransaction(input TransactionInput) (*models.InventoryTransaction, *models.InventoryItem, error) {
	if !input.Type.Valid() {
		return nil, nil, models.NewValidationError("type", "must be one of in, out")
	}
	if err := firstError(
		requireID("item_id", input.ItemID),
		requirePositive("quantity", input.Quantity),
		requireNonNegative("price", input.Price),
	); err != nil {
		return nil, nil, err
	}

	txn := &models.InventoryTransaction{
		ItemID:   input.ItemID,
		Type:     input.Type,
		Quantity: input.Quantity,
		Price:    input.Price,
		Date:     input.Date,
		Note:     input.Note,
	}
	item, err := s.repo.CreateTransaction(txn)
	if err != nil {
		return nil, nil, mustExist("item_id", err)
	}

	publish(s.publisher, s.log, events.InventoryTransactionCreated, txn.ID, map[string]interface{}{
		"transaction":      txn,
		"current_quantity": item.CurrentQuantity,
	})
	return txn, item, nil
}
