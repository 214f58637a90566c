package repository

import (
	"time"

	"farm_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	CreateCategory(category *models.InventoryCategory) error
	GetCategory(id uint) (*models.InventoryCategory, error)
	ListCategories() ([]models.InventoryCategory, error)
	UpdateCategory(category *models.InventoryCategory) error
	DeleteCategory(id uint) error

	CreateItem(item *models.InventoryItem) error
	GetItem(id uint) (*models.InventoryItem, error)
	ListItems(categoryID *uint) ([]models.InventoryItem, error)
	UpdateItem(item *models.InventoryItem) error
	DeleteItem(id uint) error

	// CreateTransaction records a stock movement and adjusts the item's
	// quantity in one database transaction. It returns the item as it is
	// after the movement.
	CreateTransaction(txn *models.InventoryTransaction) (*models.InventoryItem, error)
	ListTransactions(itemID *uint) ([]models.InventoryTransaction, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateCategory(category *models.InventoryCategory) error {
	return translateError(r.db.Create(category).Error)
}

func (r *inventoryRepository) GetCategory(id uint) (*models.InventoryCategory, error) {
	var category models.InventoryCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *inventoryRepository) ListCategories() ([]models.InventoryCategory, error) {
	var categories []models.InventoryCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, translateError(err)
}

func (r *inventoryRepository) UpdateCategory(category *models.InventoryCategory) error {
	return checkAffected(r.db.Model(category).Select("name", "description").Updates(category))
}

func (r *inventoryRepository) DeleteCategory(id uint) error {
	return checkAffected(r.db.Delete(&models.InventoryCategory{}, id))
}

func (r *inventoryRepository) CreateItem(item *models.InventoryItem) error {
	return translateError(r.db.Omit(clause.Associations).Create(item).Error)
}

func (r *inventoryRepository) GetItem(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.Preload("Category").First(&item, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *inventoryRepository) ListItems(categoryID *uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	query := r.db.Preload("Category")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Order("name").Find(&items).Error
	return items, translateError(err)
}

// UpdateItem changes descriptive fields only. Stock moves through
// CreateTransaction.
func (r *inventoryRepository) UpdateItem(item *models.InventoryItem) error {
	return checkAffected(r.db.Model(item).Select("category_id", "name", "unit").Updates(item))
}

func (r *inventoryRepository) DeleteItem(id uint) error {
	return checkAffected(r.db.Delete(&models.InventoryItem{}, id))
}

func (r *inventoryRepository) CreateTransaction(txn *models.InventoryTransaction) (*models.InventoryItem, error) {
	var item *models.InventoryItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = moveStock(tx, txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepository) ListTransactions(itemID *uint) ([]models.InventoryTransaction, error) {
	var txns []models.InventoryTransaction
	query := r.db.Preload("Item")
	if itemID != nil {
		query = query.Where("item_id = ?", *itemID)
	}
	err := query.Order("date desc, id desc").Find(&txns).Error
	return txns, translateError(err)
}

// moveStock must run inside a transaction. It checks the movement against
// the stock on hand, inserts txn and stores the new quantity. The quantity
// update only applies while the row still holds the value that was read;
// otherwise ErrConcurrentUpdate is returned and the caller rolls back.
func moveStock(tx *gorm.DB, txn *models.InventoryTransaction) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := tx.First(&item, txn.ItemID).Error; err != nil {
		return nil, translateError(err)
	}

	next, err := models.ApplyStockMovement(item.CurrentQuantity, txn.Type, txn.Quantity)
	if err != nil {
		return nil, err
	}

	txn.CalculateTotal()
	if err := tx.Omit(clause.Associations).Create(txn).Error; err != nil {
		return nil, translateError(err)
	}

	result := tx.Model(&models.InventoryItem{}).
		Where("id = ? AND current_quantity = ?", item.ID, item.CurrentQuantity).
		Updates(map[string]interface{}{
			"current_quantity": next,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrConcurrentUpdate
	}

	item.CurrentQuantity = next
	return &item, nil
}
