package repository

import (
	"testing"

	"farm_manager/internal/models"
	"farm_manager/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateTransactionRejectsOverdraw(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInventoryRepository(db)
	item := createItem(t, db, "NPK 16-16-8", "10")

	_, err := repo.CreateTransaction(&models.InventoryTransaction{
		ItemID: item.ID, Type: models.TransactionOut, Quantity: d("15"), Price: d("12000"), Date: day("2024-05-02"),
	})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.True(t, stockOf(t, db, item.ID).Equal(d("10")), "stock must be unchanged")

	txns, err := repo.ListTransactions(&item.ID)
	require.NoError(t, err)
	assert.Empty(t, txns, "a rejected movement must not be recorded")
}

func TestCreateTransactionAppliesMovement(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInventoryRepository(db)
	item := createItem(t, db, "NPK 16-16-8", "10")

	txn := &models.InventoryTransaction{
		ItemID: item.ID, Type: models.TransactionOut, Quantity: d("4"), Price: d("12000"), Date: day("2024-05-02"),
	}
	updated, err := repo.CreateTransaction(txn)
	require.NoError(t, err)
	assert.True(t, updated.CurrentQuantity.Equal(d("6")))
	assert.True(t, txn.Total.Equal(d("48000")))
	assert.True(t, stockOf(t, db, item.ID).Equal(d("6")))

	_, err = repo.CreateTransaction(&models.InventoryTransaction{
		ItemID: item.ID, Type: models.TransactionIn, Quantity: d("2.5"), Price: d("11000"), Date: day("2024-05-03"),
	})
	require.NoError(t, err)
	assert.True(t, stockOf(t, db, item.ID).Equal(d("8.5")))

	txns, err := repo.ListTransactions(&item.ID)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, models.TransactionIn, txns[0].Type, "newest first")
	require.NotNil(t, txns[0].Item)
	assert.Equal(t, "NPK 16-16-8", txns[0].Item.Name)
}

func TestCreateTransactionUnknownItem(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := NewInventoryRepository(db).CreateTransaction(&models.InventoryTransaction{
		ItemID: 404, Type: models.TransactionIn, Quantity: d("1"), Date: day("2024-05-02"),
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateTransactionDetectsConcurrentWrite(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInventoryRepository(db)
	item := createItem(t, db, "Ure", "10")

	// Another writer changes the stock between the read and the write.
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:race", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "inventory_transactions" {
			tx.Session(&gorm.Session{NewDB: true}).
				Exec("UPDATE inventory_items SET current_quantity = 99 WHERE id = ?", item.ID)
		}
	}))

	_, err := repo.CreateTransaction(&models.InventoryTransaction{
		ItemID: item.ID, Type: models.TransactionOut, Quantity: d("4"), Date: day("2024-05-02"),
	})
	assert.ErrorIs(t, err, models.ErrConcurrentUpdate)

	require.NoError(t, db.Callback().Create().Remove("test:race"))
	assert.True(t, stockOf(t, db, item.ID).Equal(d("10")), "the whole movement must roll back")
	txns, err := repo.ListTransactions(&item.ID)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestItemsFilterAndUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInventoryRepository(db)
	fertilizer := createItem(t, db, "NPK", "5")
	other := createItem(t, db, "Ure", "3")

	items, err := repo.ListItems(&fertilizer.CategoryID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "NPK", items[0].Name)
	require.NotNil(t, items[0].Category)

	all, err := repo.ListItems(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	other.Name = "Urea"
	other.CurrentQuantity = d("1000")
	require.NoError(t, repo.UpdateItem(other))
	got, err := repo.GetItem(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Urea", got.Name)
	assert.True(t, got.CurrentQuantity.Equal(d("3")), "stock only moves through transactions")

	assert.ErrorIs(t, repo.UpdateItem(&models.InventoryItem{ID: 999, Name: "x"}), models.ErrNotFound)
}

func TestDeleteReferencedCategory(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewInventoryRepository(db)
	item := createItem(t, db, "NPK", "5")

	err := repo.DeleteCategory(item.CategoryID)
	assert.ErrorIs(t, err, models.ErrReferenced)

	require.NoError(t, repo.DeleteItem(item.ID))
	require.NoError(t, repo.DeleteCategory(item.CategoryID))
	assert.ErrorIs(t, repo.DeleteCategory(item.CategoryID), models.ErrNotFound)
}
