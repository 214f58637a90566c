package services

import (
	"testing"

	"farm_manager/internal/events"
	"farm_manager/internal/models"
	"farm_manager/internal/repository"
	"farm_manager/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInventoryService(t *testing.T) (InventoryService, *mockPublisher) {
	t.Helper()
	publisher := new(mockPublisher)
	db := testutil.NewDB(t)
	return NewInventoryService(repository.NewInventoryRepository(db), publisher, zap.NewNop()), publisher
}

func TestStockAdjustment(t *testing.T) {
	service, publisher := newInventoryService(t)
	publisher.On("Publish", events.InventoryTransactionCreated, mock.Anything, mock.Anything).Return(nil).Once()

	category, err := service.CreateCategory(CategoryInput{Name: "Phân bón"})
	require.NoError(t, err)
	item, err := service.CreateItem(ItemInput{CategoryID: category.ID, Name: "NPK", Unit: "kg", InitialQuantity: d("10")})
	require.NoError(t, err)
	require.NotNil(t, item.Category)

	_, _, err = service.CreateTransaction(TransactionInput{
		ItemID: item.ID, Type: models.TransactionOut, Quantity: d("15"), Price: d("12000"), Date: day("2024-05-02"),
	})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	txn, updated, err := service.CreateTransaction(TransactionInput{
		ItemID: item.ID, Type: models.TransactionOut, Quantity: d("4"), Price: d("12000"), Date: day("2024-05-02"),
	})
	require.NoError(t, err)
	assert.True(t, updated.CurrentQuantity.Equal(d("6")))
	assert.True(t, txn.Total.Equal(d("48000")))
	publisher.AssertExpectations(t)

	items, err := service.ListItems(nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].CurrentQuantity.Equal(d("6")))
}

func TestCreateTransactionValidation(t *testing.T) {
	service, publisher := newInventoryService(t)

	_, _, err := service.CreateTransaction(TransactionInput{ItemID: 1, Type: "transfer", Quantity: d("1")})
	assert.True(t, models.IsValidation(err))
	_, _, err = service.CreateTransaction(TransactionInput{ItemID: 1, Type: models.TransactionIn, Quantity: d("0")})
	assert.True(t, models.IsValidation(err))
	_, _, err = service.CreateTransaction(TransactionInput{ItemID: 1, Type: models.TransactionIn, Quantity: d("1"), Price: d("-1")})
	assert.True(t, models.IsValidation(err))
	_, _, err = service.CreateTransaction(TransactionInput{ItemID: 42, Type: models.TransactionIn, Quantity: d("1"), Date: day("2024-05-02")})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "item_id", verr.Field)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestItemRequiresExistingCategory(t *testing.T) {
	service, _ := newInventoryService(t)

	_, err := service.CreateItem(ItemInput{CategoryID: 7, Name: "NPK", Unit: "kg"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category_id", verr.Field)

	_, err = service.CreateItem(ItemInput{CategoryID: 7, Name: "NPK", Unit: "kg", InitialQuantity: d("-1")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "current_quantity", verr.Field)
}

func TestUpdateItemKeepsStock(t *testing.T) {
	service, _ := newInventoryService(t)
	category, err := service.CreateCategory(CategoryInput{Name: "Phân bón"})
	require.NoError(t, err)
	item, err := service.CreateItem(ItemInput{CategoryID: category.ID, Name: "NPK", Unit: "kg", InitialQuantity: d("10")})
	require.NoError(t, err)

	updated, err := service.UpdateItem(item.ID, ItemInput{CategoryID: category.ID, Name: "NPK 20-20-15", Unit: "bao", InitialQuantity: d("999")})
	require.NoError(t, err)
	assert.Equal(t, "NPK 20-20-15", updated.Name)
	assert.Equal(t, "bao", updated.Unit)
	assert.True(t, updated.CurrentQuantity.Equal(d("10")))

	renamed, err := service.UpdateCategory(category.ID, CategoryInput{Name: "Phân hữu cơ"})
	require.NoError(t, err)
	assert.Equal(t, "Phân hữu cơ", renamed.Name)
	_, err = service.UpdateCategory(999, CategoryInput{Name: "x"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
