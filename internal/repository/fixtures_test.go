package repository

import (
	"testing"
	"time"

	"farm_manager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, FullName: "Test User", PasswordHash: "x"}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func createGarden(t *testing.T, db *gorm.DB, userID uint, name string, beds int) *models.Garden {
	t.Helper()
	garden := &models.Garden{UserID: userID, Name: name, Location: "Đà Lạt", Area: d("120.5"), NumberOfBeds: beds}
	require.NoError(t, NewGardenRepository(db).Create(garden))
	return garden
}

func createItem(t *testing.T, db *gorm.DB, name string, qty string) *models.InventoryItem {
	t.Helper()
	repo := NewInventoryRepository(db)
	category := &models.InventoryCategory{Name: "Phân bón"}
	require.NoError(t, repo.CreateCategory(category))
	item := &models.InventoryItem{CategoryID: category.ID, Name: name, Unit: "kg", CurrentQuantity: d(qty)}
	require.NoError(t, repo.CreateItem(item))
	return item
}

func createCropType(t *testing.T, db *gorm.DB, name string) *models.CropType {
	t.Helper()
	cropType := &models.CropType{Name: name}
	require.NoError(t, NewCropTypeRepository(db).Create(cropType))
	return cropType
}

func createCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Phone: "0901234567"}
	require.NoError(t, NewCustomerRepository(db).Create(customer))
	return customer
}

func stockOf(t *testing.T, db *gorm.DB, itemID uint) decimal.Decimal {
	t.Helper()
	item, err := NewInventoryRepository(db).GetItem(itemID)
	require.NoError(t, err)
	return item.CurrentQuantity
}
