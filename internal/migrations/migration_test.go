package migrations

import (
	"testing"

	"farm_manager/internal/database"
	"farm_manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestRunMigrationsAndSeed(t *testing.T) {
	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	log := zap.NewNop()

	require.NoError(t, RunMigrations(db, log))
	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}

	opts := SeedOptions{AdminEmail: "Admin@Farm.vn", AdminPassword: "changeme"}
	require.NoError(t, Seed(db, opts, log))
	require.NoError(t, Seed(db, opts, log), "seeding twice must not fail")

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@farm.vn", users[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("changeme")))

	var categories int64
	require.NoError(t, db.Model(&models.InventoryCategory{}).Count(&categories).Error)
	assert.Equal(t, int64(len(defaultCategories)), categories)
}

func TestSeedWithoutAdmin(t *testing.T) {
	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, RunMigrations(db, zap.NewNop()))

	require.NoError(t, Seed(db, SeedOptions{}, zap.NewNop()))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}
