package migrations

import (
	"errors"
	"fmt"

	"farm_manager/internal/models"
	"farm_manager/internal/repository"
	"farm_manager/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations creates or updates all tables.
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database migrations completed")
	return nil
}

type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

var defaultCategories = []models.InventoryCategory{
	{Name: "Phân bón", Description: "Fertilizers"},
	{Name: "Thuốc bảo vệ thực vật", Description: "Pesticides and fungicides"},
	{Name: "Vật tư", Description: "General supplies"},
}

// Seed creates the default admin account (when configured) and the default
// inventory categories. It is safe to run repeatedly.
func Seed(db *gorm.DB, opts SeedOptions, log *zap.Logger) error {
	log.Info("Creating default data...")

	if opts.AdminEmail != "" && opts.AdminPassword != "" {
		authService := services.NewAuthService(repository.NewUserRepository(db), nil, 0)
		_, err := authService.Register(services.RegisterInput{
			Email:    opts.AdminEmail,
			Password: opts.AdminPassword,
			FullName: "Administrator",
		})
		switch {
		case errors.Is(err, models.ErrDuplicate):
			log.Info("Admin user already exists", zap.String("email", opts.AdminEmail))
		case err != nil:
			return fmt.Errorf("failed to create admin user: %w", err)
		default:
			log.Info("Admin user created", zap.String("email", opts.AdminEmail))
		}
	}

	categories := repository.NewInventoryRepository(db)
	existing, err := categories.ListCategories()
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for i := range defaultCategories {
			category := defaultCategories[i]
			if err := categories.CreateCategory(&category); err != nil {
				return fmt.Errorf("failed to create category %q: %w", category.Name, err)
			}
		}
		log.Info("Default inventory categories created", zap.Int("count", len(defaultCategories)))
	}

	return nil
}
