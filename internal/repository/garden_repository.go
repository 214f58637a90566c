package repository

import (
	"farm_manager/internal/models"

	"gorm.io/gorm"
)

// GardenRepository scopes every read and write to the owning user.
type GardenRepository interface {
	Create(garden *models.Garden) error
	GetByID(id, userID uint) (*models.Garden, error)
	ListByUser(userID uint) ([]models.Garden, error)
	Update(garden *models.Garden) error
	Delete(id, userID uint) error
	Exists(id uint) error
}

type gardenRepository struct {
	db *gorm.DB
}

func NewGardenRepository(db *gorm.DB) GardenRepository {
	return &gardenRepository{db: db}
}

func (r *gardenRepository) Create(garden *models.Garden) error {
	return translateError(r.db.Create(garden).Error)
}

func (r *gardenRepository) GetByID(id, userID uint) (*models.Garden, error) {
	var garden models.Garden
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&garden).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &garden, nil
}

func (r *gardenRepository) ListByUser(userID uint) ([]models.Garden, error) {
	var gardens []models.Garden
	err := r.db.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&gardens).Error
	return gardens, translateError(err)
}

func (r *gardenRepository) Update(garden *models.Garden) error {
	return checkAffected(r.db.Model(garden).
		Where("user_id = ?", garden.UserID).
		Select("name", "location", "area", "number_of_beds").
		Updates(garden))
}

func (r *gardenRepository) Delete(id, userID uint) error {
	return checkAffected(r.db.Where("user_id = ?", userID).Delete(&models.Garden{}, id))
}

func (r *gardenRepository) Exists(id uint) error {
	return exists(r.db, &models.Garden{}, id)
}
