package repository

import (
	"time"

	"farm_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CropTypeRepository interface {
	Create(cropType *models.CropType) error
	GetByID(id uint) (*models.CropType, error)
	GetAll() ([]models.CropType, error)
	Update(cropType *models.CropType) error
	Delete(id uint) error
	Exists(id uint) error
}

type cropTypeRepository struct {
	db *gorm.DB
}

func NewCropTypeRepository(db *gorm.DB) CropTypeRepository {
	return &cropTypeRepository{db: db}
}

func (r *cropTypeRepository) Create(cropType *models.CropType) error {
	return translateError(r.db.Create(cropType).Error)
}

func (r *cropTypeRepository) GetByID(id uint) (*models.CropType, error) {
	var cropType models.CropType
	if err := r.db.First(&cropType, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &cropType, nil
}

func (r *cropTypeRepository) GetAll() ([]models.CropType, error) {
	var cropTypes []models.CropType
	err := r.db.Order("name").Find(&cropTypes).Error
	return cropTypes, translateError(err)
}

func (r *cropTypeRepository) Update(cropType *models.CropType) error {
	return checkAffected(r.db.Model(cropType).Select("name", "description").Updates(cropType))
}

func (r *cropTypeRepository) Delete(id uint) error {
	return checkAffected(r.db.Delete(&models.CropType{}, id))
}

func (r *cropTypeRepository) Exists(id uint) error {
	return exists(r.db, &models.CropType{}, id)
}

// HarvestFilter narrows a harvest listing. A nil Date lists every harvest.
type HarvestFilter struct {
	Date *time.Time
}

type HarvestRepository interface {
	Create(harvest *models.Harvest) error
	GetByID(id uint) (*models.Harvest, error)
	List(filter HarvestFilter) ([]models.Harvest, error)
	Update(harvest *models.Harvest) error
	Delete(id uint) error
}

type harvestRepository struct {
	db *gorm.DB
}

func NewHarvestRepository(db *gorm.DB) HarvestRepository {
	return &harvestRepository{db: db}
}

func (r *harvestRepository) Create(harvest *models.Harvest) error {
	return translateError(r.db.Omit(clause.Associations).Create(harvest).Error)
}

func (r *harvestRepository) GetByID(id uint) (*models.Harvest, error) {
	var harvest models.Harvest
	err := r.db.Preload("Garden").Preload("CropType").First(&harvest, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &harvest, nil
}

func (r *harvestRepository) List(filter HarvestFilter) ([]models.Harvest, error) {
	var harvests []models.Harvest
	query := r.db.Preload("Garden").Preload("CropType")
	if filter.Date != nil {
		start, end := dayBounds(*filter.Date, *filter.Date)
		query = query.Where("harvest_date >= ? AND harvest_date < ?", start, end)
	}
	err := query.Order("harvest_date desc, id desc").Find(&harvests).Error
	return harvests, translateError(err)
}

func (r *harvestRepository) Update(harvest *models.Harvest) error {
	return checkAffected(r.db.Model(harvest).
		Select("garden_id", "crop_type_id", "harvest_date", "quantity", "unit", "price_per_unit", "total_amount", "note").
		Updates(harvest))
}

func (r *harvestRepository) Delete(id uint) error {
	return checkAffected(r.db.Delete(&models.Harvest{}, id))
}
