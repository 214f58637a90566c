package repository

import (
	"fmt"

	"farm_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CareRepository interface {
	// Create stores the activity with its details and consumes the used
	// inventory. Either everything is written or nothing is.
	Create(activity *models.CareActivity) error
	GetByID(id uint) (*models.CareActivity, error)
	List() ([]models.CareActivity, error)
	Delete(id uint) error
}

type careRepository struct {
	db *gorm.DB
}

func NewCareRepository(db *gorm.DB) CareRepository {
	return &careRepository{db: db}
}

func (r *careRepository) Create(activity *models.CareActivity) error {
	details := activity.Details
	activity.Details = nil
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(activity).Error; err != nil {
			return translateError(err)
		}

		for i := range details {
			detail := &details[i]
			_, err := moveStock(tx, &models.InventoryTransaction{
				ItemID:   detail.InventoryItemID,
				Type:     models.TransactionOut,
				Quantity: detail.QuantityUsed,
				Date:     activity.ActivityDate,
				Note:     fmt.Sprintf("care activity #%d (%s)", activity.ID, activity.ActivityType),
			})
			if err != nil {
				return fmt.Errorf("failed to consume inventory item %d: %w", detail.InventoryItemID, err)
			}

			detail.CareActivityID = activity.ID
			if err := tx.Omit(clause.Associations).Create(detail).Error; err != nil {
				return translateError(err)
			}
		}
		return nil
	})
	activity.Details = details
	return err
}

func (r *careRepository) GetByID(id uint) (*models.CareActivity, error) {
	var activity models.CareActivity
	err := r.db.Preload("Garden").Preload("Details.InventoryItem").First(&activity, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &activity, nil
}

func (r *careRepository) List() ([]models.CareActivity, error) {
	var activities []models.CareActivity
	err := r.db.Preload("Garden").
		Preload("Details.InventoryItem").
		Order("activity_date desc, id desc").
		Find(&activities).Error
	return activities, translateError(err)
}

// Delete removes the details first so no detail row outlives its activity.
func (r *careRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("care_activity_id = ?", id).Delete(&models.CareActivityDetail{}).Error; err != nil {
			return translateError(err)
		}
		return checkAffected(tx.Delete(&models.CareActivity{}, id))
	})
}
