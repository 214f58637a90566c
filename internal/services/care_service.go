package services

import (
	"time"

	"farm_manager/internal/events"
	"farm_manager/internal/models"
	"farm_manager/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CareDetailInput struct {
	InventoryItemID uint
	QuantityUsed    decimal.Decimal
}

type CareActivityInput struct {
	GardenID     uint
	ActivityType models.ActivityType
	ActivityDate time.Time
	Note         string
	Details      []CareDetailInput
}

type CareService interface {
	ListActivities() ([]models.CareActivity, error)
	// CreateActivity records the activity and deducts every used item from
	// stock. If any item lacks stock nothing is written.
	CreateActivity(input CareActivityInput) (*models.CareActivity, error)
	DeleteActivity(id uint) error
}

type careService struct {
	careRepo   repository.CareRepository
	gardenRepo repository.GardenRepository
	publisher  events.Publisher
	log        *zap.Logger
}

func NewCareService(careRepo repository.CareRepository, gardenRepo repository.GardenRepository, publisher events.Publisher, log *zap.Logger) CareService {
	return &careService{careRepo: careRepo, gardenRepo: gardenRepo, publisher: publisher, log: log}
}

func (s *careService) ListActivities() ([]models.CareActivity, error) {
	return s.careRepo.List()
}

func (s *careService) CreateActivity(input CareActivityInput) (*models.CareActivity, error) {
	if !input.ActivityType.Valid() {
		return nil, models.NewValidationError("activity_type", "must be one of fertilize, spray")
	}
	if err := requireID("garden_id", input.GardenID); err != nil {
		return nil, err
	}
	for _, d := range input.Details {
		if err := firstError(
			requireID("details.inventory_item_id", d.InventoryItemID),
			requirePositive("details.quantity_used", d.QuantityUsed),
		); err != nil {
			return nil, err
		}
	}
	if err := mustExist("garden_id", s.gardenRepo.Exists(input.GardenID)); err != nil {
		return nil, err
	}

	activity := &models.CareActivity{
		GardenID:     input.GardenID,
		ActivityType: input.ActivityType,
		ActivityDate: input.ActivityDate,
		Note:         input.Note,
	}
	for _, d := range input.Details {
		activity.Details = append(activity.Details, models.CareActivityDetail{
			InventoryItemID: d.InventoryItemID,
			QuantityUsed:    d.QuantityUsed,
		})
	}

	if err := s.careRepo.Create(activity); err != nil {
		return nil, mustExist("details.inventory_item_id", err)
	}

	created, err := s.careRepo.GetByID(activity.ID)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, s.log, events.CareActivityCreated, created.ID, created)
	return created, nil
}

func (s *careService) DeleteActivity(id uint) error {
	return s.careRepo.Delete(id)
}
