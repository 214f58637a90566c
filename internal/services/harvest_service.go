package services

import (
	"strings"
	"time"

	"farm_manager/internal/models"
	"farm_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type CropTypeInput struct {
	Name        string
	Description string
}

type HarvestInput struct {
	GardenID     uint
	CropTypeID   uint
	HarvestDate  time.Time
	Quantity     decimal.Decimal
	Unit         string
	PricePerUnit decimal.Decimal
	Note         string
}

func (in HarvestInput) validate() error {
	return firstError(
		requireID("garden_id", in.GardenID),
		requireID("crop_type_id", in.CropTypeID),
		requirePositive("quantity", in.Quantity),
		requireText("unit", in.Unit),
		requireNonNegative("price_per_unit", in.PricePerUnit),
	)
}

type HarvestService interface {
	ListCropTypes() ([]models.CropType, error)
	CreateCropType(input CropTypeInput) (*models.CropType, error)
	UpdateCropType(id uint, input CropTypeInput) (*models.CropType, error)
	DeleteCropType(id uint) error

	// ListHarvests lists every harvest, or only those of one day when day
	// is set.
	ListHarvests(day *time.Time) ([]models.Harvest, error)
	CreateHarvest(input HarvestInput) (*models.Harvest, error)
	UpdateHarvest(id uint, input HarvestInput) (*models.Harvest, error)
	DeleteHarvest(id uint) error
}

type harvestService struct {
	cropTypeRepo repository.CropTypeRepository
	harvestRepo  repository.HarvestRepository
	gardenRepo   repository.GardenRepository
}

func NewHarvestService(cropTypeRepo repository.CropTypeRepository, harvestRepo repository.HarvestRepository, gardenRepo repository.GardenRepository) HarvestService {
	return &harvestService{cropTypeRepo: cropTypeRepo, harvestRepo: harvestRepo, gardenRepo: gardenRepo}
}

func (s *harvestService) ListCropTypes() ([]models.CropType, error) {
	return s.cropTypeRepo.GetAll()
}

func (s *harvestService) CreateCropType(input CropTypeInput) (*models.CropType, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}
	cropType := &models.CropType{Name: strings.TrimSpace(input.Name), Description: input.Description}
	if err := s.cropTypeRepo.Create(cropType); err != nil {
		return nil, err
	}
	return cropType, nil
}

func (s *harvestService) UpdateCropType(id uint, input CropTypeInput) (*models.CropType, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}
	cropType, err := s.cropTypeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	cropType.Name = strings.TrimSpace(input.Name)
	cropType.Description = input.Description
	if err := s.cropTypeRepo.Update(cropType); err != nil {
		return nil, err
	}
	return cropType, nil
}

func (s *harvestService) DeleteCropType(id uint) error {
	return s.cropTypeRepo.Delete(id)
}

func (s *harvestService) ListHarvests(day *time.Time) ([]models.Harvest, error) {
	return s.harvestRepo.List(repository.HarvestFilter{Date: day})
}

func (s *harvestService) CreateHarvest(input HarvestInput) (*models.Harvest, error) {
	if err := s.checkInput(input); err != nil {
		return nil, err
	}
	harvest := &models.Harvest{}
	input.apply(harvest)
	if err := s.harvestRepo.Create(harvest); err != nil {
		return nil, err
	}
	return s.harvestRepo.GetByID(harvest.ID)
}

func (s *harvestService) UpdateHarvest(id uint, input HarvestInput) (*models.Harvest, error) {
	if err := s.checkInput(input); err != nil {
		return nil, err
	}
	harvest, err := s.harvestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	input.apply(harvest)
	harvest.Garden, harvest.CropType = nil, nil
	if err := s.harvestRepo.Update(harvest); err != nil {
		return nil, err
	}
	return s.harvestRepo.GetByID(id)
}

func (s *harvestService) DeleteHarvest(id uint) error {
	return s.harvestRepo.Delete(id)
}

func (s *harvestService) checkInput(input HarvestInput) error {
	if err := input.validate(); err != nil {
		return err
	}
	if err := mustExist("garden_id", s.gardenRepo.Exists(input.GardenID)); err != nil {
		return err
	}
	return mustExist("crop_type_id", s.cropTypeRepo.Exists(input.CropTypeID))
}

// apply copies the input and recomputes the total; a client-sent total is
// never trusted.
func (in HarvestInput) apply(h *models.Harvest) {
	h.GardenID = in.GardenID
	h.CropTypeID = in.CropTypeID
	h.HarvestDate = in.HarvestDate
	h.Quantity = in.Quantity
	h.Unit = strings.TrimSpace(in.Unit)
	h.PricePerUnit = in.PricePerUnit
	h.Note = in.Note
	h.CalculateTotal()
}
