package services

import (
	"strings"

	"farm_manager/internal/models"
	"farm_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type GardenInput struct {
	Name         string
	Location     string
	Area         decimal.Decimal
	NumberOfBeds int
}

func (in GardenInput) validate() error {
	if in.NumberOfBeds < 0 {
		return models.NewValidationError("number_of_beds", "must not be negative")
	}
	return firstError(
		requireText("name", in.Name),
		requireText("location", in.Location),
		requireNonNegative("area", in.Area),
	)
}

// GardenService operates on the gardens owned by one user; every method
// takes the id of the signed-in user.
type GardenService interface {
	ListGardens(userID uint) ([]models.Garden, error)
	GetGarden(id, userID uint) (*models.Garden, error)
	CreateGarden(userID uint, input GardenInput) (*models.Garden, error)
	UpdateGarden(id, userID uint, input GardenInput) (*models.Garden, error)
	DeleteGarden(id, userID uint) error
}

type gardenService struct {
	gardenRepo repository.GardenRepository
}

func NewGardenService(gardenRepo repository.GardenRepository) GardenService {
	return &gardenService{gardenRepo: gardenRepo}
}

func (s *gardenService) ListGardens(userID uint) ([]models.Garden, error) {
	return s.gardenRepo.ListByUser(userID)
}

func (s *gardenService) GetGarden(id, userID uint) (*models.Garden, error) {
	return s.gardenRepo.GetByID(id, userID)
}

func (s *gardenService) CreateGarden(userID uint, input GardenInput) (*models.Garden, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	garden := &models.Garden{UserID: userID}
	input.apply(garden)
	if err := s.gardenRepo.Create(garden); err != nil {
		return nil, err
	}
	return garden, nil
}

func (s *gardenService) UpdateGarden(id, userID uint, input GardenInput) (*models.Garden, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	garden, err := s.gardenRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	input.apply(garden)
	if err := s.gardenRepo.Update(garden); err != nil {
		return nil, err
	}
	return garden, nil
}

func (s *gardenService) DeleteGarden(id, userID uint) error {
	return s.gardenRepo.Delete(id, userID)
}

func (in GardenInput) apply(g *models.Garden) {
	g.Name = strings.TrimSpace(in.Name)
	g.Location = strings.TrimSpace(in.Location)
	g.Area = in.Area
	g.NumberOfBeds = in.NumberOfBeds
}
