package services

import (
	"strings"
	"time"

	"farm_manager/internal/models"
	"farm_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type WorkerInput struct {
	Name       string
	Phone      string
	HourlyRate decimal.Decimal
}

type LaborRecordInput struct {
	WorkerID    uint
	WorkDate    time.Time
	HoursWorked decimal.Decimal
	Note        string
}

type LaborService interface {
	ListWorkers() ([]models.Worker, error)
	CreateWorker(input WorkerInput) (*models.Worker, error)
	UpdateWorker(id uint, input WorkerInput) (*models.Worker, error)
	DeleteWorker(id uint) error

	ListRecords() ([]models.LaborRecord, error)
	// CreateRecord bills the hours at the worker's current hourly rate.
	CreateRecord(input LaborRecordInput) (*models.LaborRecord, error)
	UpdatePaymentStatus(id uint, status models.LaborPaymentStatus) (*models.LaborRecord, error)
	DeleteRecord(id uint) error
}

type laborService struct {
	workerRepo repository.WorkerRepository
	recordRepo repository.LaborRecordRepository
}

func NewLaborService(workerRepo repository.WorkerRepository, recordRepo repository.LaborRecordRepository) LaborService {
	return &laborService{workerRepo: workerRepo, recordRepo: recordRepo}
}

func (s *laborService) ListWorkers() ([]models.Worker, error) {
	return s.workerRepo.GetAll()
}

func (s *laborService) CreateWorker(input WorkerInput) (*models.Worker, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	worker := &models.Worker{}
	input.apply(worker)
	if err := s.workerRepo.Create(worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *laborService) UpdateWorker(id uint, input WorkerInput) (*models.Worker, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	worker, err := s.workerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	input.apply(worker)
	if err := s.workerRepo.Update(worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *laborService) DeleteWorker(id uint) error {
	return s.workerRepo.Delete(id)
}

func (s *laborService) ListRecords() ([]models.LaborRecord, error) {
	return s.recordRepo.GetAll()
}

func (s *laborService) CreateRecord(input LaborRecordInput) (*models.LaborRecord, error) {
	if err := firstError(
		requireID("worker_id", input.WorkerID),
		requirePositive("hours_worked", input.HoursWorked),
	); err != nil {
		return nil, err
	}
	worker, err := s.workerRepo.GetByID(input.WorkerID)
	if err != nil {
		return nil, mustExist("worker_id", err)
	}

	record := models.NewLaborRecord(worker, input.WorkDate, input.HoursWorked, input.Note)
	if err := s.recordRepo.Create(record); err != nil {
		return nil, err
	}
	return s.recordRepo.GetByID(record.ID)
}

func (s *laborService) UpdatePaymentStatus(id uint, status models.LaborPaymentStatus) (*models.LaborRecord, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("payment_status", "must be one of unpaid, paid")
	}
	if err := s.recordRepo.UpdatePaymentStatus(id, status); err != nil {
		return nil, err
	}
	return s.recordRepo.GetByID(id)
}

func (s *laborService) DeleteRecord(id uint) error {
	return s.recordRepo.Delete(id)
}

func (in WorkerInput) validate() error {
	return firstError(
		requireText("name", in.Name),
		requirePositive("hourly_rate", in.HourlyRate),
	)
}

func (in WorkerInput) apply(w *models.Worker) {
	w.Name = strings.TrimSpace(in.Name)
	w.Phone = strings.TrimSpace(in.Phone)
	w.HourlyRate = in.HourlyRate
}
