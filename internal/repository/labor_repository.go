package repository

import (
	"farm_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkerRepository interface {
	Create(worker *models.Worker) error
	GetByID(id uint) (*models.Worker, error)
	GetAll() ([]models.Worker, error)
	Update(worker *models.Worker) error
	Delete(id uint) error
}

type workerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(worker *models.Worker) error {
	return translateError(r.db.Create(worker).Error)
}

func (r *workerRepository) GetByID(id uint) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.First(&worker, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &worker, nil
}

func (r *workerRepository) GetAll() ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Order("name").Find(&workers).Error
	return workers, translateError(err)
}

func (r *workerRepository) Update(worker *models.Worker) error {
	return checkAffected(r.db.Model(worker).Select("name", "phone", "hourly_rate").Updates(worker))
}

func (r *workerRepository) Delete(id uint) error {
	return checkAffected(r.db.Delete(&models.Worker{}, id))
}

type LaborRecordRepository interface {
	Create(record *models.LaborRecord) error
	GetByID(id uint) (*models.LaborRecord, error)
	GetAll() ([]models.LaborRecord, error)
	UpdatePaymentStatus(id uint, status models.LaborPaymentStatus) error
	Delete(id uint) error
}

type laborRecordRepository struct {
	db *gorm.DB
}

func NewLaborRecordRepository(db *gorm.DB) LaborRecordRepository {
	return &laborRecordRepository{db: db}
}

func (r *laborRecordRepository) Create(record *models.LaborRecord) error {
	return translateError(r.db.Omit(clause.Associations).Create(record).Error)
}

func (r *laborRecordRepository) GetByID(id uint) (*models.LaborRecord, error) {
	var record models.LaborRecord
	if err := r.db.Preload("Worker").First(&record, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (r *laborRecordRepository) GetAll() ([]models.LaborRecord, error) {
	var records []models.LaborRecord
	err := r.db.Preload("Worker").Order("work_date desc, id desc").Find(&records).Error
	return records, translateError(err)
}

func (r *laborRecordRepository) UpdatePaymentStatus(id uint, status models.LaborPaymentStatus) error {
	return checkAffected(r.db.Model(&models.LaborRecord{}).Where("id = ?", id).Update("payment_status", status))
}

func (r *laborRecordRepository) Delete(id uint) error {
	return checkAffected(r.db.Delete(&models.LaborRecord{}, id))
}
