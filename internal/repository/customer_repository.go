package repository

import (
	"farm_manager/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return translateError(r.db.Create(customer).Error)
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("name").Find(&customers).Error
	return customers, translateError(err)
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return checkAffected(r.db.Model(customer).Select("name", "phone", "address").Updates(customer))
}

func (r *customerRepository) Delete(id uint) error {
	return checkAffected(r.db.Delete(&models.Customer{}, id))
}
