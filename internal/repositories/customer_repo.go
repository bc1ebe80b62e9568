package repositories

import (
	"customers/internal/models"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetByID(id uint) (*models.Customer, error)
	GetByName(name string) ([]models.Customer, error)
	GetByEmail(email string) ([]models.Customer, error)
	GetByAddress(address string) ([]models.Customer, error)
	GetByActive(active bool) ([]models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id uint) error
}
