package repositories

import (
	"errors"

	"gorm.io/gorm"

	"customers/internal/apperrors"
	"customers/internal/models"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// GetAll retrieves all customers from the database, in primary key order.
func (r *GORMCustomerRepository) GetAll() ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.db.Order("id").Find(&customers).Error; err != nil {
		return nil, apperrors.NewValidationErr("failed to list customers: %v", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by its ID from the database.
func (r *GORMCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewCustomerNotFound(id)
		}
		return nil, apperrors.NewValidationErr("failed to get customer %d: %v", id, err)
	}
	return &customer, nil
}

// GetByName retrieves all customers with the given name.
func (r *GORMCustomerRepository) GetByName(name string) ([]models.Customer, error) {
	return r.findBy("name = ?", name)
}

// GetByEmail retrieves all customers with the given email.
func (r *GORMCustomerRepository) GetByEmail(email string) ([]models.Customer, error) {
	return r.findBy("email = ?", email)
}

// GetByAddress retrieves all customers with the given address.
func (r *GORMCustomerRepository) GetByAddress(address string) ([]models.Customer, error) {
	return r.findBy("address = ?", address)
}

// GetByActive retrieves all customers with the given active status.
func (r *GORMCustomerRepository) GetByActive(active bool) ([]models.Customer, error) {
	return r.findBy("active = ?", active)
}

func (r *GORMCustomerRepository) findBy(query string, value interface{}) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.db.Where(query, value).Order("id").Find(&customers).Error; err != nil {
		return nil, apperrors.NewValidationErr("failed to query customers: %v", err)
	}
	return customers, nil
}

// Create inserts a new customer. The id is assigned by the store, never by
// the caller.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	customer.ID = 0
	if err := r.db.Create(customer).Error; err != nil {
		return apperrors.NewValidationErr("failed to create customer: %v", err)
	}
	return nil
}

// Update persists all current attribute values to the existing row.
func (r *GORMCustomerRepository) Update(customer *models.Customer) error {
	if customer.ID == 0 {
		return apperrors.NewValidationErr("update called with empty id field")
	}
	// Updates with a map so zero values (active=false, empty strings) are
	// written too; Save would upsert a missing row instead of failing.
	res := r.db.Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(map[string]interface{}{
		"name":     customer.Name,
		"password": customer.Password,
		"email":    customer.Email,
		"address":  customer.Address,
		"active":   customer.Active,
	})
	if res.Error != nil {
		return apperrors.NewValidationErr("failed to update customer: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewCustomerNotFound(customer.ID)
	}
	return nil
}

// Delete removes the customer row if present. Deleting an id that does not
// exist is a no-op, not an error.
func (r *GORMCustomerRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
		return apperrors.NewValidationErr("failed to delete customer: %v", err)
	}
	return nil
}
