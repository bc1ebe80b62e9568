package services

import (
	"strconv"

	"customers/internal/apperrors"
	"customers/internal/models"
	"customers/internal/repositories"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// ListFilter carries the optional attribute filters for ListCustomers.
// Values come straight from query parameters; empty means not set.
type ListFilter struct {
	Name    string
	Email   string
	Address string
	Active  string
}

// ListCustomers retrieves customers matching the filter. At most one
// attribute is applied, with precedence name, email, address, active.
// Without any filter every customer is returned.
func (s *CustomerService) ListCustomers(filter ListFilter) ([]models.Customer, error) {
	switch {
	case filter.Name != "":
		return s.repo.GetByName(filter.Name)
	case filter.Email != "":
		return s.repo.GetByEmail(filter.Email)
	case filter.Address != "":
		return s.repo.GetByAddress(filter.Address)
	case filter.Active != "":
		active, err := strconv.ParseBool(filter.Active)
		if err != nil {
			return nil, apperrors.NewValidationErr("invalid value for active filter: %q", filter.Active)
		}
		return s.repo.GetByActive(active)
	}
	return s.repo.GetAll()
}

// GetCustomerByID retrieves a single customer by its ID.
func (s *CustomerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

// CreateCustomer creates a new customer.
func (s *CustomerService) CreateCustomer(customer *models.Customer) error {
	return s.repo.Create(customer)
}

// UpdateCustomer updates an existing customer.
func (s *CustomerService) UpdateCustomer(customer *models.Customer) error {
	return s.repo.Update(customer)
}

// DeleteCustomer deletes a customer by its ID.
func (s *CustomerService) DeleteCustomer(id uint) error {
	return s.repo.Delete(id)
}
