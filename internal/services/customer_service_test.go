package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"customers/internal/apperrors"
	"customers/internal/models"
	"customers/internal/services"
	"customers/internal/testutil"
)

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	args := m.Called()
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByName(name string) ([]models.Customer, error) {
	args := m.Called(name)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(email string) ([]models.Customer, error) {
	args := m.Called(email)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByAddress(address string) ([]models.Customer, error) {
	args := m.Called(address)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByActive(active bool) ([]models.Customer, error) {
	args := m.Called(active)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCustomerService_ListCustomers_NoFilter(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	expected := []models.Customer{*testutil.NewCustomer(), *testutil.NewCustomer()}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	customers, err := service.ListCustomers(services.ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_ListCustomers_ByName(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	expected := []models.Customer{*testutil.NewCustomer()}
	mockRepo.On("GetByName", "John Doe").Return(expected, nil).Once()

	customers, err := service.ListCustomers(services.ListFilter{Name: "John Doe"})

	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_ListCustomers_ByEmail(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	expected := []models.Customer{*testutil.NewCustomer()}
	mockRepo.On("GetByEmail", "john@example.com").Return(expected, nil).Once()

	customers, err := service.ListCustomers(services.ListFilter{Email: "john@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_ListCustomers_ByAddress(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	expected := []models.Customer{*testutil.NewCustomer()}
	mockRepo.On("GetByAddress", "42 Elm Street").Return(expected, nil).Once()

	customers, err := service.ListCustomers(services.ListFilter{Address: "42 Elm Street"})

	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_ListCustomers_ByActive(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	expected := []models.Customer{*testutil.NewCustomerWithActive(true)}
	mockRepo.On("GetByActive", true).Return(expected, nil).Once()

	customers, err := service.ListCustomers(services.ListFilter{Active: "true"})

	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_ListCustomers_InvalidActive(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	customers, err := service.ListCustomers(services.ListFilter{Active: "not a boolean"})

	assert.Nil(t, customers)
	var validation *apperrors.ValidationErr
	assert.ErrorAs(t, err, &validation)
	// The repository must never be hit with an unparsed filter value.
	mockRepo.AssertNotCalled(t, "GetByActive", mock.Anything)
}

func TestCustomerService_ListCustomers_NamePrecedesActive(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	expected := []models.Customer{*testutil.NewCustomer()}
	mockRepo.On("GetByName", "Jane").Return(expected, nil).Once()

	customers, err := service.ListCustomers(services.ListFilter{Name: "Jane", Active: "true"})

	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
	mockRepo.AssertNotCalled(t, "GetByActive", mock.Anything)
}

func TestCustomerService_GetCustomerByID(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	expected := testutil.NewCustomer()
	expected.ID = 1

	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	customer, err := service.GetCustomerByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, customer)

	mockRepo.On("GetByID", uint(99)).Return(nil, apperrors.NewCustomerNotFound(99)).Once()
	customer, err = service.GetCustomerByID(99)
	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.Contains(t, err.Error(), "was not found")
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	customer := testutil.NewCustomer()

	mockRepo.On("Create", customer).Return(nil).Once()
	assert.NoError(t, service.CreateCustomer(customer))

	mockRepo.On("Create", customer).Return(apperrors.NewValidationErr("failed to create customer")).Once()
	assert.Error(t, service.CreateCustomer(customer))
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	customer := testutil.NewCustomer()
	customer.ID = 1

	mockRepo.On("Update", customer).Return(nil).Once()
	assert.NoError(t, service.UpdateCustomer(customer))
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := services.NewCustomerService(mockRepo)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteCustomer(1))
	mockRepo.AssertExpectations(t)
}
