// Package testutil provides fake customers for tests.
package testutil

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"customers/internal/models"
)

// NewCustomer builds an unsaved customer with unique fake attributes and a
// randomly chosen active flag.
func NewCustomer() *models.Customer {
	tag := uuid.NewString()[:8]
	active := rand.Intn(2) == 0
	return &models.Customer{
		Name:     fmt.Sprintf("Customer %s", tag),
		Password: fmt.Sprintf("secret-%s", tag),
		Email:    fmt.Sprintf("customer-%s@example.com", tag),
		Address:  fmt.Sprintf("%d Main Street, Springfield", rand.Intn(9000)+100),
		Active:   &active,
	}
}

// NewCustomerWithActive builds an unsaved customer with a fixed active flag.
func NewCustomerWithActive(active bool) *models.Customer {
	customer := NewCustomer()
	customer.Active = &active
	return customer
}

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool {
	return &v
}
