package apperrors

import "fmt"

// ValidationErr signals a malformed or inconsistent customer operation:
// a missing required field, an unset id on update, or a failed commit.
type ValidationErr struct {
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

// NewValidationErr builds a ValidationErr from a printf-style message.
func NewValidationErr(format string, args ...interface{}) error {
	return &ValidationErr{message: fmt.Sprintf(format, args...)}
}

// CustomerNotFoundErr reports a lookup for an id that has no row.
type CustomerNotFoundErr struct {
	CustomerID uint
}

func (e *CustomerNotFoundErr) Error() string {
	return fmt.Sprintf("Customer with id '%d' was not found.", e.CustomerID)
}

// NewCustomerNotFound is a helper constructor.
func NewCustomerNotFound(id uint) error {
	return &CustomerNotFoundErr{CustomerID: id}
}
