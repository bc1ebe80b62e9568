package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"customers/internal/apperrors"
	"customers/internal/models"
	"customers/internal/services"
)

// ServiceName is reported by the index endpoint.
const ServiceName = "Customer REST API Service"

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)

	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", h.HandleListCustomers)
	customerRoutes.Get("/:id", h.HandleGetCustomerByID)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", h.HandleDeleteCustomer)
}

// HandleIndex returns service metadata.
func (h *CustomerHandler) HandleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    ServiceName,
		"version": "1.0",
		"paths":   "/customers",
	})
}

// HandleListCustomers retrieves all customers, optionally filtered by one of
// the name, email, address or active query parameters (exact match).
func (h *CustomerHandler) HandleListCustomers(c *fiber.Ctx) error {
	filter := services.ListFilter{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Address: c.Query("address"),
		Active:  c.Query("active"),
	}

	customers, err := h.service.ListCustomers(filter)
	if err != nil {
		return respondError(c, err, "Could not retrieve customers")
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID retrieves a single customer by its ID.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return notFoundResponse(c, c.Params("id"))
	}

	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return respondError(c, err, "Could not retrieve customer")
	}
	return c.JSON(customer)
}

// HandleCreateCustomer creates a new customer and points at its read URL via
// the Location header.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	if !hasJSONContentType(c) {
		return unsupportedMediaTypeResponse(c)
	}

	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		logrus.Errorf("Error parsing create request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(customer); err != nil {
		return validationFailedResponse(c, err)
	}

	// The store assigns the id; a client-supplied one is ignored.
	customer.ID = 0
	if err := h.service.CreateCustomer(&customer); err != nil {
		return respondError(c, err, "Could not create customer")
	}

	c.Location(fmt.Sprintf("/customers/%d", customer.ID))
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer replaces all mutable fields of an existing customer.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return notFoundResponse(c, c.Params("id"))
	}

	// The row must exist before it can be replaced.
	if _, err := h.service.GetCustomerByID(id); err != nil {
		return respondError(c, err, "Could not retrieve customer")
	}

	if !hasJSONContentType(c) {
		return unsupportedMediaTypeResponse(c)
	}

	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		logrus.Errorf("Error parsing update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(customer); err != nil {
		return validationFailedResponse(c, err)
	}

	customer.ID = id
	if err := h.service.UpdateCustomer(&customer); err != nil {
		return respondError(c, err, "Could not update customer")
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer removes a customer. Deleting an id that does not
// exist still succeeds with no content.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return notFoundResponse(c, c.Params("id"))
	}

	if err := h.service.DeleteCustomer(id); err != nil {
		return respondError(c, err, "Could not delete customer")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// customerID parses the id path parameter.
func customerID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func hasJSONContentType(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

func unsupportedMediaTypeResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
		"message": fmt.Sprintf("Content-Type must be %s", fiber.MIMEApplicationJSON),
	})
}

func notFoundResponse(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": fmt.Sprintf("Customer with id '%s' was not found.", id),
	})
}

func validationFailedResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// respondError translates entity errors to HTTP status codes: not-found to
// 404, validation failures to 400, anything else to a generic 500.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var notFound *apperrors.CustomerNotFoundErr
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound.Error(),
		})
	}

	var validation *apperrors.ValidationErr
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validation.Error(),
		})
	}

	logrus.Errorf("%s: %v", fallback, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallback,
	})
}
