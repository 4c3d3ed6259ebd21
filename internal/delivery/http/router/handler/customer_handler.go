package handler

import (
	"log/slog"
	"net/http"

	"tapadmin/internal/delivery/http/response"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer administration handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the aggregated customer list request. forceRefresh=true
// bypasses the aggregate cache.
func (h *CustomerHandler) List(c echo.Context) error {
	var query usecase.ListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}

	forceRefresh := c.QueryParam("forceRefresh") == "true"

	rows, err := h.uc.ListCustomers(c.Request().Context(), query, forceRefresh)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Customers retrieved successfully")
}

// Get handles the customer drill-down request.
func (h *CustomerHandler) Get(c echo.Context) error {
	detail, err := h.uc.GetCustomerDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Customer retrieved successfully")
}

// UpdateField handles a targeted customer profile field edit.
func (h *CustomerHandler) UpdateField(c echo.Context) error {
	var input *FieldUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field update input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateCustomerField(c.Request().Context(), c.Param("id"), input.Path, input.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer updated successfully")
}

// Delete handles the customer profile delete request.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted successfully")
}
