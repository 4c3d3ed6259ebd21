package handler

import (
	"log/slog"
	"net/http"

	"tapadmin/internal/delivery/http/response"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MembershipHandler holds dependencies for membership-tier handlers.
type MembershipHandler struct {
	uc     usecase.MembershipUsecase
	logger *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler, injected by Fx.
func NewMembershipHandler(uc usecase.MembershipUsecase, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListTiers handles the tier list request for one merchant.
func (h *MembershipHandler) ListTiers(c echo.Context) error {
	tiers, err := h.uc.ListTiers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tiers, "Tiers retrieved successfully")
}

// SaveTier handles tier creation and updates.
func (h *MembershipHandler) SaveTier(c echo.Context) error {
	var input *usecase.TierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tier input")
	}

	tier, err := h.uc.SaveTier(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tier, "Tier saved successfully")
}

// DeleteTier handles tier deletion.
func (h *MembershipHandler) DeleteTier(c echo.Context) error {
	if err := h.uc.DeleteTier(c.Request().Context(), c.Param("id"), c.Param("tierId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tier deleted successfully")
}

// RecalculateTiers reassigns every customer of the merchant to the highest
// tier they qualify for.
func (h *MembershipHandler) RecalculateTiers(c echo.Context) error {
	changes, err := h.uc.RecalculateTiers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, changes, "Tier recalculation finished")
}
