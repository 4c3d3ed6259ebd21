package handler

import (
	"log/slog"
	"net/http"

	"tapadmin/internal/delivery/http/response"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RewardFieldInput addresses one physical reward document and the field edit
// to apply to it.
type RewardFieldInput struct {
	CollectionPath string `json:"collectionPath" validate:"required"`
	Path           string `json:"path" validate:"required"`
	Value          any    `json:"value"`
}

// RewardDeleteInput addresses one physical reward document to delete.
type RewardDeleteInput struct {
	CollectionPath string `json:"collectionPath" validate:"required"`
}

// RewardBulkDeleteInput addresses the reward copies of a bulk delete.
type RewardBulkDeleteInput struct {
	CollectionPaths []string `json:"collectionPaths" validate:"required,min=1"`
}

// RewardHandler holds dependencies for the merged reward view handlers.
type RewardHandler struct {
	uc     usecase.RewardUsecase
	logger *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler, injected by Fx.
func NewRewardHandler(uc usecase.RewardUsecase, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the merged three-location reward list request.
func (h *RewardHandler) List(c echo.Context) error {
	var query usecase.ListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}

	result, err := h.uc.ListRewards(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Rewards retrieved successfully")
}

// UpdateField handles a targeted edit of one reward copy. Collection paths
// contain slashes, so the document address travels in the body rather than
// the route.
func (h *RewardHandler) UpdateField(c echo.Context) error {
	var input *RewardFieldInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field update input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateRewardField(c.Request().Context(), input.CollectionPath, input.Path, input.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reward updated successfully")
}

// Delete handles the single reward copy delete request.
func (h *RewardHandler) Delete(c echo.Context) error {
	var input *RewardDeleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.DeleteReward(c.Request().Context(), input.CollectionPath); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reward deleted successfully")
}

// BulkDelete handles the concurrent multi-copy delete request.
func (h *RewardHandler) BulkDelete(c echo.Context) error {
	var input *RewardBulkDeleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk delete input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	report, err := h.uc.DeleteRewards(c.Request().Context(), input.CollectionPaths)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Reward bulk delete finished")
}
