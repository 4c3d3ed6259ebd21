package handler

import (
	"log/slog"
	"net/http"

	"tapadmin/internal/delivery/http/response"
	"tapadmin/internal/domain/entity"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FieldUpdateInput is a single targeted (possibly dotted) field edit.
type FieldUpdateInput struct {
	Path  string `json:"path" validate:"required"`
	Value any    `json:"value"`
}

// BulkDeleteInput carries the ids of a bulk delete request.
type BulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// MerchantHandler holds dependencies for merchant administration handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the merchant list request.
func (h *MerchantHandler) List(c echo.Context) error {
	var query usecase.ListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}

	merchants, err := h.uc.ListMerchants(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchants, "Merchants retrieved successfully")
}

// Get handles the single merchant request.
func (h *MerchantHandler) Get(c echo.Context) error {
	merchant, err := h.uc.GetMerchant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchant, "Merchant retrieved successfully")
}

// Create handles the merchant creation request.
func (h *MerchantHandler) Create(c echo.Context) error {
	var merchant *entity.Merchant
	if err := c.Bind(&merchant); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}

	id, err := h.uc.CreateMerchant(c.Request().Context(), merchant)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Merchant created successfully")
}

// UpdateField handles a targeted merchant field edit.
func (h *MerchantHandler) UpdateField(c echo.Context) error {
	var input *FieldUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field update input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateMerchantField(c.Request().Context(), c.Param("id"), input.Path, input.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Merchant updated successfully")
}

// Delete handles the single merchant delete request.
func (h *MerchantHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteMerchant(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Merchant deleted successfully")
}

// BulkDelete handles the concurrent multi-merchant delete request. Partial
// failures are reported per id; the response is still a success envelope so
// the caller can inspect the report.
func (h *MerchantHandler) BulkDelete(c echo.Context) error {
	var input *BulkDeleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk delete input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	report, err := h.uc.DeleteMerchants(c.Request().Context(), input.IDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Merchant bulk delete finished")
}

// DeleteAll handles the delete-everything request.
func (h *MerchantHandler) DeleteAll(c echo.Context) error {
	report, err := h.uc.DeleteAllMerchants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Merchant delete-all finished")
}

// UploadAsset handles logo and ABN document uploads. The multipart form must
// carry the file under "file"; the asset kind comes from the route.
func (h *MerchantHandler) UploadAsset(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart form must include a 'file' part")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	url, err := h.uc.UploadAsset(
		c.Request().Context(),
		c.Param("id"),
		c.Param("kind"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Asset uploaded successfully")
}

// JoinQR renders the merchant's join QR code as a PNG.
func (h *MerchantHandler) JoinQR(c echo.Context) error {
	png, err := h.uc.JoinQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
