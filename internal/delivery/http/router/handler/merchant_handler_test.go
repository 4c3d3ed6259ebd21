package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tapadmin/internal/delivery/http/validator"
	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/view"
	mocksusecase "tapadmin/internal/mocks/usecase"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type merchantHandlerFixtures struct {
	handler *MerchantHandler
	uc      *mocksusecase.MockMerchantUsecase
	echo    *echo.Echo
}

func createTestMerchantHandler(t *testing.T) merchantHandlerFixtures {
	uc := mocksusecase.NewMockMerchantUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return merchantHandlerFixtures{
		handler: NewMerchantHandler(uc, logger),
		uc:      uc,
		echo:    e,
	}
}

func TestMerchantHandler_List(t *testing.T) {
	fx := createTestMerchantHandler(t)

	merchants := []*entity.Merchant{
		{ID: "m1", MerchantName: "Corner Cafe"},
	}

	fx.uc.EXPECT().
		ListMerchants(mock.Anything, usecase.ListQuery{
			Search:        "corner",
			SortKey:       "merchantName",
			SortDirection: view.Descending,
		}).
		Return(merchants, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/merchants?search=corner&sortKey=merchantName&sortDirection=descending", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Corner Cafe")
}

func TestMerchantHandler_Create(t *testing.T) {
	fx := createTestMerchantHandler(t)

	fx.uc.EXPECT().
		CreateMerchant(mock.Anything, mock.AnythingOfType("*entity.Merchant")).
		Return("m-new", nil)

	body := `{"merchantName":"Aroma Lane","abn":"51824753556"}`
	req := httptest.NewRequest(http.MethodPost, "/api/merchants", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "m-new")
}

func TestMerchantHandler_UpdateField(t *testing.T) {
	fx := createTestMerchantHandler(t)

	fx.uc.EXPECT().
		UpdateMerchantField(mock.Anything, "m1", "address.suburb", "Newtown").
		Return(nil)

	body := `{"path":"address.suburb","value":"Newtown"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/merchants/m1/field", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	err := fx.handler.UpdateField(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMerchantHandler_UpdateField_MissingPath(t *testing.T) {
	fx := createTestMerchantHandler(t)

	body := `{"value":"Newtown"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/merchants/m1/field", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	err := fx.handler.UpdateField(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestMerchantHandler_BulkDelete(t *testing.T) {
	fx := createTestMerchantHandler(t)

	fx.uc.EXPECT().
		DeleteMerchants(mock.Anything, []string{"m1", "m2"}).
		Return(&usecase.BulkDeleteReport{
			Requested: 2,
			Deleted:   1,
			Failed:    map[string]string{"m2": "delete merchant: boom"},
		}, nil)

	body := `{"ids":["m1","m2"]}`
	req := httptest.NewRequest(http.MethodDelete, "/api/merchants", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.BulkDelete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requested":2`)
	assert.Contains(t, rec.Body.String(), `"deleted":1`)
	assert.Contains(t, rec.Body.String(), "m2")
}

func TestMerchantHandler_UploadAsset(t *testing.T) {
	fx := createTestMerchantHandler(t)

	fx.uc.EXPECT().
		UploadAsset(mock.Anything, "m1", "logo", "logo.png", mock.AnythingOfType("string"), mock.Anything).
		Return("https://assets.example.com/merchants/m1/logo.png", nil)

	var buf strings.Builder
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/merchants/m1/assets/logo", strings.NewReader(buf.String()))
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id", "kind")
	c.SetParamValues("m1", "logo")

	err = fx.handler.UploadAsset(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://assets.example.com/merchants/m1/logo.png")
}

func TestMerchantHandler_UploadAsset_MissingFile(t *testing.T) {
	fx := createTestMerchantHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/merchants/m1/assets/logo", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id", "kind")
	c.SetParamValues("m1", "logo")

	err := fx.handler.UploadAsset(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file")
}

func TestMerchantHandler_JoinQR(t *testing.T) {
	fx := createTestMerchantHandler(t)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.uc.EXPECT().JoinQR(mock.Anything, "m1").Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/merchants/m1/join-qr", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	err := fx.handler.JoinQR(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
