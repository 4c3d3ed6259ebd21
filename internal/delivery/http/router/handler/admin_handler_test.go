package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tapadmin/internal/delivery/http/validator"
	"tapadmin/internal/domain/entity"
	mocksusecase "tapadmin/internal/mocks/usecase"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerFixtures struct {
	handler *AdminHandler
	uc      *mocksusecase.MockAdminUsecase
	echo    *echo.Echo
}

func createTestAdminHandler(t *testing.T) adminHandlerFixtures {
	uc := mocksusecase.NewMockAdminUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return adminHandlerFixtures{
		handler: NewAdminHandler(uc, logger),
		uc:      uc,
		echo:    e,
	}
}

func TestAdminHandler_Login(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "admin@tap.com.au", Password: "secret"}).
		Return(&usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	body := `{"email":"admin@tap.com.au","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh"`)
}

func TestAdminHandler_Login_MissingPassword(t *testing.T) {
	fx := createTestAdminHandler(t)

	body := `{"email":"admin@tap.com.au"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Login(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAdminHandler_Refresh(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.uc.EXPECT().
		Refresh(mock.Anything, "refresh-token").
		Return(&usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	body := `{"refreshToken":"refresh-token"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestAdminHandler_Refresh_MissingToken(t *testing.T) {
	fx := createTestAdminHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Refresh(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAdminHandler_ListEnquiries(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.uc.EXPECT().
		ListEnquiries(mock.Anything).
		Return([]*entity.Enquiry{
			{ID: "e1", Name: "Dana Wu", Business: "Corner Cafe", CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/enquiries", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.ListEnquiries(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Cafe")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
