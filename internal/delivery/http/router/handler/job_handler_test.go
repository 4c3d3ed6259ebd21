package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tapadmin/internal/delivery/http/validator"
	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	mocksusecase "tapadmin/internal/mocks/usecase"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobHandlerFixtures struct {
	handler *JobHandler
	uc      *mocksusecase.MockJobUsecase
	echo    *echo.Echo
}

func createTestJobHandler(t *testing.T) jobHandlerFixtures {
	uc := mocksusecase.NewMockJobUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return jobHandlerFixtures{
		handler: NewJobHandler(uc, logger),
		uc:      uc,
		echo:    e,
	}
}

func TestJobHandler_Create(t *testing.T) {
	fx := createTestJobHandler(t)

	fx.uc.EXPECT().
		CreateJob(mock.Anything, &usecase.JobInput{
			Name:     "Nightly tier sweep",
			Kind:     entity.JobKindTierRecalculation,
			Schedule: "0 3 * * *",
			Timezone: "Australia/Sydney",
			Enabled:  true,
		}).
		Return("job-1", nil)

	body := `{"name":"Nightly tier sweep","kind":"tierRecalculation","schedule":"0 3 * * *","timezone":"Australia/Sydney","enabled":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "job-1")
}

func TestJobHandler_Run(t *testing.T) {
	fx := createTestJobHandler(t)

	fx.uc.EXPECT().
		RunJob(mock.Anything, "job-1").
		Return(&entity.JobRun{JobID: "job-1", Succeeded: true, ItemsTotal: 4, ItemsDone: 4}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/job-1/run", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("job-1")

	err := fx.handler.Run(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"succeeded":true`)
	assert.Contains(t, rec.Body.String(), `"itemsDone":4`)
}

func TestJobHandler_Run_Failure(t *testing.T) {
	fx := createTestJobHandler(t)

	fx.uc.EXPECT().
		RunJob(mock.Anything, "missing").
		Return(nil, domainerrors.ErrJobNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/missing/run", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := fx.handler.Run(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}
