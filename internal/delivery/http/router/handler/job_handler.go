package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tapadmin/internal/delivery/context"
	"tapadmin/internal/delivery/http/response"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JobHandler holds dependencies for scheduled-job administration handlers.
type JobHandler struct {
	uc     usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the job list request.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.uc.ListJobs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

// Get handles the single job request.
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.uc.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job retrieved successfully")
}

// Create handles the job creation request.
func (h *JobHandler) Create(c echo.Context) error {
	var input *usecase.JobInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	id, err := h.uc.CreateJob(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Job created successfully")
}

// Update handles the job update request.
func (h *JobHandler) Update(c echo.Context) error {
	var input *usecase.JobInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	if err := h.uc.UpdateJob(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Job updated successfully")
}

// Delete handles the job delete request.
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteJob(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Job deleted successfully")
}

// Run executes one job immediately, regardless of its schedule.
func (h *JobHandler) Run(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("Manual job run requested", slog.String("jobId", c.Param("id")))

	run, err := h.uc.RunJob(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, run, "Job run finished")
}
