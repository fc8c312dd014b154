package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	request "bengkel_service/internal/adapter/http/dto/request"
	response "bengkel_service/internal/adapter/http/dto/response"
	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Identity headers set by the authentication layer in front of this service.
const (
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

// JobHandler exposes the job lifecycle over HTTP.
type JobHandler struct {
	usecase  usecase.IJobUseCase
	basePath string
	logger   *slog.Logger
}

// NewJobHandler builds the handler; basePath prefixes the estimate_url
// returned by CreateAndOpenEstimate.
func NewJobHandler(uc usecase.IJobUseCase, basePath string, logger *slog.Logger) *JobHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobHandler{usecase: uc, basePath: basePath, logger: logger}
}

// CreateJob registers a vehicle intake as a draft job.
//
// @Summary  Create job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    payload  body      request.CreateJobRequest  true  "Intake"
// @Success  201      {object}  response.JobResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	in, ok := h.bindCreate(c)
	if !ok {
		return
	}
	job, err := h.usecase.CreateJob(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "create_job", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// CreateAndOpenEstimate creates a job and points the client at its estimate editor.
func (h *JobHandler) CreateAndOpenEstimate(c *gin.Context) {
	in, ok := h.bindCreate(c)
	if !ok {
		return
	}
	job, err := h.usecase.CreateAndOpenEstimate(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "create_and_open_estimate", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCreatedEstimate(job, h.basePath))
}

func (h *JobHandler) bindCreate(c *gin.Context) (usecase.CreateJobInput, bool) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidJobPayload)
		return usecase.CreateJobInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidJobPayload)
		return usecase.CreateJobInput{}, false
	}
	return in, true
}

// @Summary  List jobs
// @Tags     jobs
// @Produce  json
// @Success  200  {array}   response.JobResponse
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.ListJobs(c.Request.Context())
	if err != nil {
		h.fail(c, "list_jobs", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// @Summary  Get job
// @Tags     jobs
// @Produce  json
// @Param    id   path      string  true  "Job ID"
// @Success  200  {object}  response.JobResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_job", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateJob merges the present fields into the job. Close state is rejected.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidJobPayload)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, errInvalidJobPayload)
		return
	}
	if err := h.usecase.UpdateJob(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.fail(c, "update_job", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveEstimate stores the estimate and, for save_type "wo", issues the work
// order number. The response carries the number the client should display.
//
// @Summary  Save estimate
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id           path      string                       true   "Job ID"
// @Param    X-User-Name  header    string                       false  "Acting user"
// @Param    payload      body      request.SaveEstimateRequest  true   "Estimate"
// @Success  200          {object}  response.SaveEstimateResponse
// @Failure  400          {object}  pkg.HTTPError
// @Failure  409          {object}  pkg.HTTPError
// @Router   /jobs/{id}/estimate [put]
func (h *JobHandler) SaveEstimate(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidJobPayload)
		return
	}
	in := payload.ToInput(c.Param("id"), c.GetHeader(HeaderUserName))
	number, err := h.usecase.SaveEstimate(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "save_estimate", err)
		return
	}
	c.JSON(http.StatusOK, response.SaveEstimateResponse{
		JobID:    in.JobID,
		SaveType: string(in.SaveType),
		Number:   number,
	})
}

// CloseJob accepts an empty body as "nothing confirmed".
//
// @Summary  Close job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id       path      string                   true   "Job ID"
// @Param    payload  body      request.CloseJobRequest  false  "Confirmation"
// @Success  200      {object}  response.JobResponse
// @Failure  422      {object}  pkg.HTTPError
// @Router   /jobs/{id}/close [post]
func (h *JobHandler) CloseJob(c *gin.Context) {
	var payload request.CloseJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidJobPayload)
		return
	}
	job, err := h.usecase.CloseJob(c.Request.Context(), c.Param("id"), payload.ToConfirmation())
	if err != nil {
		h.fail(c, "close_job", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ReopenJob is restricted to owner and manager roles (X-User-Role).
//
// @Summary  Reopen job
// @Tags     jobs
// @Produce  json
// @Param    id           path      string  true  "Job ID"
// @Param    X-User-Role  header    string  true  "Acting role"
// @Success  200          {object}  response.JobResponse
// @Failure  403          {object}  pkg.HTTPError
// @Router   /jobs/{id}/reopen [post]
func (h *JobHandler) ReopenJob(c *gin.Context) {
	role := entities.ParseRole(c.GetHeader(HeaderUserRole))
	job, err := h.usecase.ReopenJob(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		h.fail(c, "reopen_job", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// @Summary  Delete job
// @Tags     jobs
// @Param    id  path  string  true  "Job ID"
// @Success  204
// @Router   /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete_job", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapJobError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(c.Request.Context(), "job request failed", "op", op, "id", c.Param("id"), "err", err)
	}
	writeError(c, appErr)
}
