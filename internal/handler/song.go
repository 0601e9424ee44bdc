package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sawtify/api/internal/model"
	"github.com/sawtify/api/internal/service"
	"github.com/sawtify/api/pkg/response"
)

type SongHandler struct {
	service    service.SongGenerator
	jobService *service.SongJobService
	validator  *validator.Validate
}

func NewSongHandler(svc service.SongGenerator, jobSvc *service.SongJobService, v *validator.Validate) *SongHandler {
	return &SongHandler{
		service:    svc,
		jobService: jobSvc,
		validator:  v,
	}
}

// Generate handles POST /api/song/generate
//
// The synchronous path: generation runs within the request and always
// returns a fully populated result, substituting placeholders for any
// failed sub-generation.
func (h *SongHandler) Generate(c *fiber.Ctx) error {
	var req model.SongGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result := h.service.Generate(c.Context(), &req)
	return response.OK(c, result)
}

// Start handles POST /api/song/start
func (h *SongHandler) Start(c *fiber.Ctx) error {
	var req model.SongGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.jobService.Start(c.Context(), &req)
	if err != nil {
		return response.ServiceError(c, "Failed to queue song job")
	}

	return response.Accepted(c, result)
}

// Status handles GET /api/song/status/:jobId
func (h *SongHandler) Status(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Missing job ID", nil)
	}

	result, err := h.jobService.GetStatus(c.Context(), jobID)
	if err != nil {
		return response.NotFound(c, "Job not found")
	}

	return response.OK(c, result)
}

// Result handles GET /api/song/result/:jobId
func (h *SongHandler) Result(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Missing job ID", nil)
	}

	result, err := h.jobService.GetResult(c.Context(), jobID)
	if err != nil {
		return response.NotFound(c, "Job result not available")
	}

	return response.OK(c, result)
}

// Cancel handles POST /api/song/cancel/:jobId
func (h *SongHandler) Cancel(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Missing job ID", nil)
	}

	result, err := h.jobService.Cancel(c.Context(), jobID)
	if err != nil {
		return response.NotFound(c, "Job not found or already completed")
	}

	return response.OK(c, result)
}
