package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sawtify/api/internal/model"
	"github.com/sawtify/api/internal/service"
	"github.com/sawtify/api/pkg/response"
)

type ImageHandler struct {
	service   service.ImageSetGenerator
	validator *validator.Validate
}

func NewImageHandler(svc service.ImageSetGenerator, v *validator.Validate) *ImageHandler {
	return &ImageHandler{
		service:   svc,
		validator: v,
	}
}

// Generate handles POST /api/images/generate
//
// The gallery has a fixed size: a single failed generation fails the
// whole request rather than returning a partial set.
func (h *ImageHandler) Generate(c *fiber.Ctx) error {
	var req model.ImageSetRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.GenerateSet(c.Context(), &req)
	if err != nil {
		return response.AIError(c, err.Error())
	}

	return response.OK(c, result)
}
