package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sawtify/api/internal/model"
	"github.com/sawtify/api/internal/service"
	"github.com/sawtify/api/pkg/response"
)

type SpeechHandler struct {
	service   service.SpeechGenerator
	validator *validator.Validate
}

func NewSpeechHandler(svc service.SpeechGenerator, v *validator.Validate) *SpeechHandler {
	return &SpeechHandler{
		service:   svc,
		validator: v,
	}
}

// Generate handles POST /api/speech/generate
func (h *SpeechHandler) Generate(c *fiber.Ctx) error {
	var req model.SpeechGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if req.Mood == "" {
		req.Mood = model.MoodNone
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrQuotaExceeded) {
			return response.QuotaExceeded(c, err.Error())
		}
		return response.AIError(c, err.Error())
	}

	return response.OK(c, result)
}

// formatValidationErrors formats validator errors for response
func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[e.Field()] = e.Tag()
		}
		return errors
	}
	return nil
}
