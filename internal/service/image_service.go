package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/sawtify/api/internal/client"
	"github.com/sawtify/api/internal/model"
)

// ErrImageSetFailed is returned when any image in the set cannot be
// generated. The gallery has a fixed size, so there is no useful partial
// result. Message kept verbatim from the product copy.
var ErrImageSetFailed = errors.New("No image was generated.  Check your prompt and try again.")

// mockImagePNG is a 1x1 transparent PNG used when no API key is configured.
const mockImagePNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// ImageSetGenerator defines the interface for image set generation
type ImageSetGenerator interface {
	GenerateSet(ctx context.Context, req *model.ImageSetRequest) (*model.ImageSetResponse, error)
}

// ImageService generates a fixed-size gallery of images from one prompt
type ImageService struct {
	gemini client.MediaGenerator
}

// NewImageService creates a new image service with a Gemini client
func NewImageService(gemini client.MediaGenerator) *ImageService {
	return &ImageService{gemini: gemini}
}

// GenerateSet launches one generation call per gallery slot concurrently.
// Output order matches submission order, not completion order. If any
// single call fails the whole request fails; the sibling calls still run
// to completion.
func (s *ImageService) GenerateSet(ctx context.Context, req *model.ImageSetRequest) (*model.ImageSetResponse, error) {
	// Use mock response if client is not configured
	if s.gemini == nil || !s.gemini.IsConfigured() {
		return s.generateMock(req)
	}

	prompt := buildImagePrompt(req.Prompt, req.Style)

	refs := make([]string, model.ImageSetSize)
	errs := make([]error, model.ImageSetSize)

	var wg sync.WaitGroup
	for i := range refs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			refs[i], errs[i] = s.gemini.GenerateImage(ctx, prompt)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			log.Printf("Image %d/%d generation failed (%s): %v", i+1, model.ImageSetSize, client.Classify(err), err)
			return nil, ErrImageSetFailed
		}
	}

	return &model.ImageSetResponse{Images: refs}, nil
}

// buildImagePrompt appends the requested style, defaulting to realistic
func buildImagePrompt(prompt, style string) string {
	if style == "" {
		style = "realistic"
	}
	return fmt.Sprintf("%s\n\nThe style of the image should be %s.", prompt, style)
}

// generateMock returns a gallery of placeholder images for development
func (s *ImageService) generateMock(req *model.ImageSetRequest) (*model.ImageSetResponse, error) {
	refs := make([]string, model.ImageSetSize)
	for i := range refs {
		refs[i] = mockImagePNG
	}
	return &model.ImageSetResponse{Images: refs}, nil
}
