package model

// ImageSetSize is the fixed number of images generated per request.
const ImageSetSize = 5

// ImageSetRequest represents the request body for image set generation
type ImageSetRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=4000"`
	Style  string `json:"style" validate:"omitempty,max=200"`
}

// ImageSetResponse represents the response for image set generation.
// Images always holds exactly ImageSetSize references, in submission order.
type ImageSetResponse struct {
	Images []string `json:"images"`
}
