package model

// SpeechGenerateRequest represents the request body for speech generation
type SpeechGenerateRequest struct {
	Text    string  `json:"text" validate:"required,min=1,max=4000"`
	Voice   Voice   `json:"voice" validate:"required,oneof=Algenib Achernar"`
	Mood    Mood    `json:"mood" validate:"omitempty,oneof=none sad angry comedy romantic"`
	Dialect Dialect `json:"dialect" validate:"required,oneof=egyptian tunisian saudi kuwaiti lebanese libyan"`
}

// SpeechGenerateResponse represents the response for speech generation.
// AudioURL is a data:audio/wav;base64 URI.
type SpeechGenerateResponse struct {
	AudioURL string `json:"audioUrl"`
}
