package model

// SongGenerateRequest represents the request body for song generation
type SongGenerateRequest struct {
	Lyrics     string     `json:"lyrics" validate:"required,min=20,max=4000"`
	VoiceType  VoiceType  `json:"voiceType" validate:"required,oneof=male female"`
	Language   Language   `json:"language" validate:"required,oneof=arabic english spanish"`
	SongType   SongType   `json:"songType" validate:"required,oneof=romantic children rap religious"`
	MusicStyle MusicStyle `json:"musicStyle" validate:"required,oneof=piano oud electro kpop"`
}

// SongGenerateResponse represents the response for song generation.
// Both fields are always populated: a failed sub-generation is replaced
// by a placeholder reference, never left empty.
type SongGenerateResponse struct {
	SongURL       string `json:"songUrl"`
	CoverImageURL string `json:"coverImageUrl"`
}

// SongStartResponse represents the response for starting an async song job
type SongStartResponse struct {
	JobID     string    `json:"jobId"`
	Status    JobStatus `json:"status"`
	CreatedAt int64     `json:"createdAt"`
}

// SongStatusResponse represents the status of an async song job
type SongStatusResponse struct {
	JobID       string    `json:"jobId"`
	Status      JobStatus `json:"status"`
	Progress    int       `json:"progress"`
	CurrentStep string    `json:"currentStep,omitempty"`
	Error       *string   `json:"error,omitempty"`
}

// SongCancelResponse represents the response for canceling a song job
type SongCancelResponse struct {
	Success bool      `json:"success"`
	JobID   string    `json:"jobId"`
	Status  JobStatus `json:"status"`
}
