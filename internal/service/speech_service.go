package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sawtify/api/internal/client"
	"github.com/sawtify/api/internal/model"
	"github.com/sawtify/api/internal/wav"
)

// User-facing errors surfaced by the speech path. Speech is the one
// generation path where failure is not masked by placeholder content,
// because the voice clip is the entire deliverable.
var (
	// ErrQuotaExceeded is returned when the provider usage limit is hit.
	ErrQuotaExceeded = errors.New("لقد تجاوزت الحصة المتاحة. يرجى المحاولة مرة أخرى لاحقًا.")
	// ErrSpeechFailed is returned for any other speech generation failure.
	ErrSpeechFailed = errors.New("حدث خطأ غير متوقع أثناء إنشاء المقطع الصوتي.")
)

// SpeechGenerator defines the interface for speech generation
type SpeechGenerator interface {
	Generate(ctx context.Context, req *model.SpeechGenerateRequest) (*model.SpeechGenerateResponse, error)
}

// SpeechService converts text into an expressive voice clip
type SpeechService struct {
	gemini client.MediaGenerator
}

// NewSpeechService creates a new speech service with a Gemini client
func NewSpeechService(gemini client.MediaGenerator) *SpeechService {
	return &SpeechService{gemini: gemini}
}

// Generate builds the speech prompt, performs a single generation call and
// packages the raw PCM payload as a data:audio/wav;base64 URI.
func (s *SpeechService) Generate(ctx context.Context, req *model.SpeechGenerateRequest) (*model.SpeechGenerateResponse, error) {
	// Use mock response if client is not configured
	if s.gemini == nil || !s.gemini.IsConfigured() {
		return s.generateMock(req)
	}

	prompt := buildSpeechPrompt(req.Text, req.Mood, req.Dialect)

	audio, err := s.gemini.GenerateAudio(ctx, prompt, req.Voice)
	if err != nil {
		log.Printf("Speech generation failed (%s): %v", client.Classify(err), err)
		if client.IsQuota(err) {
			return nil, ErrQuotaExceeded
		}
		return nil, ErrSpeechFailed
	}

	audioURL := wav.DataURI(wav.EncodeDefault(audio.PCM))
	return &model.SpeechGenerateResponse{AudioURL: audioURL}, nil
}

// buildSpeechPrompt prefixes the text with a parenthetical stage direction.
// When a mood is set it always precedes the dialect in the instruction
// clause; the model depends on this ordering for expressive rendering.
func buildSpeechPrompt(text string, mood model.Mood, dialect model.Dialect) string {
	if mood != "" && mood != model.MoodNone {
		return fmt.Sprintf("(speaking in a %s tone, in the %s Arabic dialect) %s", mood, dialect, text)
	}
	return fmt.Sprintf("(speaking in a %s Arabic dialect) %s", dialect, text)
}

// generateMock returns a short silent clip for development without an API key
func (s *SpeechService) generateMock(req *model.SpeechGenerateRequest) (*model.SpeechGenerateResponse, error) {
	pcm := make([]byte, wav.DefaultSampleRate/2) // quarter second of silence
	return &model.SpeechGenerateResponse{
		AudioURL: wav.DataURI(wav.EncodeDefault(pcm)),
	}, nil
}
