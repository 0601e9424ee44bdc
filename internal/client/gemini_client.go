package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sawtify/api/internal/config"
	"github.com/sawtify/api/internal/model"
)

// MediaGenerator defines the interface for media generation operations
type MediaGenerator interface {
	GenerateAudio(ctx context.Context, prompt string, voice model.Voice) (*RawAudio, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
	IsConfigured() bool
}

// GeminiClient implements MediaGenerator against the Gemini generateContent API
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	ttsModel   string
	imageModel string
}

// RawAudio is the decoded audio payload of a generation response:
// headerless little-endian 16-bit PCM at 24 kHz mono.
type RawAudio struct {
	PCM      []byte
	MimeType string
}

// generateContentRequest represents the request body for generateContent
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
	FileData   *fileData   `json:"fileData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type fileData struct {
	MimeType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

type generationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

// generateContentResponse represents the response from generateContent
type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		ttsModel:   cfg.TTSModel,
		imageModel: cfg.ImageModel,
	}
}

// IsConfigured returns true if the client has valid configuration
func (c *GeminiClient) IsConfigured() bool {
	return c.apiKey != ""
}

// GenerateAudio performs a single speech generation round trip and returns
// the decoded raw PCM payload. It never retries.
func (c *GeminiClient) GenerateAudio(ctx context.Context, prompt string, voice model.Voice) (*RawAudio, error) {
	req := &generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: string(voice)},
				},
			},
		},
	}

	resp, err := c.generateContent(ctx, c.ttsModel, req)
	if err != nil {
		return nil, err
	}

	media := firstMediaPart(resp)
	if media == nil || media.InlineData == nil {
		return nil, &GenerationError{Kind: FailureFatal, Message: "no media returned"}
	}

	pcm, err := decodeMediaData(media.InlineData.Data)
	if err != nil {
		return nil, &GenerationError{Kind: FailureFatal, Message: "invalid audio payload", Err: err}
	}

	return &RawAudio{PCM: pcm, MimeType: media.InlineData.MimeType}, nil
}

// GenerateImage performs a single image generation round trip and returns
// a media reference: a data URI for inline payloads or a remote file URI.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := &generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	resp, err := c.generateContent(ctx, c.imageModel, req)
	if err != nil {
		return "", err
	}

	media := firstMediaPart(resp)
	if media == nil {
		return "", &GenerationError{Kind: FailureFatal, Message: "no media returned"}
	}
	if media.InlineData != nil {
		return fmt.Sprintf("data:%s;base64,%s", media.InlineData.MimeType, media.InlineData.Data), nil
	}
	return media.FileData.FileURI, nil
}

// generateContent executes a generateContent request against the given model
func (c *GeminiClient) generateContent(ctx context.Context, mdl string, body *generateContentRequest) (*generateContentResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, mdl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	log.Printf("[Gemini API] → POST %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Gemini API] ✗ POST %s — request failed: %v", url, err)
		return nil, &GenerationError{Kind: FailureTransient, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Kind: FailureTransient, Message: "failed to read response", Err: err}
	}

	log.Printf("[Gemini API] ← %d POST %s", resp.StatusCode, url)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := classifyProviderError(resp.StatusCode, string(respBody))
		return nil, &GenerationError{
			Kind:    kind,
			Message: fmt.Sprintf("gemini API error (status %d): %s", resp.StatusCode, string(respBody)),
		}
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, &GenerationError{Kind: FailureFatal, Message: "failed to unmarshal response", Err: err}
	}

	return &genResp, nil
}

// firstMediaPart returns the first response part carrying media, or nil
func firstMediaPart(resp *generateContentResponse) *part {
	for _, cand := range resp.Candidates {
		for i := range cand.Content.Parts {
			p := &cand.Content.Parts[i]
			if p.InlineData != nil || p.FileData != nil {
				return p
			}
		}
	}
	return nil
}

// decodeMediaData base64-decodes a media payload. Payloads may arrive as a
// bare base64 string or as a data URI with a MIME marker up to the first
// comma; the marker is stripped before decoding.
func decodeMediaData(data string) ([]byte, error) {
	if i := strings.Index(data, ","); i >= 0 && strings.HasPrefix(data, "data:") {
		data = data[i+1:]
	}
	return base64.StdEncoding.DecodeString(data)
}
