package e2e

import (
	"net/http"
	"strings"
	"testing"
)

func TestSpeechGenerate_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{"text":"hello there","voice":"Algenib","mood":"romantic","dialect":"egyptian"}`
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/speech/generate", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	audioURL, _ := result["audioUrl"].(string)
	if !strings.HasPrefix(audioURL, "data:audio/wav;base64,") {
		t.Errorf("expected wav data URI, got %q", audioURL)
	}
}

func TestSpeechGenerate_DefaultMood(t *testing.T) {
	ta := setupApp(t)

	body := `{"text":"hello there","voice":"Achernar","dialect":"saudi"}`
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/speech/generate", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)
}

func TestSpeechGenerate_InvalidEnum(t *testing.T) {
	ta := setupApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown dialect", `{"text":"hi","voice":"Algenib","dialect":"martian"}`},
		{"unknown voice", `{"text":"hi","voice":"Robot","dialect":"egyptian"}`},
		{"unknown mood", `{"text":"hi","voice":"Algenib","mood":"ecstatic","dialect":"egyptian"}`},
		{"missing text", `{"voice":"Algenib","dialect":"egyptian"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/speech/generate", tt.body)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			assertStatus(t, resp, http.StatusBadRequest)
		})
	}
}

func TestSpeechGenerate_NoAuth(t *testing.T) {
	ta := setupApp(t)

	body := `{"text":"hello","voice":"Algenib","dialect":"egyptian"}`
	resp, err := doRequest(ta.app, http.MethodPost, "/api/speech/generate", body, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusUnauthorized)
}
