package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sawtify/api/internal/config"
	"github.com/sawtify/api/internal/model"
)

func newTestClient(handler http.HandlerFunc) (*GeminiClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewGeminiClient(&config.GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		TTSModel:   "tts-model",
		ImageModel: "image-model",
	})
	return c, srv
}

func TestGenerateAudioSuccess(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	encoded := base64.StdEncoding.EncodeToString(pcm)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q; want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16;codec=pcm;rate=24000","data":"` + encoded + `"}}]}}]}`))
	})
	defer srv.Close()

	audio, err := c.GenerateAudio(context.Background(), "hello", model.VoiceAlgenib)
	if err != nil {
		t.Fatalf("GenerateAudio() err = %v; want nil", err)
	}
	if string(audio.PCM) != string(pcm) {
		t.Errorf("PCM = %v; want %v", audio.PCM, pcm)
	}
}

func TestGenerateAudioDataURIPayload(t *testing.T) {
	pcm := []byte{0xaa, 0xbb}
	uri := "data:audio/L16;base64," + base64.StdEncoding.EncodeToString(pcm)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16","data":"` + uri + `"}}]}}]}`))
	})
	defer srv.Close()

	audio, err := c.GenerateAudio(context.Background(), "hello", model.VoiceAchernar)
	if err != nil {
		t.Fatalf("GenerateAudio() err = %v; want nil", err)
	}
	if string(audio.PCM) != string(pcm) {
		t.Errorf("PCM = %v; want %v", audio.PCM, pcm)
	}
}

func TestGenerateAudioNoMedia(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"sorry"}]}}]}`))
	})
	defer srv.Close()

	_, err := c.GenerateAudio(context.Background(), "hello", model.VoiceAlgenib)
	if err == nil {
		t.Fatal("expected error for response without media")
	}
	if !IsFatal(err) {
		t.Errorf("Classify(err) = %v; want fatal", Classify(err))
	}
}

func TestGenerateAudioQuotaStatus(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED"}}`))
	})
	defer srv.Close()

	_, err := c.GenerateAudio(context.Background(), "hello", model.VoiceAlgenib)
	if !IsQuota(err) {
		t.Fatalf("Classify(err) = %v; want quota (err: %v)", Classify(err), err)
	}
}

func TestGenerateAudioQuotaKeyword(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Quota exceeded for requests per day"}}`))
	})
	defer srv.Close()

	_, err := c.GenerateAudio(context.Background(), "hello", model.VoiceAlgenib)
	if !IsQuota(err) {
		t.Fatalf("Classify(err) = %v; want quota (err: %v)", Classify(err), err)
	}
}

func TestGenerateAudioServerError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"internal"}}`))
	})
	defer srv.Close()

	_, err := c.GenerateAudio(context.Background(), "hello", model.VoiceAlgenib)
	if err == nil {
		t.Fatal("expected error")
	}
	if Classify(err) != FailureTransient {
		t.Errorf("Classify(err) = %v; want transient", Classify(err))
	}
}

func TestGenerateImageInline(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"here you go"},{"inlineData":{"mimeType":"image/png","data":"aGVsbG8="}}]}}]}`))
	})
	defer srv.Close()

	ref, err := c.GenerateImage(context.Background(), "a cat")
	if err != nil {
		t.Fatalf("GenerateImage() err = %v; want nil", err)
	}
	want := "data:image/png;base64,aGVsbG8="
	if ref != want {
		t.Errorf("ref = %q; want %q", ref, want)
	}
}

func TestGenerateImageFileURI(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"fileData":{"mimeType":"image/png","fileUri":"https://files.example.com/img.png"}}]}}]}`))
	})
	defer srv.Close()

	ref, err := c.GenerateImage(context.Background(), "a cat")
	if err != nil {
		t.Fatalf("GenerateImage() err = %v; want nil", err)
	}
	if ref != "https://files.example.com/img.png" {
		t.Errorf("ref = %q", ref)
	}
}

func TestClassifyPlainError(t *testing.T) {
	if got := Classify(context.DeadlineExceeded); got != FailureTransient {
		t.Errorf("Classify(plain error) = %v; want transient", got)
	}
}
