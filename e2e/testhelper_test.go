package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/sawtify/api/internal/auth"
	"github.com/sawtify/api/internal/client"
	"github.com/sawtify/api/internal/config"
	"github.com/sawtify/api/internal/handler"
	"github.com/sawtify/api/internal/middleware"
	"github.com/sawtify/api/internal/service"
)

const testJWTSecret = "test-secret-for-e2e"

// testApp holds all components needed for testing
type testApp struct {
	app *fiber.App
}

// setupApp creates a Fiber app identical to main.go but with an
// unconfigured Gemini client, so every service takes its mock/placeholder
// path and no network calls are made.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	// Redis (localhost — must be running)
	redisClient := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // use DB 15 for tests to avoid collision
	})

	// Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr: "localhost:6379",
		DB:   15,
	})
	t.Cleanup(func() { asynqClient.Close() })

	validate := validator.New()

	// No API key → mock output everywhere
	geminiClient := client.NewGeminiClient(&config.GeminiConfig{})

	media := &config.MediaConfig{
		PlaceholderSongURL:  "https://storage.googleapis.com/studioprompt/placeholder.mp3",
		PlaceholderCoverURL: "https://placehold.co/400x400.png",
	}

	// Services
	speechService := service.NewSpeechService(geminiClient)
	songService := service.NewSongService(geminiClient, media)
	imageService := service.NewImageService(geminiClient)
	songJobService := service.NewSongJobService(redisClient, asynqClient)

	// Handlers
	speechHandler := handler.NewSpeechHandler(speechService, validate)
	songHandler := handler.NewSongHandler(songService, songJobService, validate)
	imageHandler := handler.NewImageHandler(imageService, validate)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(testJWTSecret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	// Base routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"timestamp": 1234567890})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"gemini": false,
				"auth":   true,
			},
		})
	})

	// API routes (authenticated)
	api := app.Group("/api", authMiddleware.Authenticate())

	// Use very high rate limits so tests don't get blocked
	speech := api.Group("/speech", rateLimiter.SpeechLimit(10000))
	speech.Post("/generate", speechHandler.Generate)

	song := api.Group("/song")
	song.Post("/generate", rateLimiter.SongLimit(10000), songHandler.Generate)
	song.Post("/start", rateLimiter.SongLimit(10000), songHandler.Start)
	song.Get("/status/:jobId", songHandler.Status)
	song.Get("/result/:jobId", songHandler.Result)
	song.Post("/cancel/:jobId", songHandler.Cancel)

	images := api.Group("/images", rateLimiter.ImagesLimit(10000))
	images.Post("/generate", imageHandler.Generate)

	return &testApp{app: app}
}

// generateToken creates an HMAC JWT token for test requests.
func generateToken(t *testing.T) string {
	t.Helper()
	claims := auth.Claims{
		UserID: "test-user-123",
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "sawtify-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	return signed
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.Test(req, -1)
}

// doAuthRequest performs an authenticated request.
func doAuthRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, error) {
	t.Helper()
	token := generateToken(t)
	return doRequest(app, method, path, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}
