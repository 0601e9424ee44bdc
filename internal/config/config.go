package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// readSecret reads a Docker secret from a file path specified by an env var
// with _FILE suffix. If FOO is already set directly, the file is skipped.
// If FOO_FILE is set, reads the file content and sets FOO.
func readSecret(envKey string) {
	if os.Getenv(envKey) != "" {
		return
	}
	fileKey := envKey + "_FILE"
	filePath := os.Getenv(fileKey)
	if filePath == "" {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	val := strings.TrimSpace(string(data))
	os.Setenv(envKey, val)
}

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Gemini    GeminiConfig
	Media     MediaConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration int // hours
}

type RateLimitConfig struct {
	SpeechPerMin  int
	SongPerHour   int
	ImagesPerHour int
}

// GeminiConfig is the explicit capability object for the generation provider.
// The API key is threaded into the client at construction time, never read
// from ambient globals.
type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	TTSModel   string
	ImageModel string
}

// MediaConfig holds the fixed fallback references used when a song
// sub-generation cannot produce a real artifact.
type MediaConfig struct {
	PlaceholderSongURL  string
	PlaceholderCoverURL string
}

func Load() (*Config, error) {
	// Read Docker Swarm secrets from _FILE env vars before Viper binds
	readSecret("REDIS_PASSWORD")
	readSecret("GEMINI_API_KEY")
	readSecret("JWT_SECRET")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Bind environment variables with underscores to nested config keys
	_ = viper.BindEnv("server.port", "SERVER_PORT")
	_ = viper.BindEnv("server.env", "SERVER_ENV")
	_ = viper.BindEnv("server.log_level", "LOG_LEVEL")
	_ = viper.BindEnv("redis.addr", "REDIS_ADDR")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = viper.BindEnv("redis.db", "REDIS_DB")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")
	_ = viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	_ = viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("gemini.base_url", "GEMINI_BASE_URL")
	_ = viper.BindEnv("gemini.tts_model", "GEMINI_TTS_MODEL")
	_ = viper.BindEnv("gemini.image_model", "GEMINI_IMAGE_MODEL")
	_ = viper.BindEnv("media.placeholder_song_url", "PLACEHOLDER_SONG_URL")
	_ = viper.BindEnv("media.placeholder_cover_url", "PLACEHOLDER_COVER_URL")

	// Defaults
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "change-me-in-production")
	viper.SetDefault("jwt.expiration", 24)
	viper.SetDefault("ratelimit.speech_per_min", 10)
	viper.SetDefault("ratelimit.song_per_hour", 5)
	viper.SetDefault("ratelimit.images_per_hour", 20)

	// Gemini defaults
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.tts_model", "gemini-2.5-flash-preview-tts")
	viper.SetDefault("gemini.image_model", "gemini-2.0-flash-preview-image-generation")

	// Placeholder media defaults
	viper.SetDefault("media.placeholder_song_url", "https://storage.googleapis.com/studioprompt/placeholder.mp3")
	viper.SetDefault("media.placeholder_cover_url", "https://placehold.co/400x400.png")

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:     viper.GetString("server.port"),
			Env:      viper.GetString("server.env"),
			LogLevel: viper.GetString("server.log_level"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("jwt.secret"),
			Expiration: viper.GetInt("jwt.expiration"),
		},
		RateLimit: RateLimitConfig{
			SpeechPerMin:  viper.GetInt("ratelimit.speech_per_min"),
			SongPerHour:   viper.GetInt("ratelimit.song_per_hour"),
			ImagesPerHour: viper.GetInt("ratelimit.images_per_hour"),
		},
		Gemini: GeminiConfig{
			APIKey:     viper.GetString("gemini.api_key"),
			BaseURL:    viper.GetString("gemini.base_url"),
			TTSModel:   viper.GetString("gemini.tts_model"),
			ImageModel: viper.GetString("gemini.image_model"),
		},
		Media: MediaConfig{
			PlaceholderSongURL:  viper.GetString("media.placeholder_song_url"),
			PlaceholderCoverURL: viper.GetString("media.placeholder_cover_url"),
		},
	}

	return cfg, nil
}
