package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	VisionBackend string
	GoogleAPIKey  string
	GeminiModel   string
	ClaudeAPIKey  string
	ClaudeModel   string
	OllamaHost    string
	OllamaModel   string
	LogLevel      string
	LogFile       string
}

// Load reads configuration from the environment. Variables from the dotenv
// file named by ENV_FILE (default .env) are applied first without overriding
// anything already set.
func Load() (*Config, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		VisionBackend: getEnv("VISION_BACKEND", "gemini"),
		GoogleAPIKey:  getEnv("GOOGLE_API_KEY", getEnv("GEMINI_API_KEY", "")),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ClaudeAPIKey:  getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llava"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}, nil
}

// LogValue reports which credentials are present without their values.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("listen_addr", c.ListenAddr),
		slog.String("vision_backend", c.VisionBackend),
		slog.String("gemini_model", c.GeminiModel),
		slog.String("claude_model", c.ClaudeModel),
		slog.String("ollama_host", c.OllamaHost),
		slog.String("ollama_model", c.OllamaModel),
		slog.Bool("google_key_set", c.GoogleAPIKey != ""),
		slog.Bool("claude_key_set", c.ClaudeAPIKey != ""),
		slog.String("log_level", c.LogLevel),
	)
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
