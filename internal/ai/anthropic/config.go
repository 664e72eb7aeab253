package anthropic

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/takuya-okamoto/zumenkan/internal/ai"
)

// Config for the Anthropic messages client.
type Config struct {
	APIKey      string        // if empty, falls back to env AI_API_KEY
	BaseURL     string        // default https://api.anthropic.com/v1
	Model       string        // e.g. "claude-sonnet-4-5"
	MaxTokens   int           // completion budget per call
	Temperature float32       // 0 keeps extraction deterministic
	Timeout     time.Duration // http client timeout
	Retry       ai.RetryConfig
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("AI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.Retry.Attempts == 0 {
		cfg.Retry = ai.DefaultRetryConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}
