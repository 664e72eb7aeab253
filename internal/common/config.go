package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	AI       AIConfig
	Render   RenderConfig
	Pipeline PipelineConfig
	Progress ProgressConfig
	Intake   IntakeConfig
}

// IntakeConfig holds the daemon's watched-directory configuration
type IntakeConfig struct {
	WatchRoot     string // empty disables the intake watcher
	WatchDebounce time.Duration
	InitialScan   bool
	CreatedBy     string // recorded as the author of watched uploads
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// StorageConfig holds the artifact storage layout configuration
type StorageConfig struct {
	Root string // parent of the drawings/ and thumbnails/ directories
}

// AIConfig holds vision-model client configuration
type AIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration

	// RotationConfidenceThreshold is the minimum confidence (percent) at
	// which an AI rotation judgment overrides the file's rotation metadata.
	// Carried over from the source system unchanged.
	RotationConfidenceThreshold float64
}

// RenderConfig holds page rasterization configuration
type RenderConfig struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	Pdfinfo  string // binary name or absolute path; if empty -> "pdfinfo"
	DPI      int    // rasterization DPI for AI input, default 300
}

// PipelineConfig holds analysis pipeline configuration
type PipelineConfig struct {
	Workers        int
	QueueSize      int
	JobTimeout     time.Duration
	RequiredFields []string
	OptionalFields []string

	// DrawingNumberField and AuthorField name the extracted fields consumed
	// by the canonical renamer.
	DrawingNumberField string
	AuthorField        string
}

// ProgressConfig holds progress channel configuration
type ProgressConfig struct {
	RedisAddr    string // empty disables the redis sink
	RedisChannel string
	FlushDelay   time.Duration
	BufferSize   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Storage: StorageConfig{
			Root: getEnv("STORAGE_ROOT", "./storage"),
		},
		AI: AIConfig{
			BaseURL:                     getEnv("AI_BASE_URL", "https://api.anthropic.com/v1"),
			APIKey:                      getEnv("AI_API_KEY", ""),
			Model:                       getEnv("AI_MODEL", "claude-sonnet-4-5"),
			MaxTokens:                   getEnvAsInt("AI_MAX_TOKENS", 4096),
			Temperature:                 getEnvAsFloat32("AI_TEMPERATURE", 0.0),
			Timeout:                     getEnvAsDuration("AI_TIMEOUT", 120*time.Second),
			RotationConfidenceThreshold: getEnvAsFloat64("AI_ROTATION_CONFIDENCE_THRESHOLD", 70),
		},
		Render: RenderConfig{
			Pdftoppm: getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Pdfinfo:  getEnv("PDFINFO_BIN", "pdfinfo"),
			DPI:      getEnvAsInt("RENDER_DPI", 300),
		},
		Pipeline: PipelineConfig{
			Workers:            getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:          getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			JobTimeout:         getEnvAsDuration("PIPELINE_JOB_TIMEOUT", 10*time.Minute),
			RequiredFields:     getEnvAsList("EXTRACT_REQUIRED_FIELDS", []string{"図番", "品名"}),
			OptionalFields:     getEnvAsList("EXTRACT_OPTIONAL_FIELDS", []string{"材質", "尺度", "作成者", "作成日"}),
			DrawingNumberField: getEnv("DRAWING_NUMBER_FIELD", "図番"),
			AuthorField:        getEnv("AUTHOR_FIELD", "作成者"),
		},
		Intake: IntakeConfig{
			WatchRoot:     getEnv("INTAKE_WATCH_ROOT", ""),
			WatchDebounce: getEnvAsDuration("INTAKE_WATCH_DEBOUNCE", 2*time.Second),
			InitialScan:   getEnvAsBool("INTAKE_INITIAL_SCAN", false),
			CreatedBy:     getEnv("INTAKE_CREATED_BY", "intake"),
		},
		Progress: ProgressConfig{
			RedisAddr:    getEnv("PROGRESS_REDIS_ADDR", ""),
			RedisChannel: getEnv("PROGRESS_REDIS_CHANNEL", "zumenkan:progress"),
			FlushDelay:   getEnvAsDuration("PROGRESS_FLUSH_DELAY", 100*time.Millisecond),
			BufferSize:   getEnvAsInt("PROGRESS_BUFFER_SIZE", 512),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.AI.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "AI_API_KEY is required", ErrInvalidInput)
	}
	if c.Storage.Root == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_ROOT is required", ErrInvalidInput)
	}
	return nil
}
