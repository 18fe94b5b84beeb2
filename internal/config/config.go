// Package config содержит загрузку и валидацию конфигурации.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config представляет конфигурацию приложения
type Config struct {
	// Remote APIs
	PhishinBaseURL  string
	PhishnetBaseURL string
	PhishnetAPIKey  string
	UserAgent       string

	// Harvest
	Harvest HarvestConfig

	// Database
	DatabaseURL string

	// Logging
	LogLevel string
	LogPath  string

	// App Data Directory
	AppDataDir string

	// HTTP Client
	HTTPClientConfig HTTPClientConfig

	// Database connect retry
	DBRetryConfig RetryConfig
}

// HarvestConfig представляет параметры одного запуска сбора
type HarvestConfig struct {
	Start          string
	End            string
	RequestDelay   time.Duration
	OutputFile     string
	AppendOutput   bool
	KnownShowsOnly bool
	LikesMin       int
}

// HTTPClientConfig представляет конфигурацию HTTP клиента
type HTTPClientConfig struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	DisableKeepAlives     bool
	Timeout               time.Duration
}

// RetryConfig представляет конфигурацию повторов подключения к базе
type RetryConfig struct {
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// .env необязателен, переменные могут прийти из окружения
	_ = godotenv.Load()

	config := &Config{
		PhishinBaseURL:  getEnv("PHISHIN_BASE_URL", "https://phish.in"),
		PhishnetBaseURL: getEnv("PHISHNET_BASE_URL", "https://api.phish.net"),
		PhishnetAPIKey:  getEnv("PHISHNET_API_KEY", ""),
		UserAgent:       getEnv("USER_AGENT", "showharvest/1.0"),
		Harvest: HarvestConfig{
			Start:          getEnv("HARVEST_START", "1983-12-02"),
			End:            getEnv("HARVEST_END", "1989-12-31"),
			RequestDelay:   getEnvDuration("REQUEST_DELAY", 1*time.Second),
			OutputFile:     getEnv("OUTPUT_FILE", "phish_tracks.json"),
			AppendOutput:   getEnvBool("OUTPUT_APPEND", false),
			KnownShowsOnly: getEnvBool("KNOWN_SHOWS_ONLY", false),
			LikesMin:       getEnvInt("LIKES_MIN", 10),
		},
		DatabaseURL: getEnv("DB_DSN", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPath:     getEnv("LOG_PATH", ""),
		AppDataDir:  getEnv("APP_DATA_DIR", "./data"),
		HTTPClientConfig: HTTPClientConfig{
			MaxIdleConns:          getEnvInt("HTTP_MAX_IDLE_CONNS", 10),
			MaxIdleConnsPerHost:   getEnvInt("HTTP_MAX_IDLE_CONNS_PER_HOST", 2),
			IdleConnTimeout:       getEnvDuration("HTTP_IDLE_CONN_TIMEOUT", 90*time.Second),
			TLSHandshakeTimeout:   getEnvDuration("HTTP_TLS_HANDSHAKE_TIMEOUT", 10*time.Second),
			ResponseHeaderTimeout: getEnvDuration("HTTP_RESPONSE_HEADER_TIMEOUT", 30*time.Second),
			DisableKeepAlives:     getEnvBool("HTTP_DISABLE_KEEP_ALIVES", false),
			Timeout:               getEnvDuration("HTTP_TIMEOUT", 60*time.Second),
		},
		DBRetryConfig: RetryConfig{
			MaxRetries:        getEnvInt("DB_RETRY_MAX_RETRIES", 3),
			InitialDelay:      getEnvDuration("DB_RETRY_INITIAL_DELAY", 1*time.Second),
			MaxDelay:          getEnvDuration("DB_RETRY_MAX_DELAY", 10*time.Second),
			BackoffMultiplier: getEnvFloat("DB_RETRY_BACKOFF_MULTIPLIER", 2.0),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if err := validateBaseURL("PHISHIN_BASE_URL", c.PhishinBaseURL); err != nil {
		return err
	}

	if err := validateBaseURL("PHISHNET_BASE_URL", c.PhishnetBaseURL); err != nil {
		return err
	}

	return c.Harvest.Validate()
}

// Validate проверяет параметры сбора.
// Порядок HARVEST_START и HARVEST_END не проверяется: флаги команды
// могут заменить любую из границ, диапазон проверяется после них.
func (h HarvestConfig) Validate() error {
	if _, err := time.Parse(dateLayout, h.Start); err != nil {
		return fmt.Errorf("HARVEST_START must be YYYY-MM-DD, got %q", h.Start)
	}

	if _, err := time.Parse(dateLayout, h.End); err != nil {
		return fmt.Errorf("HARVEST_END must be YYYY-MM-DD, got %q", h.End)
	}

	if h.RequestDelay < 0 {
		return fmt.Errorf("REQUEST_DELAY must not be negative")
	}

	if h.LikesMin < 0 {
		return fmt.Errorf("LIKES_MIN must not be negative")
	}

	return nil
}

const dateLayout = "2006-01-02"

func validateBaseURL(key, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", key)
	}

	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, value)
	}

	return nil
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvFloat получает переменную окружения как float64
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
