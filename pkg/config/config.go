package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("DIARY")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
			// Config file doesn't exist, which is fine - we'll use defaults
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		// Database is optional, so we don't return an error
		// but we log a warning
		fmt.Println("Warning: No database path configured")
	}

	// Validate API keys aren't using placeholder values
	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct invalid worker count
	if viper.GetInt("enrichment.workers") <= 0 {
		viper.Set("enrichment.workers", 2)
	}

	// Auto-correct invalid queue size
	if viper.GetInt("enrichment.max_queue_size") <= 0 {
		viper.Set("enrichment.max_queue_size", 100)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	// Check for production environment
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	// List of placeholder values that shouldn't be used
	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
	}

	// Check OpenAI API key (semantic analysis). An empty key is fine; the
	// service falls back to the local analyzer.
	openaiKey := viper.GetString("openai.api_key")
	for _, placeholder := range placeholders {
		if openaiKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid OpenAI API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: OpenAI API key is using a placeholder value")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Enrichment.Workers <= 0 {
		c.Enrichment.Workers = 2
	}

	if c.Enrichment.MaxQueueSize <= 0 {
		c.Enrichment.MaxQueueSize = 100
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/diary.db")
	viper.SetDefault("database.log_queries", false)
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.audio_dir", "./data/audio")
	viper.SetDefault("storage.work_dir", "./tmp")
	viper.SetDefault("storage.max_upload_bytes", 26214400)

	// Enrichment defaults (background transcription + analysis)
	viper.SetDefault("enrichment.workers", 2)
	viper.SetDefault("enrichment.max_queue_size", 100)
	viper.SetDefault("enrichment.analysis_version", "0.1.0-local")

	// OpenAI defaults (semantic analysis)
	viper.SetDefault("openai.api_key", "")
	viper.SetDefault("openai.base_url", "https://api.openai.com")
	viper.SetDefault("openai.model", "gpt-4.1-mini")
	viper.SetDefault("openai.temperature", 0.2)
	viper.SetDefault("openai.timeout", 30*time.Second)

	// Profile defaults
	viper.SetDefault("profile.default_id", "local_profile_1")
	viper.SetDefault("profile.invitations_granted", 3)
	viper.SetDefault("profile.invitation_ttl", 14*24*time.Hour)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")

	// Features defaults
	viper.SetDefault("features.enable_enrichment", true)
	viper.SetDefault("features.maintenance_mode", false)
}
