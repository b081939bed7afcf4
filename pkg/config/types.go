package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Storage      StorageConfig    `mapstructure:"storage"`
	Enrichment   EnrichmentConfig `mapstructure:"enrichment"`
	OpenAI       OpenAIConfig     `mapstructure:"openai"`
	Profile      ProfileConfig    `mapstructure:"profile"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
	Features     FeaturesConfig   `mapstructure:"features"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
	Verbose    bool   `mapstructure:"verbose"`
}

// StorageConfig contains audio storage settings
type StorageConfig struct {
	AudioDir       string `mapstructure:"audio_dir"`
	WorkDir        string `mapstructure:"work_dir"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

// EnrichmentConfig contains background analysis settings
type EnrichmentConfig struct {
	Workers         int    `mapstructure:"workers"`
	MaxQueueSize    int    `mapstructure:"max_queue_size"`
	AnalysisVersion string `mapstructure:"analysis_version"`
}

// OpenAIConfig contains OpenAI API settings for semantic analysis
type OpenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ProfileConfig contains profile bookkeeping settings
type ProfileConfig struct {
	DefaultID          string        `mapstructure:"default_id"`
	InvitationsGranted int           `mapstructure:"invitations_granted"`
	InvitationTTL      time.Duration `mapstructure:"invitation_ttl"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// FeaturesConfig contains feature flags
type FeaturesConfig struct {
	EnableEnrichment bool `mapstructure:"enable_enrichment"`
	MaintenanceMode  bool `mapstructure:"maintenance_mode"`
}
