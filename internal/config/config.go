package config

import "fmt"

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AnalysisConfig holds the default analysis thresholds. Requests may
// override the thresholds per call; these are the service-wide defaults.
type AnalysisConfig struct {
	ZScoreThreshold   float64 `mapstructure:"z_score_threshold"`   // |z| above this flags an anomaly
	SlopeThreshold    float64 `mapstructure:"slope_threshold"`     // regression slope below this is stability
	VolatilityCVLimit float64 `mapstructure:"volatility_cv_limit"` // CV (percent) above this is volatile
	Workers           int     `mapstructure:"workers"`             // batch parallelism; <=1 runs sequentially
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}

	return nil
}

// Validate validates analysis thresholds
func (c *AnalysisConfig) Validate() error {
	if c.ZScoreThreshold <= 0 {
		return fmt.Errorf("analysis.z_score_threshold must be positive")
	}

	if c.SlopeThreshold < 0 {
		return fmt.Errorf("analysis.slope_threshold must not be negative")
	}

	if c.VolatilityCVLimit <= 0 {
		return fmt.Errorf("analysis.volatility_cv_limit must be positive")
	}

	if c.Workers < 0 {
		return fmt.Errorf("analysis.workers must not be negative")
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
