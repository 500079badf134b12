// Package config provides configuration management for dbsources.
package config

import (
	"fmt"

	"github.com/ukaji3/dbsources-go/internal/logging"
	"github.com/ukaji3/dbsources-go/pkg/dbsources"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
)

// Default configuration values.
const (
	DefaultFormat       = string(models.FormatCombined)
	DefaultLogLevel     = "info"
	DefaultPort         = 8501
	DefaultMaxUploadMB  = 200
	DefaultPreviewLimit = 500
	EnvPrefix           = "DBSOURCES_"
)

// Config holds all configuration options.
type Config struct {
	Sheet        string   `koanf:"sheet"`
	Column       string   `koanf:"column"`
	Marker       string   `koanf:"marker"`
	Format       string   `koanf:"format"`
	IncludeViews bool     `koanf:"include_views"`
	LogLevel     string   `koanf:"log_level"`
	Verbose      bool     `koanf:"verbose"`
	UI           UIConfig `koanf:"ui"`
}

// UIConfig holds configuration for the upload server.
type UIConfig struct {
	Port         int `koanf:"port"`
	MaxUploadMB  int `koanf:"max_upload_mb"`
	PreviewLimit int `koanf:"preview_limit"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := models.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Sheet == "" || c.Column == "" {
		return fmt.Errorf("sheet and column names must not be empty")
	}
	if c.UI.Port < 1 || c.UI.Port > 65535 {
		return fmt.Errorf("invalid ui.port: %d", c.UI.Port)
	}
	if c.UI.MaxUploadMB < 1 {
		return fmt.Errorf("invalid ui.max_upload_mb: %d", c.UI.MaxUploadMB)
	}
	return nil
}

// Options converts the configuration to extraction options.
func (c *Config) Options() dbsources.Options {
	includeViews := c.IncludeViews
	return dbsources.Options{
		Sheet:        c.Sheet,
		Column:       c.Column,
		Marker:       c.Marker,
		Format:       models.Format(c.Format),
		IncludeViews: &includeViews,
	}
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.UI.MaxUploadMB) << 20
}
