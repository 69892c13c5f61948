package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrConfigNotFound indicates no config file could be located
var ErrConfigNotFound = errors.New("config file not found")

// SiteConfig identifies the collaboration site being mirrored
type SiteConfig struct {
	// URL is the full site URL, e.g. https://tenant.sharepoint.com/sites/Team
	URL string `mapstructure:"url"`

	// TenantID and ClientID identify the app registration used for
	// app-only access
	TenantID string `mapstructure:"tenant_id"`
	ClientID string `mapstructure:"client_id"`
}

// MirrorConfig controls the mirror command
type MirrorConfig struct {
	// DownloadRoot is the local directory libraries are mirrored under
	DownloadRoot string `mapstructure:"download_root"`

	// Libraries restricts the run to these library titles; empty mirrors
	// every visible document library
	Libraries []string `mapstructure:"libraries"`

	// PageSize overrides the listing page size (0 keeps the default)
	PageSize int `mapstructure:"page_size"`
}

// LogConfig controls the log sink
type LogConfig struct {
	// File is the log file path; empty disables file logging
	File string `mapstructure:"file"`

	// Level is the minimum level written to the file: full, info, warn,
	// error
	Level string `mapstructure:"level"`
}

// DirectoryConfig controls the computers command
type DirectoryConfig struct {
	// Address is the directory server, host:port
	Address string `mapstructure:"address"`

	// UseTLS dials LDAPS instead of plain LDAP
	UseTLS bool `mapstructure:"use_tls"`

	BindDN       string `mapstructure:"bind_dn"`
	BindPassword string `mapstructure:"bind_password"`

	// BaseDN is the search base for computer objects
	BaseDN string `mapstructure:"base_dn"`

	// Output is the CSV report path; empty writes no file
	Output string `mapstructure:"output"`
}

// Config is the application configuration
type Config struct {
	Site      SiteConfig      `mapstructure:"site"`
	Mirror    MirrorConfig    `mapstructure:"mirror"`
	Log       LogConfig       `mapstructure:"log"`
	Directory DirectoryConfig `mapstructure:"directory"`
}

// DefaultConfigPaths returns the locations searched for a config file
func DefaultConfigPaths() []string {
	paths := []string{"."}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "spmirror"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".spmirror"))
	}
	return paths
}

// Load reads the configuration. With an empty path the default locations
// are searched for config.yaml. Environment variables with the SPMIRROR_
// prefix override file values (SPMIRROR_SITE_URL, SPMIRROR_LOG_LEVEL, ...).
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range DefaultConfigPaths() {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix("SPMIRROR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env values for keys viper knows about
	for _, key := range []string{
		"site.url", "site.tenant_id", "site.client_id",
		"mirror.download_root",
		"log.file", "log.level",
		"directory.address", "directory.bind_dn", "directory.bind_password",
		"directory.base_dn", "directory.output",
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// ValidateMirror checks the fields the mirror command needs
func (c *Config) ValidateMirror() error {
	if c.Site.URL == "" {
		return errors.New("site.url is required")
	}
	if c.Site.TenantID == "" || c.Site.ClientID == "" {
		return errors.New("site.tenant_id and site.client_id are required")
	}
	if c.Mirror.DownloadRoot == "" {
		return errors.New("mirror.download_root is required")
	}
	return nil
}

// ValidateDirectory checks the fields the computers command needs
func (c *Config) ValidateDirectory() error {
	if c.Directory.Address == "" {
		return errors.New("directory.address is required")
	}
	if c.Directory.BaseDN == "" {
		return errors.New("directory.base_dn is required")
	}
	return nil
}
