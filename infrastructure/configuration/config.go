package configuration

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"trending-videos/infrastructure/logger"

	"github.com/spf13/viper"
)

const (
	KeyAPIKey          = "youtube.apiKey"
	KeyBaseURL         = "youtube.baseURL"
	KeyTimeout         = "youtube.timeout"
	KeyPageSize        = "youtube.pageSize"
	KeyMaxPages        = "youtube.maxPages"
	KeyCountryCodePath = "export.countryCodePath"
	KeyOutputDir       = "export.outputDir"
	KeyCategories      = "export.categories"
	KeyDBDriver        = "database.driver"
	KeyDBDSN           = "database.dsn"

	DefaultBaseURL         = "https://www.googleapis.com/youtube/v3"
	DefaultTimeout         = 30 * time.Second
	DefaultPageSize        = 50
	DefaultMaxPages        = 100
	DefaultCountryCodePath = "country_codes.txt"
	DefaultOutputDir       = "output/"
)

// ErrMissingAPIKey is returned by Validate when no usable API key was configured.
var ErrMissingAPIKey = errors.New("youtube api key is not configured (set YOUTUBE_API_KEY or youtube.apiKey)")

type Config struct {
	YouTube  YouTube  `mapstructure:"youtube"`
	Export   Export   `mapstructure:"export"`
	Database Database `mapstructure:"database"`
}

type YouTube struct {
	APIKey   string        `mapstructure:"apiKey"`
	BaseURL  string        `mapstructure:"baseURL"`
	Timeout  time.Duration `mapstructure:"timeout"`
	PageSize int64         `mapstructure:"pageSize"`
	// MaxPages caps pagination per region; 0 disables the cap.
	MaxPages int `mapstructure:"maxPages"`
}

type Export struct {
	CountryCodePath string `mapstructure:"countryCodePath"`
	OutputDir       string `mapstructure:"outputDir"`
	Categories      bool   `mapstructure:"categories"`
}

// Database selects the optional SQL sink. An empty Driver disables it.
type Database struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// NewViper returns a viper instance with defaults, env bindings and the
// config file search path (config.json, or config-<ENV>.json when ENV is set).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(getConfig())
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")

	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyPageSize, DefaultPageSize)
	v.SetDefault(KeyMaxPages, DefaultMaxPages)
	v.SetDefault(KeyCountryCodePath, DefaultCountryCodePath)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyCategories, false)

	_ = v.BindEnv(KeyAPIKey, "YOUTUBE_API_KEY")
	_ = v.BindEnv(KeyBaseURL, "YOUTUBE_BASE_URL")
	_ = v.BindEnv(KeyTimeout, "YOUTUBE_TIMEOUT")
	_ = v.BindEnv(KeyMaxPages, "YOUTUBE_MAX_PAGES")
	_ = v.BindEnv(KeyCategories, "EXPORT_CATEGORIES")
	_ = v.BindEnv(KeyDBDriver, "DB_DRIVER")
	_ = v.BindEnv(KeyDBDSN, "DB_DSN")
	return v
}

// Load reads the config file (a missing file is not an error) and decodes
// the merged settings.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.GetLogger().WithField("config", v.ConfigFileUsed()).Info("Config set up successfully")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if c.YouTube.PageSize <= 0 || c.YouTube.PageSize > DefaultPageSize {
		c.YouTube.PageSize = DefaultPageSize
	}
	if c.YouTube.MaxPages < 0 {
		c.YouTube.MaxPages = 0
	}
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	return &c, nil
}

// Validate checks what must be known before the first request is sent.
func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" || strings.HasPrefix(c.YouTube.APIKey, "YOUR_") {
		return ErrMissingAPIKey
	}
	switch c.Database.Driver {
	case "", "postgres", "sqlserver":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver != "" && c.Database.DSN == "" {
		return fmt.Errorf("database driver %q requires database.dsn", c.Database.Driver)
	}
	return nil
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}
