package config

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
	Enrich   EnrichConfig   `yaml:"enrich" mapstructure:"enrich"`
	Facility FacilityConfig `yaml:"facility" mapstructure:"facility"`
	Append   AppendConfig   `yaml:"append" mapstructure:"append"`
	Site     SiteConfig     `yaml:"site" mapstructure:"site"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// PathsConfig locates the input, intermediate, and output files.
type PathsConfig struct {
	DataDir   string `yaml:"data_dir" mapstructure:"data_dir"`
	PublicDir string `yaml:"public_dir" mapstructure:"public_dir"`
	StaticDir string `yaml:"static_dir" mapstructure:"static_dir"`
	CityList  string `yaml:"city_list" mapstructure:"city_list"`
}

// CityListPath returns the raw city list path; a relative configured name
// resolves under the data dir.
func (p PathsConfig) CityListPath() string {
	if filepath.IsAbs(p.CityList) {
		return p.CityList
	}
	return filepath.Join(p.DataDir, p.CityList)
}

// ProcessedCities returns the enrichment stage output path.
func (p PathsConfig) ProcessedCities() string {
	return filepath.Join(p.DataDir, "processed_cities.json")
}

// Facilities returns the facility synthesis output path.
func (p PathsConfig) Facilities() string {
	return filepath.Join(p.DataDir, "facilities.json")
}

// CostData returns the cost modeling output path.
func (p PathsConfig) CostData() string {
	return filepath.Join(p.DataDir, "cost_data.json")
}

// CombinedData returns the combiner output path.
func (p PathsConfig) CombinedData() string {
	return filepath.Join(p.DataDir, "combined_data.json")
}

// EnrichConfig bounds the nearby-city computation.
type EnrichConfig struct {
	MaxNearby      int     `yaml:"max_nearby" mapstructure:"max_nearby"`
	MaxRadiusMiles float64 `yaml:"max_radius_miles" mapstructure:"max_radius_miles"`
}

// FacilityConfig configures the facility synthesis stage.
type FacilityConfig struct {
	Provider      string  `yaml:"provider" mapstructure:"provider"` // synthetic or places
	Seed          int64   `yaml:"seed" mapstructure:"seed"`
	MinPerCity    int     `yaml:"min_per_city" mapstructure:"min_per_city"`
	MaxPerCity    int     `yaml:"max_per_city" mapstructure:"max_per_city"`
	Concurrency   int     `yaml:"concurrency" mapstructure:"concurrency"`
	PlacesAPIKey  string  `yaml:"places_api_key" mapstructure:"places_api_key"`
	PlacesQPS     float64 `yaml:"places_qps" mapstructure:"places_qps"`
	PlacesRetries int     `yaml:"places_retries" mapstructure:"places_retries"`
}

// AppendConfig configures the incremental city-addition utility.
type AppendConfig struct {
	MaxCities int   `yaml:"max_cities" mapstructure:"max_cities"`
	Seed      int64 `yaml:"seed" mapstructure:"seed"`
}

// SiteConfig configures page generation.
type SiteConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DIRECTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("paths.data_dir", "data")
	v.SetDefault("paths.public_dir", "public")
	v.SetDefault("paths.static_dir", "static")
	v.SetDefault("paths.city_list", "cities.csv")
	v.SetDefault("enrich.max_nearby", 5)
	v.SetDefault("enrich.max_radius_miles", 50)
	v.SetDefault("facility.provider", "synthetic")
	v.SetDefault("facility.seed", 1)
	v.SetDefault("facility.min_per_city", 5)
	v.SetDefault("facility.max_per_city", 10)
	v.SetDefault("facility.concurrency", 8)
	v.SetDefault("facility.places_qps", 2)
	v.SetDefault("facility.places_retries", 2)
	v.SetDefault("append.max_cities", 90)
	v.SetDefault("append.seed", 1)
	v.SetDefault("site.base_url", "https://www.example.com")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if cfg.Facility.MinPerCity > cfg.Facility.MaxPerCity {
		return nil, eris.Errorf("config: facility.min_per_city (%d) exceeds max_per_city (%d)",
			cfg.Facility.MinPerCity, cfg.Facility.MaxPerCity)
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
