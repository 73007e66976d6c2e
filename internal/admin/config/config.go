package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
)

// Config holds all runtime configuration for the admin server.
type Config struct {
	HTTP        HTTPConfig        `mapstructure:"http"`
	Log         LogConfig         `mapstructure:"log"`
	Firebase    FirebaseConfig    `mapstructure:"firebase"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Breadcrumbs BreadcrumbsConfig `mapstructure:"breadcrumbs"`
}

// HTTPConfig holds listener and routing options.
type HTTPConfig struct {
	Address         string        `mapstructure:"address"`
	BasePath        string        `mapstructure:"base_path"`
	LoginPath       string        `mapstructure:"login_path"`
	Environment     string        `mapstructure:"environment"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FirebaseConfig enables Firebase ID token verification when ProjectID is set.
type FirebaseConfig struct {
	ProjectID string `mapstructure:"project_id"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// BreadcrumbsConfig customises the header breadcrumb trail.
// Title keys are matched against raw path segments; viper lower-cases keys.
type BreadcrumbsConfig struct {
	RootLabel          string            `mapstructure:"root_label"`
	StandaloneSections []string          `mapstructure:"standalone_sections"`
	Titles             map[string]string `mapstructure:"titles"`
}

// Builder returns the breadcrumb configuration. Titles extend the defaults.
func (c BreadcrumbsConfig) Builder() breadcrumbs.Config {
	cfg := breadcrumbs.DefaultConfig()
	if strings.TrimSpace(c.RootLabel) != "" {
		cfg.RootLabel = c.RootLabel
	}
	if c.StandaloneSections != nil {
		cfg.StandaloneSections = append([]string(nil), c.StandaloneSections...)
	}
	for key, title := range c.Titles {
		cfg.Titles[key] = title
	}
	return cfg
}

var (
	// ErrInvalidAddress is returned when the listen address is empty.
	ErrInvalidAddress = errors.New("http address must not be empty")
	// ErrInvalidLogFormat is returned for log formats other than text or json.
	ErrInvalidLogFormat = errors.New("log format must be text or json")
)

// Load reads configuration from an optional YAML file with environment
// variable overrides. An empty path looks for ./config.yaml and tolerates its
// absence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option values that would otherwise fail at startup.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return ErrInvalidAddress
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.base_path", "/admin")
	v.SetDefault("http.login_path", "")
	v.SetDefault("http.environment", "Development")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("firebase.project_id", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("breadcrumbs.root_label", breadcrumbs.DefaultRootLabel)
}

// bindLegacyEnv keeps the variable names used by existing deployments.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"http.address":        {"ADMIN_HTTP_ADDRESS", "ADMIN_HTTP_ADDR"},
		"http.base_path":      {"ADMIN_HTTP_BASE_PATH", "ADMIN_BASE_PATH"},
		"http.environment":    {"ADMIN_HTTP_ENVIRONMENT", "ADMIN_ENVIRONMENT"},
		"firebase.project_id": {"ADMIN_FIREBASE_PROJECT_ID", "FIREBASE_PROJECT_ID"},

		"breadcrumbs.standalone_sections": {"ADMIN_BREADCRUMBS_STANDALONE_SECTIONS"},
	}
	for key, names := range bindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return err
		}
	}
	return nil
}
