package contract

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/huangsam/treehealth/schema"
)

// Default values for configuration.
const (
	DefaultPrecision     = 3
	MaxPrecision         = 6
	MaxSourceLimit       = 50000
	DefaultSourceTimeout = "60s"
	DefaultAddr          = ":8050"
	DefaultChartCacheTTL = "10m"
)

// DateTimeFormat is the timestamp layout used in human-readable output.
const DateTimeFormat = "2006-01-02 15:04:05"

// tableNamePattern restricts mirror table names to plain SQL identifiers.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	Source          schema.SourceBackend
	SourceURL       string
	SourceFile      string
	SourceDBConnect string // Please use env var as this is plaintext
	SourceTable     string
	SourceLimit     int
	SourceTimeout   time.Duration
	AppToken        string // Socrata application token, optional

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Species    string // Optional species filter for table output
	Width      int    // Terminal width override (0 = auto-detect)
	UseColors  bool   // Enable colored labels in table output

	DefaultSpecies string
	Addr           string
	ChartCacheTTL  time.Duration

	TargetVersion int // Mirror migration target (-1 = latest)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Source          string `mapstructure:"source"`
	SourceURL       string `mapstructure:"source-url"`
	SourceFile      string `mapstructure:"source-file"`
	SourceDBConnect string `mapstructure:"source-db-connect"`
	SourceTable     string `mapstructure:"source-table"`
	SourceLimit     int    `mapstructure:"source-limit"`
	SourceTimeout   string `mapstructure:"source-timeout"`
	AppToken        string `mapstructure:"app-token"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	Precision       int    `mapstructure:"precision"`
	Species         string `mapstructure:"species"`
	Width           int    `mapstructure:"width"`
	Color           string `mapstructure:"color"`

	// --- Fields from serveCmd.Flags() ---
	DefaultSpecies string `mapstructure:"default-species"`
	Addr           string `mapstructure:"addr"`
	ChartCacheTTL  string `mapstructure:"chart-cache-ttl"`

	// --- Fields from mirrorMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateSourceConfig(cfg, input); err != nil {
		return err
	}
	if err := processDashboardConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.SourceBackend, connStr string) error {
	switch backend {
	case schema.SQLiteSource:
		return nil
	case schema.MySQLSource:
		if connStr == "" {
			return fmt.Errorf("source-db-connect is required when using %s source", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' with a host:port address")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLSource:
		if connStr == "" {
			return fmt.Errorf("source-db-connect is required when using %s source", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ValidateTableName rejects anything that is not a plain SQL identifier.
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q: must start with a letter or underscore and contain only letters, digits and underscores", name)
	}
	return nil
}

// validateSimpleInputs processes and validates output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Species = strings.TrimSpace(input.Species)
	cfg.TargetVersion = input.TargetVersion

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	return nil
}

// validateSourceConfig validates the source backend and its connection settings.
func validateSourceConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.Source = schema.SourceBackend(strings.ToLower(strings.TrimSpace(input.Source)))
	if _, ok := schema.ValidSourceBackends[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. must be socrata, file, sqlite, mysql, postgresql", input.Source)
	}

	if input.SourceLimit <= 0 || input.SourceLimit > MaxSourceLimit {
		return fmt.Errorf("source-limit must be greater than 0 and cannot exceed %d (received %d)", MaxSourceLimit, input.SourceLimit)
	}
	cfg.SourceLimit = input.SourceLimit

	timeout, err := time.ParseDuration(input.SourceTimeout)
	if err != nil {
		return fmt.Errorf("invalid source-timeout '%s': %w", input.SourceTimeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("source-timeout must be positive (received %s)", input.SourceTimeout)
	}
	cfg.SourceTimeout = timeout

	cfg.SourceURL = strings.TrimSpace(input.SourceURL)
	cfg.SourceFile = strings.TrimSpace(input.SourceFile)
	cfg.SourceDBConnect = input.SourceDBConnect
	cfg.SourceTable = input.SourceTable
	cfg.AppToken = input.AppToken

	switch {
	case cfg.Source == schema.SocrataSource:
		u, err := url.Parse(cfg.SourceURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("source-url must be an absolute http(s) URL (received %q)", input.SourceURL)
		}
	case cfg.Source == schema.FileSource:
		if cfg.SourceFile == "" {
			return fmt.Errorf("source-file is required when using %s source", cfg.Source)
		}
	case cfg.Source.IsDatabase():
		if err := ValidateDatabaseConnectionString(cfg.Source, cfg.SourceDBConnect); err != nil {
			return err
		}
		if err := ValidateTableName(cfg.SourceTable); err != nil {
			return err
		}
	}
	return nil
}

// processDashboardConfig handles the serve settings.
func processDashboardConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.DefaultSpecies = strings.TrimSpace(input.DefaultSpecies)
	if cfg.DefaultSpecies == "" {
		cfg.DefaultSpecies = schema.DefaultSpecies
	}

	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		return fmt.Errorf("addr cannot be empty")
	}

	ttl, err := time.ParseDuration(input.ChartCacheTTL)
	if err != nil {
		return fmt.Errorf("invalid chart-cache-ttl '%s': %w", input.ChartCacheTTL, err)
	}
	if ttl < 0 {
		return fmt.Errorf("chart-cache-ttl cannot be negative (received %s)", input.ChartCacheTTL)
	}
	cfg.ChartCacheTTL = ttl
	return nil
}
