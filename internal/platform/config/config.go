// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"huntx/internal/platform/errors"
)

// Config is the full runtime configuration. Precedence, lowest first:
// defaults, YAML file, environment, flags.
type Config struct {
	// Credential
	APIKey string `yaml:"api_key"`

	// Batch
	Operation  string  `yaml:"operation"`
	InputFile  string  `yaml:"input"`
	Item       string  `yaml:"item"`
	Concurrent bool    `yaml:"concurrent"`
	Workers    int     `yaml:"workers"`
	TimeoutS   int     `yaml:"timeout"` // per-lookup timeout, seconds
	RateLimit  float64 `yaml:"rate_limit"`

	// Finder name details
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	FullName  string `yaml:"full_name"`

	// Output
	Output  string `yaml:"output"` // destination path, empty = no export
	NoTable bool   `yaml:"no_table"`
	Quiet   bool   `yaml:"quiet"`

	// Meta
	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Operation:  "domain-search",
		Concurrent: false,
		Workers:    5,
		TimeoutS:   10,
		RateLimit:  0,
	}
}

// Load builds the configuration: defaults, then the YAML file (if any),
// then environment variables, then flags.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	flags, parsed, err := parseFlags(args)
	if err != nil {
		return cfg, err
	}

	// The file path itself may come from a flag or the environment.
	path := parsed.ConfigFile
	if path == "" {
		path = os.Getenv("HUNTX_CONFIG")
	}
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = path
	}

	loadFromEnv(&cfg)
	applyFlags(&cfg, flags, parsed)
	normalize(&cfg)

	return cfg, nil
}

// loadFromFile overlays settings from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

// loadFromEnv overlays settings from environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("HUNTER_API_KEY", ""); v != "" {
		cfg.APIKey = v
	}
	if v := getenv("HUNTX_OPERATION", ""); v != "" {
		cfg.Operation = v
	}
	if v := getenv("HUNTX_INPUT", ""); v != "" {
		cfg.InputFile = v
	}
	if v := getenv("HUNTX_CONCURRENT", ""); v != "" {
		cfg.Concurrent = parseBool(v)
	}
	if v := getenv("HUNTX_WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv("HUNTX_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("HUNTX_RATE_LIMIT", ""); v != "" {
		cfg.RateLimit = parseFloat(v, cfg.RateLimit)
	}
	if v := getenv("HUNTX_OUTPUT", ""); v != "" {
		cfg.Output = v
	}
	if v := getenv("HUNTX_NO_TABLE", ""); v != "" {
		cfg.NoTable = parseBool(v)
	}
	if v := getenv("HUNTX_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
}

// parseFlags parses CLI flags into a scratch config so that only flags
// the user actually set override the lower layers.
func parseFlags(args []string) (*pflag.FlagSet, *Config, error) {
	parsed := DefaultConfig()

	flags := pflag.NewFlagSet("huntx", pflag.ContinueOnError)
	flags.StringVarP(&parsed.Operation, "op", "o", parsed.Operation,
		"Lookup operation: domain-search, email-finder, email-verifier")
	flags.StringVarP(&parsed.InputFile, "input", "i", parsed.InputFile,
		"Path to input file (one domain or email per line)")
	flags.StringVar(&parsed.Item, "item", parsed.Item,
		"Single domain or email to look up")
	flags.BoolVarP(&parsed.Concurrent, "concurrent", "c", parsed.Concurrent,
		"Dispatch lookups through a bounded worker pool")
	flags.IntVarP(&parsed.Workers, "workers", "w", parsed.Workers,
		"Worker pool size for concurrent dispatch")
	flags.IntVar(&parsed.TimeoutS, "timeout", parsed.TimeoutS,
		"Per-lookup timeout in seconds")
	flags.Float64Var(&parsed.RateLimit, "rate", parsed.RateLimit,
		"Maximum requests per second (0 = unlimited)")
	flags.StringVar(&parsed.FirstName, "first-name", parsed.FirstName,
		"First name for email-finder lookups")
	flags.StringVar(&parsed.LastName, "last-name", parsed.LastName,
		"Last name for email-finder lookups")
	flags.StringVar(&parsed.FullName, "full-name", parsed.FullName,
		"Full name for email-finder lookups (overrides first/last)")
	flags.StringVar(&parsed.Output, "out", parsed.Output,
		"Export destination path; extension picks the format (json or csv)")
	flags.BoolVar(&parsed.NoTable, "no-table", parsed.NoTable,
		"Disable the terminal results table")
	flags.BoolVarP(&parsed.Quiet, "quiet", "q", parsed.Quiet,
		"Disable the terminal presenter")
	flags.StringVar(&parsed.ConfigFile, "config", parsed.ConfigFile,
		"Path to a YAML config file")
	flags.BoolVar(&parsed.PrintVersion, "version", false,
		"Print version and exit")

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, &parsed, nil
}

// applyFlags overlays the flags that were explicitly set.
func applyFlags(cfg *Config, flags *pflag.FlagSet, parsed *Config) {
	set := func(name string) bool { return flags.Changed(name) }

	if set("op") {
		cfg.Operation = parsed.Operation
	}
	if set("input") {
		cfg.InputFile = parsed.InputFile
	}
	if set("item") {
		cfg.Item = parsed.Item
	}
	if set("concurrent") {
		cfg.Concurrent = parsed.Concurrent
	}
	if set("workers") {
		cfg.Workers = parsed.Workers
	}
	if set("timeout") {
		cfg.TimeoutS = parsed.TimeoutS
	}
	if set("rate") {
		cfg.RateLimit = parsed.RateLimit
	}
	if set("first-name") {
		cfg.FirstName = parsed.FirstName
	}
	if set("last-name") {
		cfg.LastName = parsed.LastName
	}
	if set("full-name") {
		cfg.FullName = parsed.FullName
	}
	if set("out") {
		cfg.Output = parsed.Output
	}
	if set("no-table") {
		cfg.NoTable = parsed.NoTable
	}
	if set("quiet") {
		cfg.Quiet = parsed.Quiet
	}
	cfg.PrintVersion = parsed.PrintVersion
}

func normalize(c *Config) {
	c.Operation = strings.TrimSpace(strings.ToLower(c.Operation))
	c.Item = strings.TrimSpace(c.Item)
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TimeoutS <= 0 {
		c.TimeoutS = 10
	}
	if c.RateLimit < 0 {
		c.RateLimit = 0
	}
}

// ValidateCredential checks the API key precondition. A missing key is
// fatal before any batch runs.
func (c Config) ValidateCredential() error {
	key := strings.TrimSpace(c.APIKey)
	if key == "" || key == "your-hunter-api-key" {
		return errors.Wrap(errors.ErrMissingCredential,
			"set HUNTER_API_KEY or api_key in the config file")
	}
	return nil
}

// Timeout returns the per-lookup timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutS) * time.Second
}

// String renders the config for debug logs, with the key redacted.
func (c Config) String() string {
	key := "(unset)"
	if c.APIKey != "" {
		key = "(redacted)"
	}
	return fmt.Sprintf("Config{op=%s, input=%s, concurrent=%t, workers=%d, timeout=%ds, key=%s}",
		c.Operation, c.InputFile, c.Concurrent, c.Workers, c.TimeoutS, key)
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}
