// Package config loads vfsh settings from defaults, a YAML file and VFSH_*
// environment variables, in that order. Command-line flags are applied on top by
// the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/vfsh/internal/logging"
	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no explicit config path is given, if it exists.
const DefaultFile = ".vfsh.yaml"

// DefaultArchive is opened when no archive argument is given.
const DefaultArchive = "filesystem.zip"

// Backends accepted for history.backend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the resolved configuration.
type Config struct {
	Archive      string `mapstructure:"archive"`
	ExtractDir   string `mapstructure:"extract_dir"`
	Keep         bool   `mapstructure:"keep"`
	Hints        bool   `mapstructure:"hints"`
	EscapePolicy string `mapstructure:"escape_policy"`
	Prompt       string `mapstructure:"prompt"`
	MetricsFile  string `mapstructure:"metrics_file"`

	Log     LogConfig     `mapstructure:"log"`
	History HistoryConfig `mapstructure:"history"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type HistoryConfig struct {
	Backend  string        `mapstructure:"backend"`
	Dir      string        `mapstructure:"dir"`
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// envKeys maps VFSH_* variables onto dotted config keys.
var envKeys = map[string]string{
	"VFSH_ARCHIVE":         "archive",
	"VFSH_EXTRACT_DIR":     "extract_dir",
	"VFSH_KEEP":            "keep",
	"VFSH_HINTS":           "hints",
	"VFSH_ESCAPE_POLICY":   "escape_policy",
	"VFSH_PROMPT":          "prompt",
	"VFSH_METRICS_FILE":    "metrics_file",
	"VFSH_LOG_LEVEL":       "log.level",
	"VFSH_LOG_FORMAT":      "log.format",
	"VFSH_HISTORY_BACKEND": "history.backend",
	"VFSH_HISTORY_DIR":     "history.dir",
	"VFSH_HISTORY_TTL":     "history.ttl",
	"VFSH_REDIS_URL":       "history.redis_url",
}

func defaults() map[string]any {
	return map[string]any{
		"archive":       DefaultArchive,
		"hints":         true,
		"escape_policy": vpath.Clamp.String(),
		"prompt":        "{cwd} $ ",
		"log": map[string]any{
			"level":  "warn",
			"format": string(logging.FormatText),
		},
		"history": map[string]any{
			"backend": BackendMemory,
			"dir":     ".vfsh/history",
		},
	}
}

// Load resolves the configuration. An empty path means DefaultFile when present;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	raw := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	fileValues, err := readFile(path)
	switch {
	case err == nil:
		merge(raw, fileValues)
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	for env, key := range envKeys {
		if v, ok := lookup(env); ok {
			set(raw, key, v)
		}
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

// set assigns a dotted key such as "history.backend".
func set(m map[string]any, key string, v any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = v
}

// Validate checks enumerated values and cross-field requirements.
func (c *Config) Validate() error {
	var errs []error

	if _, err := vpath.ParsePolicy(c.EscapePolicy); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch logging.Format(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format))
	}

	switch c.History.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.History.RedisURL == "" {
			errs = append(errs, fmt.Errorf("history.redis_url is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown history backend %q (want memory, file or redis)", c.History.Backend))
	}
	if c.History.TTL < 0 {
		errs = append(errs, fmt.Errorf("history.ttl must not be negative"))
	}

	return errors.Join(errs...)
}

// Policy returns the parsed escape policy. Call after Validate.
func (c *Config) Policy() vpath.Policy {
	p, _ := vpath.ParsePolicy(c.EscapePolicy)
	return p
}
