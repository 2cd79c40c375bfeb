// Package config resolves the connection configuration both CLI tools share.
//
// Resolution order, lowest precedence first:
//
//  1. optional YAML file named by MINIO_CONFIG_FILE
//  2. process environment (after loading a .env file, if present)
//  3. struct defaults (alias, access key name, log settings)
//
// Resolve never contacts the server; a missing required field is a
// configuration error, not an operation error.
package config

import (
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"

	"github.com/koustreak/miniokit/internal/errs"
)

// Config holds everything needed to reach a MinIO server and drive the
// lifecycle managers. DeclaredBuckets is only required for bucket
// reconcile/status operations; RequireBuckets enforces that.
type Config struct {
	// Endpoint is the server URI, e.g. "http://localhost:9000".
	Endpoint string `yaml:"endpoint" validate:"required"`

	// RootUser / RootPassword are the administrative credentials.
	RootUser     string `yaml:"root_user" validate:"required"`
	RootPassword string `yaml:"root_password" validate:"required"`

	// Alias is the logical name for this endpoint+credentials triple.
	// Kept for parity with mc-based tooling; shown in logs and output.
	Alias string `yaml:"alias" default:"myminio"`

	// DefaultKeyName labels access keys created without an explicit --name.
	DefaultKeyName string `yaml:"access_key_name" default:"no-name"`

	// DeclaredBuckets is the ordered set of bucket names intended to exist.
	DeclaredBuckets []string `yaml:"buckets"`

	// Logger settings.
	LogLevel  string `yaml:"log_level" default:"info"`
	LogFormat string `yaml:"log_format" default:"console"`
}

// envFor maps Config field names (as reported by validator) to the
// environment variables operators actually set.
var envFor = map[string]string{
	"Endpoint":     "MINIO_ENDPOINT",
	"RootUser":     "MINIO_ROOT_USER",
	"RootPassword": "MINIO_ROOT_PASSWORD",
}

var validate = validator.New()

// Resolve loads, defaults, and validates the configuration.
// It returns ErrKindConfigMissing naming every absent required variable.
func Resolve() (*Config, error) {
	// A .env beside the binary is a convenience for local development;
	// absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	if path := os.Getenv("MINIO_CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := defaults.Set(cfg); err != nil {
		return nil, errs.Wrap(errs.ErrKindUnknown, "applying configuration defaults", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, missingFieldsError(err)
	}

	return cfg, nil
}

// RequireBuckets enforces the declared bucket set for operations that
// reconcile or report it (bucketctl --create / --status).
func (c *Config) RequireBuckets() error {
	if len(c.DeclaredBuckets) == 0 {
		return errs.New(errs.ErrKindConfigMissing,
			"MINIO_BUCKETS is not set; bucket creation and status need a declared bucket set")
	}
	return nil
}

// ServerAddress splits Endpoint into the host:port the SDK clients expect
// and whether TLS is in use. An endpoint without a scheme is taken as a
// plain host:port with TLS off.
func (c *Config) ServerAddress() (host string, secure bool, err error) {
	if !strings.Contains(c.Endpoint, "://") {
		return c.Endpoint, false, nil
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return "", false, errs.Wrap(errs.ErrKindInvalidInput, "invalid MINIO_ENDPOINT", err)
	}
	switch u.Scheme {
	case "http":
		return u.Host, false, nil
	case "https":
		return u.Host, true, nil
	default:
		return "", false, errs.Newf(errs.ErrKindInvalidInput,
			"unsupported MINIO_ENDPOINT scheme %q", u.Scheme)
	}
}

// --- helpers ---

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrap(errs.ErrKindConfigMissing, "cannot read MINIO_CONFIG_FILE", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errs.Wrap(errs.ErrKindInvalidInput, "cannot parse MINIO_CONFIG_FILE", err)
	}
	return nil
}

// applyEnv overlays non-empty environment variables on top of cfg.
func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Endpoint, "MINIO_ENDPOINT")
	set(&cfg.RootUser, "MINIO_ROOT_USER")
	set(&cfg.RootPassword, "MINIO_ROOT_PASSWORD")
	set(&cfg.Alias, "MINIO_ALIAS")
	set(&cfg.DefaultKeyName, "MINIO_ACCESS_KEY_NAME")
	set(&cfg.LogLevel, "MINIO_LOG_LEVEL")
	set(&cfg.LogFormat, "MINIO_LOG_FORMAT")

	if v := os.Getenv("MINIO_BUCKETS"); v != "" {
		cfg.DeclaredBuckets = SplitBuckets(v)
	}
}

// SplitBuckets parses a comma-separated bucket list, trimming whitespace
// and dropping empty entries. Order is preserved.
func SplitBuckets(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// missingFieldsError translates validator failures into a single
// configuration error naming every absent environment variable.
func missingFieldsError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Wrap(errs.ErrKindConfigMissing, "invalid configuration", err)
	}

	var missing []string
	for _, fe := range verrs {
		if env, known := envFor[fe.Field()]; known {
			missing = append(missing, env)
		} else {
			missing = append(missing, fe.Field())
		}
	}
	sort.Strings(missing)

	return errs.Newf(errs.ErrKindConfigMissing,
		"required configuration not set: %s", strings.Join(missing, ", "))
}
