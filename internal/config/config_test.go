package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Resolve reads so tests control the full set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MINIO_ENDPOINT", "MINIO_ROOT_USER", "MINIO_ROOT_PASSWORD",
		"MINIO_ALIAS", "MINIO_ACCESS_KEY_NAME", "MINIO_BUCKETS",
		"MINIO_CONFIG_FILE", "MINIO_LOG_LEVEL", "MINIO_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINIO_ENDPOINT", "http://localhost:9000")
	t.Setenv("MINIO_ROOT_USER", "minioadmin")
	t.Setenv("MINIO_ROOT_PASSWORD", "minioadmin")

	cfg, err := Resolve()
	require.NoError(t, err)

	assert.Equal(t, "myminio", cfg.Alias)
	assert.Equal(t, "no-name", cfg.DefaultKeyName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.DeclaredBuckets)
}

func TestResolve_MissingRequiredNamesEveryField(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINIO_ENDPOINT", "http://localhost:9000")

	_, err := Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MINIO_ROOT_USER")
	assert.Contains(t, err.Error(), "MINIO_ROOT_PASSWORD")
	assert.NotContains(t, err.Error(), "MINIO_ENDPOINT")
}

func TestResolve_BucketListSplitAndTrim(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINIO_ENDPOINT", "http://localhost:9000")
	t.Setenv("MINIO_ROOT_USER", "minioadmin")
	t.Setenv("MINIO_ROOT_PASSWORD", "minioadmin")
	t.Setenv("MINIO_BUCKETS", " bucket-data, bucket-logs ,,bucket-backup ")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"bucket-data", "bucket-logs", "bucket-backup"}, cfg.DeclaredBuckets)
	assert.NoError(t, cfg.RequireBuckets())
}

func TestRequireBuckets_EmptySet(t *testing.T) {
	cfg := &Config{}
	err := cfg.RequireBuckets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MINIO_BUCKETS")
}

func TestServerAddress(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantHost string
		wantTLS  bool
		wantErr  bool
	}{
		{"http scheme", "http://localhost:9000", "localhost:9000", false, false},
		{"https scheme", "https://minio.example.com", "minio.example.com", true, false},
		{"bare host port", "localhost:9000", "localhost:9000", false, false},
		{"unsupported scheme", "ftp://localhost:9000", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Endpoint: tt.endpoint}
			host, secure, err := cfg.ServerAddress()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantTLS, secure)
		})
	}
}

func TestResolve_YAMLFileOverlaidByEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "miniokit.yaml")
	yamlCfg := `
endpoint: http://file-host:9000
root_user: file-user
root_password: file-pass
alias: fromfile
buckets:
  - bucket-a
  - bucket-b
`
	require.NoError(t, os.WriteFile(path, []byte(yamlCfg), 0o600))

	t.Setenv("MINIO_CONFIG_FILE", path)
	t.Setenv("MINIO_ROOT_USER", "env-user")

	cfg, err := Resolve()
	require.NoError(t, err)

	// Env wins over file; file fills the rest.
	assert.Equal(t, "env-user", cfg.RootUser)
	assert.Equal(t, "http://file-host:9000", cfg.Endpoint)
	assert.Equal(t, "file-pass", cfg.RootPassword)
	assert.Equal(t, "fromfile", cfg.Alias)
	assert.Equal(t, []string{"bucket-a", "bucket-b"}, cfg.DeclaredBuckets)
}

func TestResolve_ConfigFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINIO_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MINIO_CONFIG_FILE")
}
