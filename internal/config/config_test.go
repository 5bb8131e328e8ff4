package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, k := range []string{"HTTP_ADDR", "DATABASE_URL", "STAN_REQUEST_SUBJECT", "SNAPSHOT_INTERVAL", "WRITE_RATE_LIMIT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "storefront.requests", cfg.RequestSubject)
	assert.Equal(t, "storefront.events", cfg.EventSubject)
	assert.Equal(t, 5*time.Second, cfg.SnapshotInterval)
	assert.Equal(t, 20.0, cfg.WriteRateLimit)
}

func TestLoadReadsEnvFileWithoutOverriding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\nSTAN_DURABLE=from-file\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("STAN_DURABLE", "from-env")
	t.Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "from-env", cfg.Durable)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SNAPSHOT_INTERVAL", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "SNAPSHOT_INTERVAL")
}

func TestApplicationSettingsEmitsOnce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ch := NewGlobalConfiguration(DefaultAccountSettings()).ApplicationSettings().Subscribe(ctx)
	assert.Equal(t, AccountSettings{UseSimpleAccount: true, UserRegistrationLoginType: "username"}, <-ch)
	_, open := <-ch
	assert.False(t, open)
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want AccountSettings
	}{
		{"empty file keeps defaults", "", DefaultAccountSettings()},
		{"override login type", "account:\n  userRegistrationLoginType: email\n",
			AccountSettings{UseSimpleAccount: true, UserRegistrationLoginType: "email"}},
		{"disable simple account", "account:\n  useSimpleAccount: false\n",
			AccountSettings{UseSimpleAccount: false, UserRegistrationLoginType: "username"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))
			got, err := LoadSettings(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAccountSettings(), got)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
