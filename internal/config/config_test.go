package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every NICHESCRIPT_ env var that Load() reads.
var allConfigKeys = []string{
	"NICHESCRIPT_LISTEN_ADDR",
	"NICHESCRIPT_STORE",
	"NICHESCRIPT_DB_PATH",
	"NICHESCRIPT_DATABASE_URL",
	"NICHESCRIPT_SECRET_KEY",
	"NICHESCRIPT_GEMINI_BASE_URL",
	"NICHESCRIPT_GEMINI_VALIDATION_MODEL",
	"NICHESCRIPT_PROVIDER_TIMEOUT",
	"NICHESCRIPT_STUB_DELAY",
	"NICHESCRIPT_STUB_VALIDATE_DELAY",
}

// isolateConfigEnv saves and unsets all NICHESCRIPT_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "nichescript.db", cfg.DBPath)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiValidationModel)
	assert.Equal(t, 2*time.Minute, cfg.ProviderTimeout)
	assert.Equal(t, time.Second, cfg.StubDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.StubValidateDelay)
	assert.Empty(t, cfg.GeminiBaseURL)
	assert.Nil(t, cfg.SecretKey)
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("NICHESCRIPT_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("NICHESCRIPT_STORE", "postgres")
	t.Setenv("NICHESCRIPT_DATABASE_URL", "postgres://localhost/nichescript")
	t.Setenv("NICHESCRIPT_GEMINI_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("NICHESCRIPT_GEMINI_VALIDATION_MODEL", "gemini-flash-latest")
	t.Setenv("NICHESCRIPT_PROVIDER_TIMEOUT", "45s")
	t.Setenv("NICHESCRIPT_STUB_DELAY", "0s")
	t.Setenv("NICHESCRIPT_STUB_VALIDATE_DELAY", "1.5s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "postgres://localhost/nichescript", cfg.DatabaseURL)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.GeminiBaseURL)
	assert.Equal(t, "gemini-flash-latest", cfg.GeminiValidationModel)
	assert.Equal(t, 45*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, time.Duration(0), cfg.StubDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.StubValidateDelay)
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("NICHESCRIPT_STORE", "postgres")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NICHESCRIPT_DATABASE_URL")
}

func TestLoad_UnknownStore(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("NICHESCRIPT_STORE", "redis")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NICHESCRIPT_STORE")
}

func TestLoad_InvalidDurations(t *testing.T) {
	for _, key := range []string{
		"NICHESCRIPT_PROVIDER_TIMEOUT",
		"NICHESCRIPT_STUB_DELAY",
		"NICHESCRIPT_STUB_VALIDATE_DELAY",
	} {
		t.Run(key, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(key, "not-a-duration")

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_NegativeDuration(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("NICHESCRIPT_STUB_DELAY", "-1s")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NICHESCRIPT_STUB_DELAY")
}

func TestLoad_StubDelayBounds(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
		ok    bool
	}{
		{value: "0", want: 0, ok: true},
		{value: "500ms", want: 500 * time.Millisecond, ok: true},
		{value: "1.5s", want: 1500 * time.Millisecond, ok: true},
		{value: "1ms", ok: false},
		{value: "499ms", ok: false},
		{value: "1501ms", ok: false},
		{value: "1h", ok: false},
	}
	for _, key := range []string{"NICHESCRIPT_STUB_DELAY", "NICHESCRIPT_STUB_VALIDATE_DELAY"} {
		for _, tc := range tests {
			t.Run(key+"="+tc.value, func(t *testing.T) {
				isolateConfigEnv(t)
				t.Setenv(key, tc.value)

				cfg, err := Load()

				if !tc.ok {
					assert.Nil(t, cfg)
					require.Error(t, err)
					assert.Contains(t, err.Error(), key)
					return
				}
				require.NoError(t, err)
				got := cfg.StubDelay
				if key == "NICHESCRIPT_STUB_VALIDATE_DELAY" {
					got = cfg.StubValidateDelay
				}
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

func TestLoad_SecretKey_Valid(t *testing.T) {
	isolateConfigEnv(t)
	// 64 hex chars = 32 bytes
	t.Setenv("NICHESCRIPT_SECRET_KEY", "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Len(t, cfg.SecretKey, 32)
}

func TestLoad_SecretKey_TooShort(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("NICHESCRIPT_SECRET_KEY", "deadbeef")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NICHESCRIPT_SECRET_KEY")
}

func TestLoad_SecretKey_NotHex(t *testing.T) {
	isolateConfigEnv(t)
	// 64 chars but not valid hex
	t.Setenv("NICHESCRIPT_SECRET_KEY", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NICHESCRIPT_SECRET_KEY")
}
