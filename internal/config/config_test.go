package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/utm/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, 3, cfg.Precision)
	assert.False(t, cfg.Strict)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
	assert.Equal(t, config.FormatText, cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("UTMCONV_FORMAT", "JSON")
	t.Setenv("UTMCONV_PRECISION", "5")
	t.Setenv("UTMCONV_STRICT", "true")
	t.Setenv("UTMCONV_LOG_LEVEL", "debug")
	t.Setenv("UTMCONV_LOG_FORMAT", "json")

	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 5, cfg.Precision)
	assert.True(t, cfg.Strict)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, config.FormatJSON, cfg.LogFormat)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utmconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nprecision: 1\nlog-level: info\n"), 0o600))
	t.Setenv("UTMCONV_CONFIG", path)

	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 1, cfg.Precision)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("UTMCONV_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.Load(config.New())
	require.Error(t, err)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("UTMCONV_PRECISION", "5")

	v := config.New()
	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, config.BindFlags(v, set))
	require.NoError(t, set.Parse([]string{"--precision", "2", "--strict", "-f", "json"}))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Precision)
	assert.True(t, cfg.Strict)
	assert.Equal(t, config.FormatJSON, cfg.Format)
}

func TestLoad_Invalid(t *testing.T) {
	for _, tc := range []struct {
		key, value string
	}{
		{"UTMCONV_FORMAT", "xml"},
		{"UTMCONV_PRECISION", "many"},
		{"UTMCONV_PRECISION", "13"},
		{"UTMCONV_PRECISION", "-1"},
		{"UTMCONV_STRICT", "sometimes"},
		{"UTMCONV_LOG_LEVEL", "loud"},
		{"UTMCONV_LOG_FORMAT", "logfmt"},
	} {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load(config.New())
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	saved := config.Options
	t.Cleanup(func() { config.Options = saved })
	config.Options = []config.Option{{Name: "ratio", Default: 0.5}}

	err := config.BindFlags(config.New(), pflag.NewFlagSet("test", pflag.ContinueOnError))
	assert.Error(t, err)
}
