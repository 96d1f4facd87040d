package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when it is read from
// the environment, e.g. UTMCONV_LOG_LEVEL.
const EnvPrefix = "UTMCONV"

// Configuration keys.
const (
	KeyConfig    = "config"
	KeyFormat    = "format"
	KeyPrecision = "precision"
	KeyStrict    = "strict"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Output and log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is wrapped by every validation failure in Load.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of the utmconv command.
type Config struct {
	Format    string       // Format is the output format: text or json.
	Precision int          // Precision is the number of decimals printed for meters.
	Strict    bool         // Strict rejects input outside the UTM envelope.
	LogLevel  logrus.Level // LogLevel is the minimum level written to stderr.
	LogFormat string       // LogFormat is the log encoding: text or json.
}

// Option describes one configuration value and the flag it is bound to.
type Option struct {
	Name, Usage, Shorthand string
	Default                interface{}
}

// Options are the configuration options available to utmconv.
var Options = []Option{
	{
		Name:    KeyConfig,
		Usage:   "configuration file location",
		Default: "",
	},
	{
		Name:      KeyFormat,
		Usage:     "output format, text or json",
		Shorthand: "f",
		Default:   FormatText,
	},
	{
		Name:      KeyPrecision,
		Usage:     "decimals printed for meters; degrees get six more",
		Shorthand: "p",
		Default:   3,
	},
	{
		Name:    KeyStrict,
		Usage:   "reject coordinates outside the UTM envelope instead of converting them",
		Default: false,
	},
	{
		Name:    KeyLogLevel,
		Usage:   "log level: debug, info, warn or error",
		Default: "warn",
	},
	{
		Name:    KeyLogFormat,
		Usage:   "log format, text or json",
		Default: FormatText,
	},
}

// New returns a viper instance reading UTMCONV_ prefixed environment
// variables, with every option defaulted.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, o := range Options {
		v.SetDefault(o.Name, o.Default)
	}
	return v
}

// BindFlags adds a flag for every option to set and binds it to v.
func BindFlags(v *viper.Viper, set *pflag.FlagSet) error {
	for _, o := range Options {
		switch d := o.Default.(type) {
		case string:
			set.StringP(o.Name, o.Shorthand, d, o.Usage)
		case bool:
			set.BoolP(o.Name, o.Shorthand, d, o.Usage)
		case int:
			set.IntP(o.Name, o.Shorthand, d, o.Usage)
		default:
			return fmt.Errorf("option %s: unsupported default type %T", o.Name, o.Default)
		}
		if err := v.BindPFlag(o.Name, set.Lookup(o.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the configuration file named by the config key, if any, and
// validates the merged settings.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration file %s: %w", path, err)
		}
	}

	format := strings.ToLower(cast.ToString(v.Get(KeyFormat)))
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalid, KeyFormat, format)
	}

	precision, err := cast.ToIntE(v.Get(KeyPrecision))
	if err != nil || precision < 0 || precision > 12 {
		return nil, fmt.Errorf("%w: %s %v must be an integer between 0 and 12", ErrInvalid, KeyPrecision, v.Get(KeyPrecision))
	}

	strict, err := cast.ToBoolE(v.Get(KeyStrict))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyStrict, err)
	}

	level, err := logrus.ParseLevel(cast.ToString(v.Get(KeyLogLevel)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	logFormat := strings.ToLower(cast.ToString(v.Get(KeyLogFormat)))
	if logFormat != FormatText && logFormat != FormatJSON {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogFormat, logFormat)
	}

	return &Config{
		Format:    format,
		Precision: precision,
		Strict:    strict,
		LogLevel:  level,
		LogFormat: logFormat,
	}, nil
}
