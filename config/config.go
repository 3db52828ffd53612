package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/transduce"
	"github.com/kbukum/transduce/observe"
)

// Config is the deployment-facing configuration for pipeline construction.
type Config struct {
	// Buffer is the channel capacity for the concurrent application.
	Buffer  int     `mapstructure:"buffer" validate:"gte=0"`
	Logging Logging `mapstructure:"logging"`
}

// Logging configures the host-facing logger built via observe.New.
type Logging struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Option customizes Load.
type Option func(*loader)

type loader struct {
	prefix string
	path   string
}

// WithPrefix replaces the TRANSDUCE environment variable prefix.
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithPath sets the directory searched for the transduce config file instead
// of the working directory.
func WithPath(path string) Option {
	return func(l *loader) { l.path = path }
}

// Load reads configuration from, in increasing precedence: built-in
// defaults, an optional transduce.{yaml,json,toml} file, a .env file, and
// prefixed environment variables (TRANSDUCE_BUFFER, TRANSDUCE_LOGGING_LEVEL,
// …). A missing config or .env file is not an error. The result is validated
// before it is returned.
func Load(opts ...Option) (*Config, error) {
	l := loader{prefix: "TRANSDUCE"}
	for _, opt := range opts {
		opt(&l)
	}

	// .env is a development convenience; absence is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("transduce")
	if l.path != "" {
		v.AddConfigPath(l.path)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(l.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("buffer", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := getValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// ChannelOptions bridges the configuration to transduce.Channel.
func (c *Config) ChannelOptions() []transduce.ChannelOption {
	if c.Buffer > 0 {
		return []transduce.ChannelOption{transduce.WithBuffer(c.Buffer)}
	}
	return nil
}

// LoggerConfig bridges the configuration to observe.New.
func (c *Config) LoggerConfig() observe.Config {
	return observe.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Timestamp: true,
	}
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
