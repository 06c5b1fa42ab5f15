package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/session"
	"github.com/Behyna/sms-services/autoresponder/pkg/mysql"
	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	"github.com/spf13/viper"
)

type Config struct {
	API      API               `mapstructure:"api"`
	Twilio   twilio.Config     `mapstructure:"twilio"`
	Session  session.Config    `mapstructure:"session"`
	Database Database          `mapstructure:"database"`
	Metrics  Metrics           `mapstructure:"metrics"`
	Replies  map[string]string `mapstructure:"replies"`
}

type API struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Address returns the listen address for fiber, accepting both "5000" and ":5000".
func (a API) Address() string {
	if strings.Contains(a.Port, ":") {
		return a.Port
	}
	return ":" + a.Port
}

type Database struct {
	Enable       bool `mapstructure:"enable"`
	mysql.Config `mapstructure:",squash"`
}

type Metrics struct {
	Enable          bool          `mapstructure:"enable"`
	CollectInterval time.Duration `mapstructure:"collect_interval"`
}

// ReplyKeys are the categories whose reply text can be overridden under "replies".
var ReplyKeys = []string{"menu", "booking", "contact", "hours", "greeting", "thanks", "farewell", "default"}

func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom reads config.yml from the given directories, then applies
// environment overrides (twilio.account_sid -> TWILIO_ACCOUNT_SID). A missing
// file is not an error.
func LoadFrom(paths ...string) (cfg *Config, err error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err = v.BindEnv("api.port", "PORT", "API_PORT"); err != nil {
		return nil, err
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "5000")
	v.SetDefault("api.read_timeout", 15*time.Second)
	v.SetDefault("api.write_timeout", 15*time.Second)

	v.SetDefault("twilio.account_sid", "")
	v.SetDefault("twilio.auth_token", "")
	v.SetDefault("twilio.whatsapp_number", "")
	v.SetDefault("twilio.base_url", twilio.DefaultBaseURL)
	v.SetDefault("twilio.timeout", 10*time.Second)

	v.SetDefault("session.duplicate_window", session.DefaultDuplicateWindow)
	v.SetDefault("session.idle_timeout", session.DefaultIdleTimeout)
	v.SetDefault("session.sweep_interval", session.DefaultSweepInterval)

	v.SetDefault("database.enable", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "autoresponder")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.slow_query", time.Second)

	v.SetDefault("metrics.enable", true)
	v.SetDefault("metrics.collect_interval", 30*time.Second)

	for _, key := range ReplyKeys {
		v.SetDefault("replies."+key, "")
	}
}
