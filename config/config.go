package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Notification NotificationConfig `mapstructure:"notification"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type NotificationConfig struct {
	// ReminderLead is how long before departure a reminder is due.
	ReminderLead time.Duration `mapstructure:"reminder_lead"`
	QueueSize    int           `mapstructure:"queue_size"`
}

// LoadConfig reads an optional config/config.yaml and environment
// overrides (SERVER_PORT, NOTIFICATION_REMINDER_LEAD, ...) on top of
// the coded defaults. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("notification.reminder_lead", 30*time.Minute)
	v.SetDefault("notification.queue_size", 64)

	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Addr returns the listen address for gin's Run.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
