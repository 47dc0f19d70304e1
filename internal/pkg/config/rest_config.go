package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates all settings required by the REST API process.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	KeyVault KeyVaultSettings `mapstructure:"key_vault"`
}

// Validate checks that all nested settings are valid
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.KeyVault.Validate()
}

// InitializeRestConfig reads the REST API configuration from the yaml file at
// configPath. Environment variables prefixed with SMS_ override file values
// (e.g. SMS_DATABASE_DSN overrides database.dsn).
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("SMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
