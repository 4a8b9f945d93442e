package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port                  int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                  CORSConfig `mapstructure:"cors"`
	RateLimit             int        `mapstructure:"rate_limit" validate:"min=0"`
	RequestTimeoutSeconds int        `mapstructure:"request_timeout_seconds" validate:"min=1"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins" validate:"min=1,dive,origin"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type VocabularyConfig struct {
	DataDirectory  string `mapstructure:"data_directory" validate:"required,dir"`
	CacheDirectory string `mapstructure:"cache_directory" validate:"required"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/jin")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("vocabulary.data_directory", "data")
	v.SetDefault("vocabulary.cache_directory", "cache")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("server.cors.allow_credentials", true)
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.request_timeout_seconds", 60)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "jin")
	v.SetDefault("database.username", "user")
	v.SetDefault("log.level", "info")

	// Directories can be overridden per deployment without a config file
	if err := v.BindEnv("vocabulary.data_directory", "JIN_DATA_DIRECTORY"); err != nil {
		return nil, fmt.Errorf("failed to bind JIN_DATA_DIRECTORY environment variable: %w", err)
	}
	if err := v.BindEnv("vocabulary.cache_directory", "JIN_CACHE_DIRECTORY"); err != nil {
		return nil, fmt.Errorf("failed to bind JIN_CACHE_DIRECTORY environment variable: %w", err)
	}
	if err := v.BindEnv("log.level", "JIN_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind JIN_LOG_LEVEL environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
