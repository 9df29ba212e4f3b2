// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Timezone               string        `mapstructure:"timezone"`
	LeaderboardLimit       int           `mapstructure:"leaderboard_limit"`
	HistoryLimit           int           `mapstructure:"history_limit"`
	FeatureRestoreInterval time.Duration `mapstructure:"feature_restore_interval"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

type NotifierConfig struct {
	Type  string      `mapstructure:"type"` // "log" or "redis"
	Redis RedisConfig `mapstructure:"redis"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App  AppConfig `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	CORS CORSConfig `mapstructure:"cors"`
	Log  struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Notifier NotifierConfig `mapstructure:"notifier"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// APP_DATABASE_URL のように APP_ 接頭辞付きの環境変数で上書きできる
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	// 未設定なら認証は有効
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Timezone: %s", Cfg.App.Timezone)
	log.Printf("Leaderboard Limit: %d", Cfg.App.LeaderboardLimit)
	log.Printf("Notifier: %s", Cfg.Notifier.Type)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れる
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.App.Timezone == "" {
		c.App.Timezone = DefaultTimezone
	}
	if c.App.LeaderboardLimit <= 0 {
		c.App.LeaderboardLimit = DefaultLeaderboardLimit
	}
	if c.App.HistoryLimit <= 0 {
		c.App.HistoryLimit = DefaultHistoryLimit
	}
	if c.App.FeatureRestoreInterval <= 0 {
		c.App.FeatureRestoreInterval = DefaultFeatureRestoreInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Notifier.Type == "" {
		c.Notifier.Type = DefaultNotifierType
	}
	if c.Notifier.Redis.Channel == "" {
		c.Notifier.Redis.Channel = DefaultRedisChannel
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
}

// Location は app.timezone を time.Location に解決する。不正な値は UTC。
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		log.Printf("Invalid timezone %q, falling back to UTC: %v", c.App.Timezone, err)
		return time.UTC
	}
	return loc
}
