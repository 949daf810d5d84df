package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Provider struct {
	PrimaryURL     string `mapstructure:"primary_url"`
	FallbackURL    string `mapstructure:"fallback_url"`
	ID             string `mapstructure:"id"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Scheduler struct {
	DailyHour           int `mapstructure:"daily_hour"`
	RealtimeIntervalSec int `mapstructure:"realtime_interval_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Provider   Provider   `mapstructure:"provider"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("provider.timeout_seconds", 10)
	viper.SetDefault("provider.id", "currency-api")
	viper.SetDefault("scheduler.daily_hour", 8)
	viper.SetDefault("scheduler.realtime_interval_seconds", 90)
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// provider env vars
	_ = viper.BindEnv("provider.primary_url", "PROVIDER_PRIMARY_URL")
	_ = viper.BindEnv("provider.fallback_url", "PROVIDER_FALLBACK_URL")
	_ = viper.BindEnv("provider.timeout_seconds", "PROVIDER_TIMEOUT_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
