package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	Database DatabaseConfig
	Market   MarketConfig
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"DB_DRIVER"`
	Path     string `mapstructure:"DB_PATH"`
	Host     string `mapstructure:"DB_HOST"`
	Port     string `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
	SSLMode  string `mapstructure:"DB_SSL_MODE"`
}

type MarketConfig struct {
	TransactionsFile string `mapstructure:"TRANSACTIONS_FILE"`
	UsersJSONFile    string `mapstructure:"USERS_JSON_FILE"`
	StatsFile        string `mapstructure:"STATS_FILE"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf(".env dosyası yüklenemedi: %w", err)
	}

	viper.AutomaticEnv()

	viper.SetDefault("DB_DRIVER", "sqlite3")
	viper.SetDefault("DB_PATH", "vapor.db")
	viper.SetDefault("TRANSACTIONS_FILE", "daily.txt")
	viper.SetDefault("USERS_JSON_FILE", "users.json")
	viper.SetDefault("STATS_FILE", "stats.txt")

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")

	cfg.Database.Driver = viper.GetString("DB_DRIVER")
	cfg.Database.Path = viper.GetString("DB_PATH")
	cfg.Database.Host = viper.GetString("DB_HOST")
	cfg.Database.Port = viper.GetString("DB_PORT")
	cfg.Database.User = viper.GetString("DB_USER")
	cfg.Database.Password = viper.GetString("DB_PASSWORD")
	cfg.Database.Name = viper.GetString("DB_NAME")
	cfg.Database.SSLMode = viper.GetString("DB_SSL_MODE")

	cfg.Market.TransactionsFile = viper.GetString("TRANSACTIONS_FILE")
	cfg.Market.UsersJSONFile = viper.GetString("USERS_JSON_FILE")
	cfg.Market.StatsFile = viper.GetString("STATS_FILE")

	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return &cfg, nil
}
