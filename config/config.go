package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string

	SessionTTL time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "skycast-weather-widget")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("SESSION_TTL", 30*time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: v.GetString("OPENWEATHER_BASE_URL"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
