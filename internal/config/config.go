package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	AI     AIConfig     `yaml:"ai"`
	Order  OrderConfig  `yaml:"order"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type AIConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
}

type OrderConfig struct {
	// BlockOnStockShortfall upgrades the advisory stock check at finalize
	// time into a hard precondition.
	BlockOnStockShortfall bool `yaml:"blockOnStockShortfall"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("AI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("AI_API_KEY", "")
	viper.SetDefault("AI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ORDER_BLOCK_ON_STOCK_SHORTFALL", false)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		AI: AIConfig{
			BaseURL: viper.GetString("AI_BASE_URL"),
			APIKey:  viper.GetString("AI_API_KEY"),
			Model:   viper.GetString("AI_MODEL"),
		},
		Order: OrderConfig{
			BlockOnStockShortfall: viper.GetBool("ORDER_BLOCK_ON_STOCK_SHORTFALL"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
