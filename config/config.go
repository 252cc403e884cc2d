package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"port"`
	UploadDir        string `mapstructure:"upload_dir"`
	AIProvider       string `mapstructure:"ai_provider"`
	AIEndpoint       string `mapstructure:"ai_endpoint"`
	Model            string `mapstructure:"model"`
	FallbackModel    string `mapstructure:"fallback_model"`
	MaxWords         int    `mapstructure:"max_words"`
	MultiDocMaxWords int    `mapstructure:"multi_doc_max_words"`
	AWSRegion        string `mapstructure:"aws_region"`
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey     string `mapstructure:"OPENAI_API_KEY"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("ai_provider", "gemini")
	v.SetDefault("model", "gemini-1.5-flash-latest")
	v.SetDefault("fallback_model", "gemini-1.0-pro-latest")
	v.SetDefault("max_words", 150)
	v.SetDefault("multi_doc_max_words", 500)
	v.SetDefault("aws_region", "us-east-1")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("OPENAI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
