package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Shop     ShopConfig
	Admin    AdminConfig
	Social   SocialConfig
	Advice   AdviceConfig
	Settings SettingsConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// ShopConfig holds the shop identity used in outbound messages.
type ShopConfig struct {
	Name           string
	WhatsAppNumber string // international format, digits only
}

// AdminConfig holds the back-office login credentials.
type AdminConfig struct {
	Username string
	Password string
}

// SocialConfig holds the Facebook Graph endpoint used for page posting.
type SocialConfig struct {
	GraphEndpoint string
}

// AdviceConfig holds the conversational API configuration.
type AdviceConfig struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
}

// SettingsConfig holds the location of the persisted settings blob.
type SettingsConfig struct {
	SocialCredentialsFile string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Shop: ShopConfig{
			Name:           getEnv("SHOP_NAME", "عالم بلاستك - الكوت"),
			WhatsAppNumber: getEnv("SHOP_WHATSAPP_NUMBER", "9647747782808"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "mushtaq"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Social: SocialConfig{
			GraphEndpoint: getEnv("GRAPH_ENDPOINT", "https://graph.facebook.com/v19.0"),
		},
		Advice: AdviceConfig{
			Endpoint:    getEnv("ADVICE_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:      getEnv("ADVICE_API_KEY", ""),
			Model:       getEnv("ADVICE_MODEL", "gemini-3-flash-preview"),
			Temperature: getEnvAsFloat("ADVICE_TEMPERATURE", 0.7),
		},
		Settings: SettingsConfig{
			SocialCredentialsFile: getEnv("SOCIAL_CREDENTIALS_FILE", "data/social_credentials.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Shop.Name == "" {
		return fmt.Errorf("shop name is required")
	}

	if c.Shop.WhatsAppNumber == "" {
		return fmt.Errorf("shop WhatsApp number is required")
	}

	if c.Admin.Username == "" {
		return fmt.Errorf("admin username is required")
	}

	if c.Admin.Password == "" {
		return fmt.Errorf("admin password is required")
	}

	if c.Social.GraphEndpoint == "" {
		return fmt.Errorf("graph endpoint is required")
	}

	if c.Advice.Temperature < 0 || c.Advice.Temperature > 2 {
		return fmt.Errorf("invalid advice temperature: %f", c.Advice.Temperature)
	}

	if c.Settings.SocialCredentialsFile == "" {
		return fmt.Errorf("social credentials file path is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
