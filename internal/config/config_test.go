package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Success with minimal required config",
			envVars: map[string]string{
				"ADMIN_PASSWORD": "secret",
			},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"SERVER_HOST":             "localhost",
				"SERVER_PORT":             "9090",
				"LOG_LEVEL":               "debug",
				"LOG_FORMAT":              "console",
				"SHOP_NAME":               "متجر الاختبار",
				"SHOP_WHATSAPP_NUMBER":    "9647700000000",
				"ADMIN_USERNAME":          "admin",
				"ADMIN_PASSWORD":          "secret",
				"GRAPH_ENDPOINT":          "https://graph.example.com/v19.0",
				"ADVICE_ENDPOINT":         "https://advice.example.com/v1",
				"ADVICE_API_KEY":          "key-123",
				"ADVICE_MODEL":            "test-model",
				"ADVICE_TEMPERATURE":      "0.5",
				"SOCIAL_CREDENTIALS_FILE": "/tmp/creds.json",
			},
			expectError: false,
		},
		{
			name:        "Error - missing admin password",
			envVars:     map[string]string{},
			expectError: true,
			errorMsg:    "admin password is required",
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT":    "99999",
				"ADMIN_PASSWORD": "secret",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL":      "invalid",
				"ADMIN_PASSWORD": "secret",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT":     "xml",
				"ADMIN_PASSWORD": "secret",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
		{
			name: "Error - invalid advice temperature",
			envVars: map[string]string{
				"ADVICE_TEMPERATURE": "9.5",
				"ADMIN_PASSWORD":     "secret",
			},
			expectError: true,
			errorMsg:    "invalid advice temperature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "عالم بلاستك - الكوت", cfg.Shop.Name)
	assert.Equal(t, "9647747782808", cfg.Shop.WhatsAppNumber)
	assert.Equal(t, "mushtaq", cfg.Admin.Username)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.InDelta(t, 0.7, cfg.Advice.Temperature, 0.0001)
	assert.Equal(t, "data/social_credentials.json", cfg.Settings.SocialCredentialsFile)
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 9000}
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())
}
