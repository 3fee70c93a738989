package utils

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"TELEGRAM_TOKEN", "API_TOKEN", "API_URL", "KINOPOISK_ROOT", "DESCRIPTION_LENGTH",
	"TOP_RESULTS_COUNT", "API_TIMEOUT", "LOG_LEVEL", "DEBUG", "WEBHOOK_URL", "WEBHOOK_SECRET", "LISTEN_ADDR",
}

// clearEnv сбрасывает все переменные конфигурации; t.Setenv восстановит их после теста
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configVars {
		t.Setenv(envPrefix+key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
	t.Setenv("KPOISK_API_TOKEN", "api_token")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "tg_token", config.TelegramToken)
	assert.Equal(t, "api_token", config.APIToken)
	assert.Equal(t, DefaultAPIURL, config.APIURL)
	assert.Equal(t, DefaultKinopoiskRoot, config.KinopoiskRoot)
	assert.Equal(t, 500, config.DescriptionLength)
	assert.Equal(t, 5, config.TopResultsCount)
	assert.Equal(t, 10*time.Second, config.APITimeout)
	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.Debug)
	assert.Equal(t, ":8080", config.ListenAddr)
	assert.False(t, config.UseWebhook())
}

func TestLoadConfig_AllParameters(t *testing.T) {
	clearEnv(t)
	t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
	t.Setenv("KPOISK_API_TOKEN", "api_token")
	t.Setenv("KPOISK_API_URL", "http://localhost:9000")
	t.Setenv("KPOISK_KINOPOISK_ROOT", "https://www.kinopoisk.ru")
	t.Setenv("KPOISK_DESCRIPTION_LENGTH", "200")
	t.Setenv("KPOISK_TOP_RESULTS_COUNT", "3")
	t.Setenv("KPOISK_API_TIMEOUT", "2s")
	t.Setenv("KPOISK_LOG_LEVEL", "debug")
	t.Setenv("KPOISK_DEBUG", "1")
	t.Setenv("KPOISK_WEBHOOK_URL", "https://bot.example.com/webhook")
	t.Setenv("KPOISK_WEBHOOK_SECRET", "s3cret")
	t.Setenv("KPOISK_LISTEN_ADDR", ":9090")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		TelegramToken:     "tg_token",
		APIToken:          "api_token",
		APIURL:            "http://localhost:9000",
		KinopoiskRoot:     "https://www.kinopoisk.ru",
		DescriptionLength: 200,
		TopResultsCount:   3,
		APITimeout:        2 * time.Second,
		LogLevel:          "debug",
		Debug:             true,
		WebhookURL:        "https://bot.example.com/webhook",
		WebhookSecret:     "s3cret",
		ListenAddr:        ":9090",
	}, config)
	assert.True(t, config.UseWebhook())
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setupEnv func(t *testing.T)
		errText  string
	}{
		{
			name: "Missing Telegram token",
			setupEnv: func(t *testing.T) {
				t.Setenv("KPOISK_API_TOKEN", "api_token")
			},
			errText: "KPOISK_TELEGRAM_TOKEN is required",
		},
		{
			name: "Missing API token",
			setupEnv: func(t *testing.T) {
				t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
			},
			errText: "KPOISK_API_TOKEN is required",
		},
		{
			name: "Description length is not a number",
			setupEnv: func(t *testing.T) {
				t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
				t.Setenv("KPOISK_API_TOKEN", "api_token")
				t.Setenv("KPOISK_DESCRIPTION_LENGTH", "long")
			},
			errText: "KPOISK_DESCRIPTION_LENGTH is not a valid integer",
		},
		{
			name: "Description length too short",
			setupEnv: func(t *testing.T) {
				t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
				t.Setenv("KPOISK_API_TOKEN", "api_token")
				t.Setenv("KPOISK_DESCRIPTION_LENGTH", "3")
			},
			errText: "KPOISK_DESCRIPTION_LENGTH must be greater than 3",
		},
		{
			name: "Zero top results",
			setupEnv: func(t *testing.T) {
				t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
				t.Setenv("KPOISK_API_TOKEN", "api_token")
				t.Setenv("KPOISK_TOP_RESULTS_COUNT", "0")
			},
			errText: "KPOISK_TOP_RESULTS_COUNT must be positive",
		},
		{
			name: "Bad timeout",
			setupEnv: func(t *testing.T) {
				t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
				t.Setenv("KPOISK_API_TOKEN", "api_token")
				t.Setenv("KPOISK_API_TIMEOUT", "ten")
			},
			errText: "KPOISK_API_TIMEOUT is not a valid duration",
		},
		{
			name: "Bad debug flag",
			setupEnv: func(t *testing.T) {
				t.Setenv("KPOISK_TELEGRAM_TOKEN", "tg_token")
				t.Setenv("KPOISK_API_TOKEN", "api_token")
				t.Setenv("KPOISK_DEBUG", "maybe")
			},
			errText: "KPOISK_DEBUG is not a valid boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.setupEnv(t)

			config, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, config)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"Environment variable set", "actual_value", "default_value", "actual_value"},
		{"Environment variable empty", "", "default_value", "default_value"},
		{"Only whitespace", "   ", "default_value", "default_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KPOISK_TEST_VAR", tt.envValue)
			assert.Equal(t, tt.expected, getEnv("TEST_VAR", tt.defaultVal))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger("debug")

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.True(t, formatter.FullTimestamp)
}
