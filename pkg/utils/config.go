package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "KPOISK_"

// Значения по умолчанию
const (
	DefaultAPIURL            = "https://kinopoiskapiunofficial.tech"
	DefaultKinopoiskRoot     = "https://kinopoisk.ru"
	DefaultDescriptionLength = 500
	DefaultTopResultsCount   = 5
	DefaultAPITimeout        = 10 * time.Second
	DefaultListenAddr        = ":8080"
)

// minDescriptionLength - длина многоточия, описание должно быть длиннее
const minDescriptionLength = 3

// Config структура для хранения всех конфигурационных параметров приложения
type Config struct {
	TelegramToken     string
	APIToken          string
	APIURL            string
	KinopoiskRoot     string
	DescriptionLength int
	TopResultsCount   int
	APITimeout        time.Duration
	LogLevel          string
	Debug             bool
	WebhookURL        string
	WebhookSecret     string
	ListenAddr        string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// .env нужен только при локальной разработке, его отсутствие не ошибка
	_ = godotenv.Load(".env")

	telegramToken, err := requireEnv("TELEGRAM_TOKEN")
	if err != nil {
		return nil, err
	}
	apiToken, err := requireEnv("API_TOKEN")
	if err != nil {
		return nil, err
	}

	descriptionLength, err := getEnvAsInt("DESCRIPTION_LENGTH", DefaultDescriptionLength)
	if err != nil {
		return nil, err
	}
	topResults, err := getEnvAsInt("TOP_RESULTS_COUNT", DefaultTopResultsCount)
	if err != nil {
		return nil, err
	}
	timeout, err := getEnvAsDuration("API_TIMEOUT", DefaultAPITimeout)
	if err != nil {
		return nil, err
	}
	debug, err := getEnvAsBool("DEBUG", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TelegramToken:     telegramToken,
		APIToken:          apiToken,
		APIURL:            getEnv("API_URL", DefaultAPIURL),
		KinopoiskRoot:     getEnv("KINOPOISK_ROOT", DefaultKinopoiskRoot),
		DescriptionLength: descriptionLength,
		TopResultsCount:   topResults,
		APITimeout:        timeout,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Debug:             debug,
		WebhookURL:        getEnv("WEBHOOK_URL", ""),
		WebhookSecret:     getEnv("WEBHOOK_SECRET", ""),
		ListenAddr:        getEnv("LISTEN_ADDR", DefaultListenAddr),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет параметры конфигурации
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return errors.New(envPrefix + "TELEGRAM_TOKEN is required")
	}
	if c.APIToken == "" {
		return errors.New(envPrefix + "API_TOKEN is required")
	}
	if c.DescriptionLength <= minDescriptionLength {
		return fmt.Errorf("%sDESCRIPTION_LENGTH must be greater than %d, got %d",
			envPrefix, minDescriptionLength, c.DescriptionLength)
	}
	if c.TopResultsCount <= 0 {
		return fmt.Errorf("%sTOP_RESULTS_COUNT must be positive, got %d", envPrefix, c.TopResultsCount)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("%sAPI_TIMEOUT must be positive, got %s", envPrefix, c.APITimeout)
	}
	return nil
}

// UseWebhook сообщает, что бот получает обновления через webhook, а не long polling
func (c *Config) UseWebhook() bool {
	return c.WebhookURL != ""
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(envPrefix + key)); value != "" {
		return value
	}
	return defaultValue
}

func requireEnv(key string) (string, error) {
	value := getEnv(key, "")
	if value == "" {
		return "", fmt.Errorf("%s%s is required", envPrefix, key)
	}
	return value, nil
}

// getEnvAsInt получает значение переменной окружения как integer
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s%s is not a valid integer: %q", envPrefix, key, value)
	}
	return intValue, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s%s is not a valid duration: %q", envPrefix, key, value)
	}
	return d, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s%s is not a valid boolean: %q", envPrefix, key, value)
	}
	return b, nil
}
