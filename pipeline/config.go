package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config конфигурация конвейера обработки
type Config struct {
	// Каталоги данных
	RawDataDir   string
	ProcessedDir string

	// Файлы состояния
	FieldMappingsFile string
	UnparsedWordsFile string

	// База данных
	DatabasePath string

	// Classifier конфигурация
	ClassifierURL   string
	ClassifierModel string

	// Connection pooling
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Каталоги данных
		RawDataDir:   getEnv("RAW_DATA_DIR", "data/raw"),
		ProcessedDir: getEnv("PROCESSED_DIR", "data/processed"),

		// Файлы состояния
		FieldMappingsFile: getEnv("FIELD_MAPPINGS_FILE", "data/field_mappings.json"),
		UnparsedWordsFile: getEnv("UNPARSED_WORDS_FILE", "data/unparsed_words.json"),

		// База данных
		DatabasePath: getEnv("DATABASE_PATH", "specfusion.db"),

		// Classifier конфигурация
		ClassifierURL:   os.Getenv("CLASSIFIER_URL"),
		ClassifierModel: getEnv("CLASSIFIER_MODEL", "token-classification-v2"),

		// Connection pooling
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
	}

	// Валидация
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate валидирует конфигурацию
func (c *Config) Validate() error {
	if c.RawDataDir == "" {
		return fmt.Errorf("raw data dir is required")
	}

	if c.ProcessedDir == "" {
		return fmt.Errorf("processed dir is required")
	}

	if c.FieldMappingsFile == "" {
		return fmt.Errorf("field mappings file is required")
	}

	if c.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be greater than 0")
	}

	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be greater than 0")
	}

	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max idle connections cannot be greater than max open connections")
	}

	return nil
}

// CatalogPath возвращает путь файла каталога для идентификатора продукта
func (c *Config) CatalogPath(productID string) string {
	return filepath.Join(c.ProcessedDir, fmt.Sprintf("product_%s_catalog.json", productID))
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
