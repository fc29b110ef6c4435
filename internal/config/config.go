package config

import (
	"fmt"
	"os"
	"strconv"

	"ocextract/internal/logger"
	"ocextract/internal/validation"
	"ocextract/pkg/models"
)

type Config struct {
	// Buyer profile stamped into every extracted record. The buyer is
	// configuration, not document data.
	BuyerCompany string
	BuyerCNPJ    string
	BuyerAddress string
	BuyerCity    string
	BuyerPhone   string

	// Validation Configuration
	TotalTolerance float64

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		BuyerCompany:  getEnv("OC_BUYER_COMPANY", "CLICK ILUMINACAO LTDA"),
		BuyerCNPJ:     getEnv("OC_BUYER_CNPJ", "06.293.416/0001-21"),
		BuyerAddress:  getEnv("OC_BUYER_ADDRESS", "AV. BENEDITO ALVES NAZARETH, 883, 40 - CAMPO DO PIRES"),
		BuyerCity:     getEnv("OC_BUYER_CITY", "NOVA LIMA (MG)"),
		BuyerPhone:    getEnv("OC_BUYER_PHONE", "(31) 3589-1424"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}

	tolerance := getEnv("OC_TOTAL_TOLERANCE", "")
	if tolerance == "" {
		config.TotalTolerance = validation.DefaultTotalTolerance
	} else {
		value, err := strconv.ParseFloat(tolerance, 64)
		if err != nil {
			return nil, fmt.Errorf("config validation failed: OC_TOTAL_TOLERANCE must be numeric: %w", err)
		}
		config.TotalTolerance = value
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.TotalTolerance < 0 {
		return fmt.Errorf("OC_TOTAL_TOLERANCE must not be negative")
	}
	return nil
}

// Buyer returns the configured buyer profile.
func (c *Config) Buyer() models.Buyer {
	return models.Buyer{
		Company: c.BuyerCompany,
		CNPJ:    c.BuyerCNPJ,
		Address: c.BuyerAddress,
		City:    c.BuyerCity,
		Phone:   c.BuyerPhone,
	}
}

// ValidationOptions returns the validation rule settings from the main config.
func (c *Config) ValidationOptions() validation.Options {
	return validation.Options{TotalTolerance: c.TotalTolerance}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
