package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	ObjectName        string  // target designation, e.g. "KIC 8462852"
	Mission           string  // survey the light curve came from
	ObjectRA          float64 // ICRS degrees; 0,0 disables the SIMBAD cross-check
	ObjectDec         float64
	InputPath         string  // CSV light curve; empty means synthesize demo data
	Sensitivity       float64 // detection threshold in sigmas
	SignificanceLevel float64 // p-value cutoff for pattern tests
	MinPeriodDays     float64 // planet search lower bound
	MaxPeriodDays     float64 // planet search upper bound
	CadenceMinutes    float64 // observation cadence
	SampleRateHz      float64 // signal sample rate for pattern analysis
	LogLevel          string
	RequestTimeout    int // seconds

	// Optional integrations; empty values disable them.
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	TelegramToken  string
	TelegramChatID int64
	SimbadURL      string
	ExoArchiveURL  string
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		ObjectName:        getEnvWithDefault("OBJECT_NAME", "SYNTHETIC-1"),
		Mission:           getEnvWithDefault("MISSION", "synthetic"),
		ObjectRA:          getEnvFloatWithDefault("OBJECT_RA", 0),
		ObjectDec:         getEnvFloatWithDefault("OBJECT_DEC", 0),
		InputPath:         os.Getenv("LIGHTCURVE_CSV"),
		Sensitivity:       getEnvFloatWithDefault("SENSITIVITY", 3.0),
		SignificanceLevel: getEnvFloatWithDefault("SIGNIFICANCE_LEVEL", 0.001),
		MinPeriodDays:     getEnvFloatWithDefault("MIN_PERIOD_DAYS", 0.5),
		MaxPeriodDays:     getEnvFloatWithDefault("MAX_PERIOD_DAYS", 50),
		CadenceMinutes:    getEnvFloatWithDefault("CADENCE_MINUTES", 30),
		SampleRateHz:      getEnvFloatWithDefault("SAMPLE_RATE_HZ", 1.0),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout:    getEnvIntWithDefault("REQUEST_TIMEOUT", 30),

		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnvWithDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnvWithDefault("DB_NAME", "cosmoscan"),
		DBSSLMode:      getEnvWithDefault("DB_SSLMODE", "disable"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0),
		SimbadURL:      getEnvWithDefault("SIMBAD_URL", "https://simbad.u-strasbg.fr/simbad/sim-tap/sync"),
		ExoArchiveURL:  getEnvWithDefault("EXOARCHIVE_URL", "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"),
	}

	return cfg, nil
}

// DatabaseEnabled reports whether a results database is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != "" && c.DBUser != ""
}

// TelegramEnabled reports whether discovery alerts are configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
