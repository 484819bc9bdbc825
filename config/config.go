package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Generator GeneratorConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// GeneratorConfig holds parameters for a generation run
type GeneratorConfig struct {
	OrderCount   int
	ExpenseCount int
	WindowDays   int
	FolioPrefix  string
	FolioWidth   int
	Seed         int64
}

// AmountRange is an inclusive integer range for expense amounts
type AmountRange struct {
	Low  int
	High int
}

// ExpenseRanges maps expense category names to their allowed amount range.
// A category sampled without an entry here aborts the run.
var ExpenseRanges = map[string]AmountRange{
	"Supplies":    {200, 1500},
	"Utilities":   {300, 800},
	"Payroll":     {2000, 6000},
	"Maintenance": {150, 1200},
	"Marketing":   {100, 500},
	"Other":       {50, 300},
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		fmt.Println("No .env file found")
	}

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "gorditas"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Generator: GeneratorConfig{
			OrderCount:   getEnvInt("ORDER_COUNT", 75),
			ExpenseCount: getEnvInt("EXPENSE_COUNT", 40),
			WindowDays:   getEnvInt("WINDOW_DAYS", 30),
			FolioPrefix:  getEnv("FOLIO_PREFIX", "GC"),
			FolioWidth:   getEnvInt("FOLIO_WIDTH", 4),
			Seed:         getEnvInt64("RANDOM_SEED", time.Now().UnixNano()),
		},
	}

	if config.Generator.OrderCount < 0 {
		return nil, fmt.Errorf("ORDER_COUNT must not be negative, got %d", config.Generator.OrderCount)
	}
	if config.Generator.ExpenseCount < 0 {
		return nil, fmt.Errorf("EXPENSE_COUNT must not be negative, got %d", config.Generator.ExpenseCount)
	}
	if config.Generator.WindowDays <= 0 {
		return nil, fmt.Errorf("WINDOW_DAYS must be positive, got %d", config.Generator.WindowDays)
	}
	if config.Generator.FolioWidth <= 0 {
		return nil, fmt.Errorf("FOLIO_WIDTH must be positive, got %d", config.Generator.FolioWidth)
	}

	return config, nil
}

// Window returns the generation date window ending at now
func (c *GeneratorConfig) Window(now time.Time) (start, end time.Time) {
	end = now
	start = end.AddDate(0, 0, -c.WindowDays)
	return start, end
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an integer environment variable with a fallback value
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvInt64 gets an int64 environment variable with a fallback value
func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
