package utils

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
	"strconv"
	"time"
)

const (
	DataSourceLive    = "live"
	DataSourceFixture = "fixture"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// Application
	AppPort         string `yaml:"APP_PORT"`
	AppEnv          string `yaml:"APP_ENV"`
	DataSource      string `yaml:"DATA_SOURCE"`
	DefaultWeightKg string `yaml:"DEFAULT_WEIGHT_KG"`
	LogFile         string `yaml:"LOG_FILE"`
	RateLimit       string `yaml:"RATE_LIMIT"`
	SessionIdle     string `yaml:"SESSION_IDLE"`

	// Database configuration
	DBDriver     string `yaml:"DB_DRIVER"`
	DBUser       string `yaml:"DB_USER"`
	DBName       string `yaml:"DB_NAME"`
	DBPassword   string `yaml:"DB_PASSWORD"`
	DBPort       string `yaml:"DB_PORT"`
	DBHost       string `yaml:"DB_HOST"`
	DBSQLitePath string `yaml:"DB_SQLITE_PATH"`

	// Bearer tokens are issued by the identity provider and signed with this secret
	JWTSecret string `yaml:"JWT_SECRET"`
	JWTIssuer string `yaml:"JWT_ISSUER"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:         "8080",
		AppEnv:          "development",
		DataSource:      DataSourceLive,
		DefaultWeightKg: "60",
		LogFile:         "./logs/app.log",
		RateLimit:       "10",
		SessionIdle:     "24h",
		DBDriver:        DriverSQLite,
		DBPort:          "5432",
		DBSQLitePath:    "mysupps.db",
		JWTIssuer:       "MY-SUPPS",
	}
}

// envOverrides lists the keys that may be replaced by environment variables
// (or a .env file) after config.yaml has been read.
var envOverrides = []string{
	"APP_PORT", "APP_ENV", "DATA_SOURCE", "DEFAULT_WEIGHT_KG", "LOG_FILE", "RATE_LIMIT", "SESSION_IDLE",
	"DB_DRIVER", "DB_USER", "DB_NAME", "DB_PASSWORD", "DB_PORT", "DB_HOST", "DB_SQLITE_PATH",
	"JWT_SECRET", "JWT_ISSUER",
}

// LoadConfig reads config.yaml from the working directory.
func LoadConfig() {
	LoadConfigFrom("config.yaml")
}

// LoadConfigFrom reads the given yaml file, then applies .env and
// environment overrides. A missing file is not fatal.
func LoadConfigFrom(path string) {
	config = defaultConfig()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error reading .env file: %s", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Errorf("Error parsing YAML file: %s", err)
	}

	for _, key := range envOverrides {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			SetConfig(key, value)
		}
	}
}

// SetConfig replaces a single value. Unknown keys are ignored.
func SetConfig(key, value string) {
	if field := configField(key); field != nil {
		*field = value
	}
}

func GetConfig(key string) string {
	if field := configField(key); field != nil {
		return *field
	}
	return ""
}

// GetDefaultWeight returns DEFAULT_WEIGHT_KG, or 60 when it is unset or not a
// positive number.
func GetDefaultWeight() float64 {
	weight, err := strconv.ParseFloat(GetConfig("DEFAULT_WEIGHT_KG"), 64)
	if err != nil || weight <= 0 {
		return 60
	}
	return weight
}

// GetRateLimit returns the number of requests per second allowed per client.
// Zero disables the limiter.
func GetRateLimit() int {
	limit, err := strconv.Atoi(GetConfig("RATE_LIMIT"))
	if err != nil || limit < 0 {
		return 10
	}
	return limit
}

// GetSessionIdle returns how long an unused simulation session is kept.
func GetSessionIdle() time.Duration {
	idle, err := time.ParseDuration(GetConfig("SESSION_IDLE"))
	if err != nil || idle <= 0 {
		return 24 * time.Hour
	}
	return idle
}

func configField(key string) *string {
	switch key {
	case "APP_PORT":
		return &config.AppPort
	case "APP_ENV":
		return &config.AppEnv
	case "DATA_SOURCE":
		return &config.DataSource
	case "DEFAULT_WEIGHT_KG":
		return &config.DefaultWeightKg
	case "LOG_FILE":
		return &config.LogFile
	case "RATE_LIMIT":
		return &config.RateLimit
	case "SESSION_IDLE":
		return &config.SessionIdle
	case "DB_DRIVER":
		return &config.DBDriver
	case "DB_USER":
		return &config.DBUser
	case "DB_NAME":
		return &config.DBName
	case "DB_PASSWORD":
		return &config.DBPassword
	case "DB_PORT":
		return &config.DBPort
	case "DB_HOST":
		return &config.DBHost
	case "DB_SQLITE_PATH":
		return &config.DBSQLitePath
	case "JWT_SECRET":
		return &config.JWTSecret
	case "JWT_ISSUER":
		return &config.JWTIssuer
	default:
		return nil
	}
}
