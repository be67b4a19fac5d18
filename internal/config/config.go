package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr       string
	DatabaseDriver string
	DatabaseURL    string
	DBMaxOpenConns int64
	CORSOrigins    []string
	LogLevel       string
	TelegramToken  string
	TelegramDebug  bool
}

var instance *Config
var once sync.Once

// GetConfig читает конфиг один раз за время жизни процесса
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Warnf("no .env file loaded, using process environment: %s", err.Error())
		}

		instance = Load()
	})

	return instance
}

// Load собирает конфиг из переменных окружения
func Load() *Config {
	cfg := &Config{}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8000")
	cfg.DatabaseDriver = strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite"))
	cfg.DatabaseURL = getEnv("DATABASE_URL", "wageflow.db")
	cfg.DBMaxOpenConns = getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	cfg.CORSOrigins = getEnvAsList("CORS_ORIGINS", []string{"*"})
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	cfg.TelegramDebug = getEnvAsBool("TELEGRAM_DEBUG", false)

	return cfg
}

// ApplyLogLevel выставляет уровень логирования для logrus
func (c *Config) ApplyLogLevel(logger *logrus.Logger) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Warnf("unknown LOG_LEVEL %q, falling back to info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}

func getEnvAsList(name string, defaultVal []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return defaultVal
	}

	var list []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultVal
	}

	return list
}
