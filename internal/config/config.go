// Package config читает настройки сервиса из окружения и файла настроек витрины.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config описывает параметры запуска сервиса состояния витрины.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	NATSURL        string
	ClusterID      string
	ClientID       string
	RequestSubject string
	EventSubject   string
	Durable        string

	SettingsFile     string
	SnapshotInterval time.Duration
	// допустимое число записывающих запросов в секунду
	WriteRateLimit float64
}

// Load читает конфигурацию из окружения. Если задан ENV_FILE или в рабочем каталоге
// есть .env, его значения подгружаются без перезаписи уже заданных переменных.
func Load() (Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		NATSURL:        getEnv("NATS_URL", "nats://localhost:4223"),
		ClusterID:      getEnv("STAN_CLUSTER_ID", "storefront-cluster"),
		ClientID:       getEnv("STAN_CLIENT_ID", fmt.Sprintf("storefront-%d", time.Now().UnixNano())),
		RequestSubject: getEnv("STAN_REQUEST_SUBJECT", "storefront.requests"),
		EventSubject:   getEnv("STAN_EVENT_SUBJECT", "storefront.events"),
		Durable:        getEnv("STAN_DURABLE", "storefront-durable"),
		SettingsFile:   os.Getenv("SETTINGS_FILE"),
	}

	var err error
	if cfg.SnapshotInterval, err = time.ParseDuration(getEnv("SNAPSHOT_INTERVAL", "5s")); err != nil {
		return Config{}, fmt.Errorf("SNAPSHOT_INTERVAL: %w", err)
	}
	if cfg.WriteRateLimit, err = strconv.ParseFloat(getEnv("WRITE_RATE_LIMIT", "20"), 64); err != nil {
		return Config{}, fmt.Errorf("WRITE_RATE_LIMIT: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
