package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config - параметры приложения из переменных окружения
type Config struct {
	// Port - порт HTTP/WebSocket сервера
	Port string `env:"SD_PORT" envDefault:"8080"`

	// SpawnLatency - имитация сетевой задержки удаленной фабрики
	SpawnLatency time.Duration `env:"SD_SPAWN_LATENCY" envDefault:"2s"`
}

// Load читает конфиг из окружения
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
