package spawner

import "time"

// Config хранит параметры цепочки спауна
type Config struct {
	// SpawnLatency - имитация сетевого round-trip в RemoteProxy
	SpawnLatency time.Duration
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		SpawnLatency: 2 * time.Second,
	}
}
