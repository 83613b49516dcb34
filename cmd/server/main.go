package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spiderden-server/internal/config"
	"spiderden-server/internal/server"
	"spiderden-server/internal/spawner"
	"spiderden-server/internal/version"
	"spiderden-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var latency time.Duration
	flag.DurationVar(&latency, "latency", 0, "Simulated spawn latency (0 = use env/default)")
	flag.Parse()

	logger.Log.Info("Starting Spider Den...")
	logger.Log.Info(version.String())

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}
	if latency > 0 {
		cfg.SpawnLatency = latency
		logger.Log.Infof("🕸️  Using explicit spawn latency: %s", latency)
	}

	// 2. Сборка цепочки спауна
	spawnCfg := spawner.NewConfig()
	spawnCfg.SpawnLatency = cfg.SpawnLatency
	svc := spawner.NewService(spawnCfg)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(svc, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.WithField("access_events", len(svc.AccessLog())).Info("Done.")
}
