package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер приложения. Создается сразу, чтобы пакеты
// (и их тесты) могли писать в него до вызова Init.
var Log = logrus.New()

// Init настраивает глобальный логгер. Вызывается один раз из main.
// Уровень берется из LOG_LEVEL (по умолчанию "info"),
// формат из LOG_FORMAT ("json" для продакшена, иначе цветной текст).
func Init() {
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
