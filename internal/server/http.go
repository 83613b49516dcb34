package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"spiderden-server/internal/spawner"
	"spiderden-server/internal/version"
	"spiderden-server/pkg/logger"
)

type Server struct {
	Spawner *spawner.Service
	Port    string
}

func New(svc *spawner.Service, port string) *Server {
	return &Server{
		Spawner: svc,
		Port:    port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Spawner)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("🕷️  Spider Den Server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Spawner, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
