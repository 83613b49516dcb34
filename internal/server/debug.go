package server

import (
	"encoding/json"
	"net/http"

	"spiderden-server/internal/spawner"
)

// DebugHandler предоставляет доступ к внутреннему состоянию цепочки спауна
type DebugHandler struct {
	Service *spawner.Service
}

func NewDebugHandler(s *spawner.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/accesslog", h.handleAccessLog)
	mux.HandleFunc("/debug/cache", h.handleCache)
}

// /debug/accesslog - полный журнал обращений к цепочке
func (h *DebugHandler) handleAccessLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.AccessLog())
}

// /debug/cache - размер кеша сущностей (вытеснения нет, рост монотонный)
func (h *DebugHandler) handleCache(w http.ResponseWriter, r *http.Request) {
	type CacheSummary struct {
		Entries int `json:"entries"`
	}
	writeJSON(w, CacheSummary{Entries: h.Service.CacheSize()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
