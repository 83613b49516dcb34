package spawner

import (
	"time"

	"spiderden-server/internal/domain"
	"spiderden-server/pkg/logger"
)

// RemoteProxy имитирует обращение к удаленному серверу сущностей:
// перед делегированием выдерживает фиксированную задержку round-trip.
// Sleep паркует только горутину текущего запроса, остальные запросы
// не блокируются.
type RemoteProxy struct {
	next    Spawner
	latency time.Duration
}

func NewRemoteProxy(next Spawner, latency time.Duration) *RemoteProxy {
	return &RemoteProxy{next: next, latency: latency}
}

// Spawn ждет задержку и делегирует дальше, результат не трогает
func (r *RemoteProxy) Spawn(id domain.PrefabID, role domain.Role) *domain.Entity {
	logger.Log.WithField("prefab", id).Debug("Remote fetch started")
	time.Sleep(r.latency)
	return r.next.Spawn(id, role)
}
