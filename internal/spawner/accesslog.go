package spawner

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"spiderden-server/internal/domain"
	"spiderden-server/pkg/logger"
	"spiderden-server/pkg/utils"
)

// AccessEvent - одна запись журнала обращений
type AccessEvent struct {
	EventID   string          `json:"eventId"`
	PrefabID  domain.PrefabID `json:"prefabId"`
	Role      domain.Role     `json:"role"`
	Timestamp int64           `json:"timestamp"` // unix millis
}

// AccessLogProxy (smart reference) фиксирует каждое обращение к цепочке
// и делегирует дальше без изменений. Ровно одно событие на запрос,
// независимо от того, попали мы в кеш или нет и был ли отказ.
type AccessLogProxy struct {
	next Spawner

	mu     sync.Mutex
	events []AccessEvent
}

func NewAccessLogProxy(next Spawner) *AccessLogProxy {
	return &AccessLogProxy{next: next}
}

func (l *AccessLogProxy) Spawn(id domain.PrefabID, role domain.Role) *domain.Entity {
	ev := AccessEvent{
		EventID:   utils.GenerateID("ev_"),
		PrefabID:  id,
		Role:      role,
		Timestamp: time.Now().UnixMilli(),
	}

	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()

	logger.Log.WithFields(logrus.Fields{
		"event_id": ev.EventID,
		"prefab":   id,
		"role":     role,
	}).Info("Entity access")

	return l.next.Spawn(id, role)
}

// Events возвращает снимок журнала обращений
func (l *AccessLogProxy) Events() []AccessEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AccessEvent, len(l.events))
	copy(out, l.events)
	return out
}
