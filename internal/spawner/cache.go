package spawner

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"spiderden-server/internal/domain"
	"spiderden-server/pkg/logger"
)

// CacheProxy (виртуальный прокси) запоминает результат первого спауна
// по каждому префабу и дальше отдает его, не трогая обернутую фабрику.
//
// Важные детали политики:
//   - nil тоже кешируется: неизвестный префаб повторно не запрашивается,
//     comma-ok на мапе отличает "закешированный nil" от "еще не было".
//   - Промахи идут через singleflight: одновременные первые запросы
//     одного префаба схлопываются в один вызов фабрики, так что
//     создание гарантированно не более одного раза на ID.
//   - Вытеснения нет: набор префабов закрыт и мал.
type CacheProxy struct {
	next Spawner

	mu      sync.RWMutex
	entries map[domain.PrefabID]*domain.Entity
	flight  singleflight.Group
}

func NewCacheProxy(next Spawner) *CacheProxy {
	return &CacheProxy{
		next:    next,
		entries: make(map[domain.PrefabID]*domain.Entity),
	}
}

func (c *CacheProxy) Spawn(id domain.PrefabID, role domain.Role) *domain.Entity {
	c.mu.RLock()
	ent, hit := c.entries[id]
	c.mu.RUnlock()
	if hit {
		logger.Log.WithField("prefab", id).Debug("Cache hit")
		return ent
	}

	v, _, _ := c.flight.Do(string(id), func() (interface{}, error) {
		// Пока мы ждали очередь singleflight, другой вызов мог уже
		// заполнить кеш - перепроверяем перед походом вниз.
		c.mu.RLock()
		ent, hit := c.entries[id]
		c.mu.RUnlock()
		if hit {
			return ent, nil
		}

		created := c.next.Spawn(id, role)

		c.mu.Lock()
		c.entries[id] = created
		c.mu.Unlock()

		logger.Log.WithField("prefab", id).Debug("Cache filled")
		return created, nil
	})

	ent, _ = v.(*domain.Entity)
	return ent
}

// Size возвращает число закешированных записей (для debug-эндпоинта)
func (c *CacheProxy) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
