package spawner

import (
	"spiderden-server/internal/domain"
	"spiderden-server/pkg/logger"
	"spiderden-server/pkg/prefab"
)

// Service собирает цепочку спауна и отдает наружу ее публичные входы.
//
// Порядок слоев (сверху вниз, запрос проходит их по очереди):
//
//	AccessLogProxy -> AccessProxy -> CacheProxy -> RemoteProxy -> Factory
//
// Журнал стоит первым, чтобы фиксировать и отказанные запросы;
// кеш стоит под защитой, чтобы попадание в кеш не обходило проверку роли.
type Service struct {
	chain Spawner

	// Прямые ссылки на слои, у которых есть наблюдаемое состояние
	accessLog *AccessLogProxy
	cache     *CacheProxy
}

// NewService строит цепочку снизу вверх
func NewService(cfg Config) *Service {
	factory := prefab.NewFactory()
	remote := NewRemoteProxy(factory, cfg.SpawnLatency)
	cache := NewCacheProxy(remote)
	access := NewAccessProxy(cache)
	accessLog := NewAccessLogProxy(access)

	logger.Log.WithField("latency", cfg.SpawnLatency).Info("Spawn chain assembled")

	return &Service{
		chain:     accessLog,
		accessLog: accessLog,
		cache:     cache,
	}
}

// CreateEntity - доверенный серверный спаун (от имени игрового цикла).
// Проходит всю цепочку с ролью админа, так что закрытые префабы
// серверу доступны.
func (s *Service) CreateEntity(id domain.PrefabID) *domain.Entity {
	return s.chain.Spawn(id, domain.RoleAdmin)
}

// CreateProtectedEntity спаунит от имени роли вызывающего.
// Закрытые префабы для непривилегированных ролей вернут nil.
func (s *Service) CreateProtectedEntity(id domain.PrefabID, role domain.Role) *domain.Entity {
	return s.chain.Spawn(id, role)
}

// AccessEntity - доверенный вход с акцентом на журналирование:
// каждое обращение оставляет ровно одну запись в журнале.
func (s *Service) AccessEntity(id domain.PrefabID) *domain.Entity {
	return s.chain.Spawn(id, domain.RoleAdmin)
}

// AccessLog возвращает снимок журнала обращений
func (s *Service) AccessLog() []AccessEvent {
	return s.accessLog.Events()
}

// CacheSize возвращает число записей в кеше сущностей
func (s *Service) CacheSize() int {
	return s.cache.Size()
}
