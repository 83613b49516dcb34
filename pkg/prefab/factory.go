package prefab

import (
	"spiderden-server/internal/domain"
	"spiderden-server/pkg/logger"
)

// Factory строит сущности по имени префаба. Это основание цепочки
// спауна: реестр заполняется один раз в конструкторе и дальше
// не мутирует.
type Factory struct {
	registry map[domain.PrefabID]func() *domain.Entity
}

// NewFactory регистрирует все известные префабы
func NewFactory() *Factory {
	return &Factory{
		registry: map[domain.PrefabID]func() *domain.Entity{
			domain.PrefabSpider:        Spider.Spawn,
			domain.PrefabSpiderWarrior: SpiderWarrior.Spawn,
			domain.PrefabSpiderHider:   SpiderHider.Spawn,
		},
	}
}

// Spawn возвращает новую сущность или nil, если префаб неизвестен.
// Неизвестный ID - это не ошибка, а штатный ответ "не найдено".
// Роль фабрику не интересует: проверка доступа живет выше по цепочке.
func (f *Factory) Spawn(id domain.PrefabID, role domain.Role) *domain.Entity {
	build, ok := f.registry[id]
	if !ok {
		logger.Log.WithField("prefab", id).Debug("Unknown prefab requested")
		return nil
	}
	logger.Log.WithField("prefab", id).Debug("Building entity from template")
	return build()
}
