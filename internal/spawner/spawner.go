package spawner

import (
	"spiderden-server/internal/domain"
)

// Spawner - единый контракт для фабрики и всех прокси над ней.
// Каждый слой цепочки держит ссылку на следующий и реализует
// этот же метод, добавляя свое поведение до или вместо делегирования.
//
// Роль передается всегда: безролевого пути в цепочке нет, чтобы
// слой защиты нельзя было случайно обойти.
//
// Возврат nil - штатный результат ("не найдено" или "отказано"),
// а не ошибка. Причина отказа видна только в логе.
type Spawner interface {
	Spawn(id domain.PrefabID, role domain.Role) *domain.Entity
}
