package spawner

import (
	"github.com/sirupsen/logrus"

	"spiderden-server/internal/domain"
	"spiderden-server/pkg/logger"
)

// AccessProxy (защитный прокси) не пропускает запросы на закрытые
// префабы от недостаточно привилегированных ролей. Отказ - это nil,
// до обернутого слоя запрос не доходит; причина видна только в логе.
type AccessProxy struct {
	next Spawner

	// restricted: префаб -> минимально необходимая роль.
	// Все, чего здесь нет, спаунится любой ролью.
	restricted map[domain.PrefabID]domain.Role
}

func NewAccessProxy(next Spawner) *AccessProxy {
	return &AccessProxy{
		next: next,
		restricted: map[domain.PrefabID]domain.Role{
			domain.PrefabSpiderHider: domain.RoleAdmin,
		},
	}
}

func (a *AccessProxy) Spawn(id domain.PrefabID, role domain.Role) *domain.Entity {
	if required, ok := a.restricted[id]; ok && role != required {
		logger.Log.WithFields(logrus.Fields{
			"prefab": id,
			"role":   role,
		}).Warn("Spawn denied: restricted prefab")
		return nil
	}
	return a.next.Spawn(id, role)
}
