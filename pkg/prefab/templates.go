package prefab

import (
	"spiderden-server/internal/domain"
)

// EntityTemplate определяет шаблон для создания сущности
type EntityTemplate struct {
	ID        domain.PrefabID
	Name      string
	MaxHealth int
	Damage    int
}

// Spawn создает новую сущность из шаблона
func (t EntityTemplate) Spawn() *domain.Entity {
	return &domain.Entity{
		ID:        t.ID,
		Name:      t.Name,
		MaxHealth: t.MaxHealth,
		Damage:    t.Damage,
	}
}

// --- ПАУКИ ---

// Spider - рядовой паук, основа популяции подземелья
var Spider = EntityTemplate{
	ID:        domain.PrefabSpider,
	Name:      "Spider",
	MaxHealth: 100,
	Damage:    20,
}

// SpiderWarrior - боевая особь, держит передовую гнезда
var SpiderWarrior = EntityTemplate{
	ID:        domain.PrefabSpiderWarrior,
	Name:      "Spider Warrior",
	MaxHealth: 300,
	Damage:    45,
}

// SpiderHider - скрытный паук-засадник. Доступен только админу:
// обычным клиентам его спаунить нельзя (см. слой защиты).
var SpiderHider = EntityTemplate{
	ID:        domain.PrefabSpiderHider,
	Name:      "Spider Hider",
	MaxHealth: 600,
	Damage:    20,
}
