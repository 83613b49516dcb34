package spawner

import (
	"sync"

	"spiderden-server/internal/domain"
)

// countingSpawner - фейковый нижний слой для тестов прокси.
// Считает вызовы и отдает заранее заданный результат.
type countingSpawner struct {
	mu     sync.Mutex
	calls  int
	result *domain.Entity

	lastID   domain.PrefabID
	lastRole domain.Role
}

func (c *countingSpawner) Spawn(id domain.PrefabID, role domain.Role) *domain.Entity {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.lastID = id
	c.lastRole = role
	return c.result
}

func (c *countingSpawner) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func testSpider() *domain.Entity {
	return &domain.Entity{
		ID:        domain.PrefabSpider,
		Name:      "Spider",
		MaxHealth: 100,
		Damage:    20,
	}
}
