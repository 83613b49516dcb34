package api

// --- КЛИЕНТ -> СЕРВЕР ---

// Действия, которые понимает сервер
const (
	// ActionSpawn - спаун от имени роли клиента (с проверкой доступа)
	ActionSpawn = "SPAWN"

	// ActionAccess - доверенное обращение к сущности (серверная роль).
	// Используется игровым циклом и отладочными клиентами.
	ActionAccess = "ACCESS"
)

// ClientCommand - команда клиента по WebSocket
type ClientCommand struct {
	Action string `json:"action"`

	// PrefabID какой префаб спаунить ("spider", "spider_warrior", ...)
	PrefabID string `json:"prefabId"`

	// Role роль клиента. Обязательна для SPAWN, для ACCESS игнорируется.
	Role string `json:"role,omitempty"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы ответов сервера
const (
	ResponseSpawnResult = "SPAWN_RESULT"
	ResponseError       = "ERROR"
)

// ServerResponse - ответ сервера на одну команду.
type ServerResponse struct {
	Type string `json:"type"`

	// Entity созданная сущность. nil означает "не найдено" или "отказано" -
	// клиент различает их только по наличию Error.
	Entity *EntityView `json:"entity,omitempty"`

	// Error текст ошибки протокола (невалидная команда, битый JSON).
	// Отказ в доступе ошибкой не считается.
	Error string `json:"error,omitempty"`
}

// EntityView - DTO сущности для клиента
type EntityView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MaxHealth int    `json:"maxHealth"`
	Damage    int    `json:"damage"`
}
