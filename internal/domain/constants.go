package domain

// PrefabID - имя шаблона, по которому фабрика строит сущность
type PrefabID string

// Известные префабы (закрытый набор, регистрируется один раз при старте)
const (
	PrefabSpider        PrefabID = "spider"
	PrefabSpiderWarrior PrefabID = "spider_warrior"
	PrefabSpiderHider   PrefabID = "spider_hider"
)

// Role - роль вызывающей стороны для проверки доступа
type Role string

const (
	// RoleAdmin - привилегированная роль. Сам игровой цикл спаунит
	// монстров от имени этой роли.
	RoleAdmin Role = "admin"

	// RoleGuest - непривилегированный клиент
	RoleGuest Role = "guest"
)
