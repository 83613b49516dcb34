package domain

// Entity описывает существо, созданное фабрикой.
// После создания не изменяется: кеширующий слой раздает один и тот же
// указатель всем последующим запросам, поэтому поля только для чтения.
type Entity struct {
	ID        PrefabID `json:"id"`
	Name      string   `json:"name"`
	MaxHealth int      `json:"maxHealth"`
	Damage    int      `json:"damage"`
}
