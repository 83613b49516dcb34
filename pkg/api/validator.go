package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (c ClientCommand) Validate() error {
	if c.PrefabID == "" {
		return errors.New("prefabId is required")
	}
	switch c.Action {
	case ActionSpawn:
		if c.Role == "" {
			return errors.New("role is required for SPAWN")
		}
	case ActionAccess:
		// роль не нужна
	default:
		return errors.New("unknown action: " + c.Action)
	}
	return nil
}
