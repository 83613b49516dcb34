package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает короткий уникальный ID (замена UUID для снижения зависимостей).
// Префикс помогает отличать типы записей в логах ("ev_", "cl_" и т.д.).
func GenerateID(prefix string) string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return prefix + hex.EncodeToString(b)
}
