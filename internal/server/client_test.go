package server

import (
	"testing"
	"time"

	"spiderden-server/internal/spawner"
	"spiderden-server/pkg/api"
)

func newTestClient() *Client {
	cfg := spawner.NewConfig()
	cfg.SpawnLatency = time.Millisecond
	return &Client{
		ID:      "cl_test",
		Spawner: spawner.NewService(cfg),
	}
}

func TestHandleCommand_Spawn(t *testing.T) {
	c := newTestClient()

	resp := c.handleCommand(api.ClientCommand{
		Action:   api.ActionSpawn,
		PrefabID: "spider",
		Role:     "guest",
	})

	if resp.Type != api.ResponseSpawnResult {
		t.Fatalf("response type = %s, want %s", resp.Type, api.ResponseSpawnResult)
	}
	if resp.Entity == nil {
		t.Fatal("expected an entity in the response")
	}
	if resp.Entity.ID != "spider" || resp.Entity.MaxHealth != 100 {
		t.Errorf("unexpected entity view: %+v", resp.Entity)
	}
}

func TestHandleCommand_RestrictedPrefab(t *testing.T) {
	c := newTestClient()

	// Гостю отказано: результат пустой, но это не ошибка протокола
	resp := c.handleCommand(api.ClientCommand{
		Action:   api.ActionSpawn,
		PrefabID: "spider_hider",
		Role:     "guest",
	})
	if resp.Type != api.ResponseSpawnResult || resp.Entity != nil || resp.Error != "" {
		t.Errorf("unexpected denial response: %+v", resp)
	}

	// ACCESS - доверенный вход, ему закрытый префаб доступен
	resp = c.handleCommand(api.ClientCommand{
		Action:   api.ActionAccess,
		PrefabID: "spider_hider",
	})
	if resp.Entity == nil {
		t.Error("trusted ACCESS entry was denied the restricted prefab")
	}
}

func TestHandleCommand_InvalidCommand(t *testing.T) {
	c := newTestClient()

	resp := c.handleCommand(api.ClientCommand{Action: "TELEPORT", PrefabID: "spider"})
	if resp.Type != api.ResponseError || resp.Error == "" {
		t.Errorf("expected protocol error, got %+v", resp)
	}
}
