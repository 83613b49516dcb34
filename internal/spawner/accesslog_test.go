package spawner

import (
	"testing"

	"spiderden-server/internal/domain"
)

func TestAccessLogProxy_OneEventPerRequest(t *testing.T) {
	next := &countingSpawner{result: testSpider()}
	accessLog := NewAccessLogProxy(next)

	accessLog.Spawn(domain.PrefabSpider, domain.RoleGuest)
	accessLog.Spawn(domain.PrefabSpider, domain.RoleGuest)
	accessLog.Spawn(domain.PrefabSpiderWarrior, domain.RoleAdmin)

	events := accessLog.Events()
	if len(events) != 3 {
		t.Fatalf("logged %d events, want 3", len(events))
	}

	if events[0].PrefabID != domain.PrefabSpider || events[0].Role != domain.RoleGuest {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[2].PrefabID != domain.PrefabSpiderWarrior || events[2].Role != domain.RoleAdmin {
		t.Errorf("unexpected third event: %+v", events[2])
	}

	for i, ev := range events {
		if ev.EventID == "" || ev.Timestamp == 0 {
			t.Errorf("event %d is missing id or timestamp: %+v", i, ev)
		}
	}
}

func TestAccessLogProxy_ResultUnchanged(t *testing.T) {
	spider := testSpider()
	next := &countingSpawner{result: spider}
	accessLog := NewAccessLogProxy(next)

	if got := accessLog.Spawn(domain.PrefabSpider, domain.RoleGuest); got != spider {
		t.Error("logging layer must not alter the result")
	}

	// nil тоже проходит насквозь и при этом журналируется
	next.result = nil
	if got := accessLog.Spawn("goblin", domain.RoleGuest); got != nil {
		t.Errorf("expected nil passthrough, got %+v", got)
	}
	if len(accessLog.Events()) != 2 {
		t.Error("nil result must still produce an access event")
	}
}
