package api

import "testing"

func TestClientCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ClientCommand
		wantErr bool
	}{
		{
			name: "valid spawn",
			cmd:  ClientCommand{Action: ActionSpawn, PrefabID: "spider", Role: "guest"},
		},
		{
			name: "valid access without role",
			cmd:  ClientCommand{Action: ActionAccess, PrefabID: "spider"},
		},
		{
			name:    "spawn without role",
			cmd:     ClientCommand{Action: ActionSpawn, PrefabID: "spider"},
			wantErr: true,
		},
		{
			name:    "missing prefab",
			cmd:     ClientCommand{Action: ActionSpawn, Role: "guest"},
			wantErr: true,
		},
		{
			name:    "unknown action",
			cmd:     ClientCommand{Action: "TELEPORT", PrefabID: "spider"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
