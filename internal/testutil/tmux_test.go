package testutil

import (
	"os"
	"testing"
)

func TestStartTmuxServerLifecycle(t *testing.T) {
	socket, cleanup := StartTmuxServer(t)
	defer cleanup()
	if err := TmuxCommand(socket, "list-sessions").Run(); err != nil {
		t.Skipf("skipping: list-sessions failed: %v", err)
	}
}

func TestTempFile(t *testing.T) {
	path := TempFile(t, "deck.toml", "start = \"x\"\n")
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "start = \"x\"\n" {
		t.Fatalf("unexpected temp file %q: %v", data, err)
	}
}
