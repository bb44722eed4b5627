package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnableAtWritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := EnableAt(path); err != nil {
		t.Fatalf("EnableAt: %v", err)
	}
	t.Cleanup(Disable)

	if !Enabled() {
		t.Fatal("not enabled")
	}
	Log("engine", "preset %s", "square")
	for i := 0; i < 6; i++ {
		LogEvery(3, "frame", "skip")
	}
	Disable()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "Debug logging started") {
		t.Error("missing start banner")
	}
	if !strings.Contains(out, "preset square") {
		t.Error("missing log line")
	}
	if got := strings.Count(out, "skip (every 3"); got != 2 {
		t.Errorf("LogEvery wrote %d lines, want 2", got)
	}
}

func TestDisabledIsSilent(t *testing.T) {
	Disable()
	if Enabled() {
		t.Fatal("enabled after Disable")
	}
	// must not panic with no file
	Log("x", "y")
	LogEvery(1, "x", "y")
}
