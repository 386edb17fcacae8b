package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorMode_PlainFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("IsTerminal(file) = true, want false")
	}
	if ColorMode("auto", f) {
		t.Error("ColorMode(auto, file) = true, want false")
	}
	if !ColorMode("always", f) {
		t.Error("ColorMode(always, file) = false, want true")
	}
	if ColorMode("never", f) {
		t.Error("ColorMode(never, file) = true, want false")
	}
	if w, h := GetSize(f); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("GetSize(file) = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
}
