package hook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_Discover(t *testing.T) {
	dir := t.TempDir()
	want := writeHook(t, dir, "notify", "exit 0\n", "YOU WIN", "BOT WINS")

	manager := NewManager(dir)
	if err := manager.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	hooks := manager.List()
	if len(hooks) != 1 {
		t.Fatalf("expected 1 hook, got %d", len(hooks))
	}

	got := hooks[0]
	if got.Manifest.Name != "notify" {
		t.Errorf("expected name 'notify', got %q", got.Manifest.Name)
	}
	if got.Path != want.Path {
		t.Errorf("expected path %q, got %q", want.Path, got.Path)
	}
	if got.Executable != want.Executable {
		t.Errorf("expected executable %q, got %q", want.Executable, got.Executable)
	}
	if len(got.Manifest.Outcomes) != 2 {
		t.Errorf("expected 2 outcomes, got %d", len(got.Manifest.Outcomes))
	}
}

func TestManager_Discover_Sorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		writeHook(t, dir, name, "exit 0\n")
	}

	manager := NewManager(dir)
	if err := manager.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	hooks := manager.List()
	if len(hooks) != 3 {
		t.Fatalf("expected 3 hooks, got %d", len(hooks))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if hooks[i].Manifest.Name != want {
			t.Errorf("hooks[%d] = %q, want %q", i, hooks[i].Manifest.Name, want)
		}
	}
}

func TestManager_Discover_SkipsBadManifests(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "good", "exit 0\n")

	bad := filepath.Join(dir, "bad")
	if err := os.MkdirAll(bad, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bad, ManifestFile), []byte("{invalid"), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	noExe := filepath.Join(dir, "no-exe")
	if err := os.MkdirAll(noExe, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(noExe, ManifestFile), []byte(`{"name":"no-exe"}`), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "empty"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	manager := NewManager(dir)
	if err := manager.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	hooks := manager.List()
	if len(hooks) != 1 || hooks[0].Manifest.Name != "good" {
		t.Errorf("expected only 'good', got %d hooks", len(hooks))
	}
}

func TestManager_Discover_DefaultName(t *testing.T) {
	dir := t.TempDir()
	hookPath := filepath.Join(dir, "unnamed")
	if err := os.MkdirAll(hookPath, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(hookPath, ManifestFile), []byte(`{"executable":"run.sh"}`), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	manager := NewManager(dir)
	if err := manager.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if _, err := manager.Get("unnamed"); err != nil {
		t.Errorf("expected hook named after its directory, got %v", err)
	}
}

func TestManager_Get_NotFound(t *testing.T) {
	manager := NewManager(t.TempDir())
	if err := manager.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	_, err := manager.Get("missing")
	if !errors.Is(err, ErrHookNotFound) {
		t.Errorf("expected ErrHookNotFound, got %v", err)
	}
}

func TestManager_Discover_NonExistentDir(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "nope"))
	if err := manager.Discover(); err != nil {
		t.Errorf("Discover() on a missing dir should not fail, got %v", err)
	}
	if len(manager.List()) != 0 {
		t.Error("expected no hooks")
	}
}

func TestManager_HookDir(t *testing.T) {
	manager := NewManager("/some/hooks")
	if manager.HookDir() != "/some/hooks" {
		t.Errorf("expected HookDir '/some/hooks', got %q", manager.HookDir())
	}
}
