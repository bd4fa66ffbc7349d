package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfig_SetGet(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.Set("PROJECT", "demo")
	cfg.Set("REGION", "")

	if v, ok := cfg.Get("PROJECT"); !ok || v != "demo" {
		t.Errorf("Get(PROJECT) = (%q, %v), want (\"demo\", true)", v, ok)
	}
	// Configured-as-empty is distinct from not configured.
	if v, ok := cfg.Get("REGION"); !ok || v != "" {
		t.Errorf("Get(REGION) = (%q, %v), want (\"\", true)", v, ok)
	}
	if _, ok := cfg.Get("MISSING"); ok {
		t.Error("Get(MISSING) should report not configured")
	}
}

func TestConfig_LastWriteWinsKeepsOrder(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.Set("A", "1")
	cfg.Set("B", "2")
	cfg.Set("A", "3")

	if v, _ := cfg.Get("A"); v != "3" {
		t.Errorf("Get(A) = %q, want %q", v, "3")
	}
	if got, want := cfg.Keys(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if cfg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cfg.Len())
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.Set("PROJECT_ID", "demo-project")
	cfg.Set("REGION", "europe-west3")
	cfg.Set("TOKEN_ID", "")

	store := NewFileStore()
	path := filepath.Join(t.TempDir(), "environment.cfg")
	if err := store.Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := loaded.Keys(), cfg.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for _, key := range cfg.Keys() {
		want, _ := cfg.Get(key)
		got, ok := loaded.Get(key)
		if !ok {
			t.Errorf("Load() dropped key %q", key)
			continue
		}
		if got != want {
			t.Errorf("Load() value for %q = %q, want %q", key, got, want)
		}
	}
}

func TestFileStore_LoadSkipsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "environment.cfg")
	write(t, path, "# header comment\n\nKEY=\"quoted value\"\n\n# trailing\n")

	loaded, err := NewFileStore().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", loaded.Len())
	}
	if v, _ := loaded.Get("KEY"); v != "quoted value" {
		t.Errorf("Get(KEY) = %q, want %q", v, "quoted value")
	}
}

func TestFileStore_LoadLastWriteWins(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "environment.cfg")
	write(t, path, "KEY=first\nKEY=second\n")

	loaded, err := NewFileStore().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v, _ := loaded.Get("KEY"); v != "second" {
		t.Errorf("Get(KEY) = %q, want %q", v, "second")
	}
	if loaded.Len() != 1 {
		t.Errorf("Len() = %d, want 1", loaded.Len())
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFileStore().Load(filepath.Join(t.TempDir(), "nope.cfg"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
	if cerr.Type != ConfigNotFound {
		t.Errorf("Type = %v, want ConfigNotFound", cerr.Type)
	}
}

func TestFileStore_LoadMalformedLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "environment.cfg")
	write(t, path, "GOOD=1\nstray line\n")

	_, err := NewFileStore().Load(path)
	if err == nil {
		t.Fatal("Load() expected error for malformed line")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
	if cerr.Type != ConfigInvalid {
		t.Errorf("Type = %v, want ConfigInvalid", cerr.Type)
	}
	if cerr.Line != 2 {
		t.Errorf("Line = %d, want 2", cerr.Line)
	}
}

func TestFileStore_Exists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "environment.cfg")

	store := NewFileStore()
	if store.Exists(path) {
		t.Error("Exists() = true for missing file")
	}
	write(t, path, "KEY=value\n")
	if !store.Exists(path) {
		t.Error("Exists() = false for existing file")
	}
}
