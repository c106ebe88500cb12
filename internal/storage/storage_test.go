package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	if _, ok, _ := m.Get("k"); ok {
		t.Fatal("empty store reported a value")
	}
	if err := m.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if v, ok, err := m.Get("k"); v != "v" || !ok || err != nil {
		t.Errorf("Get = %q, %v, %v; want v, true, nil", v, ok, err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save", "progress.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Set("AcornHuntLevels", `[{"locked":false}]`); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("other", "x"); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, _ := reopened.Get("AcornHuntLevels")
	if !ok || v != `[{"locked":false}]` {
		t.Errorf("Get = %q, %v", v, ok)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("store dir has %d entries, want only the store file", len(entries))
	}
}

func TestOpenFileMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenFile(filepath.Join(dir, "none.json"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if _, ok, _ := f.Get("k"); ok {
		t.Error("missing file should be empty")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(bad); err == nil {
		t.Error("corrupt file opened without error")
	}
}
