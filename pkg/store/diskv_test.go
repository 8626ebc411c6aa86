package store

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func testStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Load(StaticConfig(dir), zap.NewNop())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s, dir
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := testStore(t)

	in := []widget{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	if err := s.Save("widgets", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []widget
	if err := s.Load("widgets", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != "1" || out[1].Name != "b" {
		t.Fatalf("unexpected round trip result: %+v", out)
	}
}

func TestLoadMissingLeavesValueUntouched(t *testing.T) {
	s, _ := testStore(t)

	out := []widget{{ID: "seed"}}
	if err := s.Load("never-written", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].ID != "seed" {
		t.Fatalf("missing key should not touch the target: %+v", out)
	}
}

func TestLoadCorruptDegradesToEmpty(t *testing.T) {
	s, dir := testStore(t)

	if err := os.WriteFile(filepath.Join(dir, "widgets"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	var out []widget
	if err := s.Load("widgets", &out); err != nil {
		t.Fatalf("corrupt load should not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("corrupt collection should read as empty, got %+v", out)
	}

	// The store stays writable after corruption.
	if err := s.Save("widgets", []widget{{ID: "1"}}); err != nil {
		t.Fatalf("save after corruption: %v", err)
	}
	if err := s.Load("widgets", &out); err != nil {
		t.Fatalf("load after rewrite: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected rewritten collection, got %+v", out)
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	s, _ := testStore(t)

	if err := s.Delete("never-written"); err != nil {
		t.Fatalf("delete of missing key: %v", err)
	}

	if err := s.Save("widgets", []widget{{ID: "1"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete("widgets"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var out []widget
	if err := s.Load("widgets", &out); err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty collection after delete, got %+v", out)
	}
}
