package db

import (
	"errors"
	"os"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "badger-test-*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := NewStore(tmpDir)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store, tmpDir
}

func TestStore_SetGet(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()

	if err := store.Set("board/jobs", []byte(`[{"id":"job-1"}]`)); err != nil {
		t.Fatalf("set slot: %v", err)
	}

	got, err := store.Get("board/jobs")
	if err != nil {
		t.Fatalf("get slot: %v", err)
	}
	if string(got) != `[{"id":"job-1"}]` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestStore_GetMissingSlot(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()

	_, err := store.Get("board/jobs")
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()

	if err := store.Set("board/jobs", []byte("[]")); err != nil {
		t.Fatalf("set jobs: %v", err)
	}
	if err := store.Set("board/providers", []byte(`["p"]`)); err != nil {
		t.Fatalf("set providers: %v", err)
	}
	if err := store.Delete("board/jobs"); err != nil {
		t.Fatalf("delete jobs: %v", err)
	}

	got, err := store.Get("board/providers")
	if err != nil {
		t.Fatalf("get providers: %v", err)
	}
	if string(got) != `["p"]` {
		t.Errorf("providers slot disturbed: %s", got)
	}
}

func TestStore_HasDistinguishesEmptyFromMissing(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()

	ok, err := store.Has("board/jobs")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if ok {
		t.Error("expected missing slot before first write")
	}

	// An empty list is still a written slot.
	if err := store.Set("board/jobs", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err = store.Has("board/jobs")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if !ok {
		t.Error("expected slot to exist after write")
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	store, dir := newTestStore(t)

	if err := store.Set("board/jobs", []byte(`["persisted"]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("board/jobs")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != `["persisted"]` {
		t.Errorf("unexpected value after reopen: %s", got)
	}
}
