package checkpoints

import (
	"context"
	"path/filepath"
	"testing"
)

func TestCheckpointOnlyMovesForward(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.txt")
	store := NewFileCheckpointStore(path)

	ctx := context.Background()
	if err := store.SaveCheckpoint(ctx, "/data/claims-02.d"); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	if err := store.SaveCheckpoint(ctx, "/data/claims-01.d"); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	cp, err := store.GetCheckpoint(ctx)
	if err != nil {
		t.Fatalf("GetCheckpoint: %v", err)
	}
	if cp != "/data/claims-02.d" {
		t.Fatalf("checkpoint regressed: got %q", cp)
	}
}

func TestCheckpointSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.txt")
	ctx := context.Background()

	first := NewFileCheckpointStore(path)
	if err := first.SaveCheckpoint(ctx, "/data/claims-05.d"); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	second := NewFileCheckpointStore(path)
	cp, err := second.GetCheckpoint(ctx)
	if err != nil {
		t.Fatalf("GetCheckpoint: %v", err)
	}
	if cp != "/data/claims-05.d" {
		t.Fatalf("rerun checkpoint = %q, want /data/claims-05.d", cp)
	}
}

func TestCheckpointRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.txt")
	store := NewFileCheckpointStore(path)
	ctx := context.Background()
	if err := store.SaveCheckpoint(ctx, "/data/claims-01.d"); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	if err := store.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	cp, _ := store.GetCheckpoint(ctx)
	if cp != "" {
		t.Fatalf("expected empty checkpoint after Remove, got %q", cp)
	}
}
