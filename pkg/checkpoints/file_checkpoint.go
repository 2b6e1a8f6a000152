package checkpoints

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
)

// FileCheckpointStore persists the last processed interchange path so an
// interrupted batch can resume without re-emitting claims. Checkpoints only
// move forward; paths are compared lexically, matching the sorted order the
// file source emits.
type FileCheckpointStore struct {
	filename   string
	mu         sync.Mutex
	checkpoint string
}

// NewFileCheckpointStore loads any prior checkpoint from filename. Saves go
// back to the same file, so a rerun configured with the same path resumes
// where the previous batch stopped.
func NewFileCheckpointStore(filename string) *FileCheckpointStore {
	store := &FileCheckpointStore{filename: filename}
	data, err := os.ReadFile(filename)
	if err == nil {
		store.checkpoint = strings.TrimSpace(string(data))
	}
	return store
}

func (f *FileCheckpointStore) GetCheckpoint(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkpoint, nil
}

func (f *FileCheckpointStore) SaveCheckpoint(_ context.Context, cp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cp <= f.checkpoint {
		return nil
	}
	if err := os.WriteFile(f.filename, []byte(cp), 0644); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	f.checkpoint = cp
	return nil
}

// Remove deletes the checkpoint file, resetting resume state.
func (f *FileCheckpointStore) Remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkpoint = ""
	err := os.Remove(f.filename)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
