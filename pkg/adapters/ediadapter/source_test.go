package ediadapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oarkflow/edi/pkg/contracts"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func collect(t *testing.T, fs *FileSource, opts ...contracts.Option) []string {
	t.Helper()
	ch, err := fs.Extract(context.Background(), opts...)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	var paths []string
	for rec := range ch {
		path, ok := rec["source_path"].(string)
		if !ok {
			t.Fatalf("record missing source_path: %v", rec)
		}
		if _, ok := rec["raw_message"].(string); !ok {
			t.Fatalf("record missing raw_message: %v", rec)
		}
		paths = append(paths, filepath.Base(path))
	}
	return paths
}

func TestExtractFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.d", "ISA*00~")
	writeFile(t, dir, "a.edi", "ISA*00~")
	writeFile(t, dir, "skip.csv", "not edi")

	fs := NewFileSource(dir)
	if err := fs.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	paths := collect(t, fs)
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %v", paths)
	}
	if paths[0] != "a.edi" || paths[1] != "b.d" {
		t.Fatalf("expected sorted order [a.edi b.d], got %v", paths)
	}
}

func TestExtractSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "claim.d", "ISA*00~GS*HC~")

	fs := NewFileSource(path)
	ch, err := fs.Extract(context.Background())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	var count int
	for rec := range ch {
		count++
		if rec["raw_message"].(string) != "ISA*00~GS*HC~" {
			t.Fatalf("unexpected raw_message: %v", rec["raw_message"])
		}
	}
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}
}

func TestExtractHonorsMaxFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.d", "a")
	writeFile(t, dir, "2.d", "b")
	writeFile(t, dir, "3.d", "c")

	fs := NewFileSource(dir)
	paths := collect(t, fs, contracts.WithMaxFiles(2))
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %v", paths)
	}
}

func TestExtractPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "claims-01.d", "a")
	writeFile(t, dir, "other.d", "b")

	fs := NewFileSource(dir)
	paths := collect(t, fs, contracts.WithPattern("claims-*"))
	if len(paths) != 1 || paths[0] != "claims-01.d" {
		t.Fatalf("expected [claims-01.d], got %v", paths)
	}
}

func TestSetupMissingPath(t *testing.T) {
	fs := NewFileSource("")
	if err := fs.Setup(context.Background()); err == nil {
		t.Fatalf("expected error for empty path")
	}
	fs = NewFileSource(filepath.Join(t.TempDir(), "nope"))
	if err := fs.Setup(context.Background()); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
