package storage_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fieldsign/fieldsign/pkg/lifecycle"
	"github.com/fieldsign/fieldsign/pkg/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func startedStorage(t *testing.T) storage.System {
	t.Helper()

	cfg := &storage.Config{BasePath: t.TempDir()}
	sys, err := storage.New(cfg, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	lc.WaitForStartup()

	return sys
}

func TestNew_EmptyBasePath(t *testing.T) {
	_, err := storage.New(&storage.Config{BasePath: ""}, testLogger())
	if err == nil {
		t.Fatal("New() succeeded with empty BasePath, want error")
	}
}

func TestStart_CreatesDirectory(t *testing.T) {
	targetDir := filepath.Join(t.TempDir(), "nested", "blobs")
	sys, err := storage.New(&storage.Config{BasePath: targetDir}, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	lc.WaitForStartup()

	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		t.Error("Start() did not create storage directory")
	}
}

func TestStore_Retrieve_RoundTrip(t *testing.T) {
	sys := startedStorage(t)
	ctx := context.Background()

	key := "documents/abc-123/agreement.pdf"
	data := []byte("%PDF-1.7 fake document body")

	if err := sys.Store(ctx, key, data); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	retrieved, err := sys.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}

	if string(retrieved) != string(data) {
		t.Errorf("Retrieved data = %q, want %q", retrieved, data)
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	sys := startedStorage(t)

	_, err := sys.Retrieve(context.Background(), "signatures/missing/scribble.png")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDelete_RemovesFile(t *testing.T) {
	sys := startedStorage(t)
	ctx := context.Background()

	key := "signatures/f1/scribble.png"
	sys.Store(ctx, key, []byte("png bytes"))

	if err := sys.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if _, err := sys.Retrieve(ctx, key); !errors.Is(err, storage.ErrNotFound) {
		t.Error("File still exists after Delete()")
	}
}

func TestDelete_NonExistent_NoError(t *testing.T) {
	sys := startedStorage(t)

	if err := sys.Delete(context.Background(), "nonexistent.bin"); err != nil {
		t.Errorf("Delete() on non-existent file returned error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	sys := startedStorage(t)
	ctx := context.Background()

	sys.Store(ctx, "documents/d1/contract.pdf", []byte("content"))

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"existing key", "documents/d1/contract.pdf", true},
		{"missing key", "documents/d2/contract.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := sys.Validate(ctx, tt.key)
			if err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
			if exists != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.key, exists, tt.want)
			}
		})
	}
}

func TestInvalidKeys(t *testing.T) {
	sys := startedStorage(t)
	ctx := context.Background()

	keys := []string{
		"",
		"../escape.bin",
		"signatures/../../escape.bin",
		"/absolute/path.bin",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			if err := sys.Store(ctx, key, []byte("data")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store(%q) error = %v, want %v", key, err, storage.ErrInvalidKey)
			}
		})
	}
}

func TestStore_Overwrite(t *testing.T) {
	sys := startedStorage(t)
	ctx := context.Background()

	key := "signatures/f1/scribble.png"
	sys.Store(ctx, key, []byte("original"))
	sys.Store(ctx, key, []byte("replacement"))

	data, _ := sys.Retrieve(ctx, key)
	if string(data) != "replacement" {
		t.Errorf("Retrieved = %q after overwrite, want %q", data, "replacement")
	}
}

func TestDelete_CleansUpEmptyParentDirectory(t *testing.T) {
	dir := t.TempDir()
	sys, _ := storage.New(&storage.Config{BasePath: dir}, testLogger())

	lc := lifecycle.New()
	sys.Start(lc)
	lc.WaitForStartup()

	ctx := context.Background()
	key := "documents/abc-123/agreement.pdf"
	sys.Store(ctx, key, []byte("pdf content"))

	parentDir := filepath.Join(dir, "documents", "abc-123")
	if _, err := os.Stat(parentDir); os.IsNotExist(err) {
		t.Fatal("Parent directory should exist after Store()")
	}

	if err := sys.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if _, err := os.Stat(parentDir); !os.IsNotExist(err) {
		t.Error("Empty parent directory should be removed after Delete()")
	}

	docsDir := filepath.Join(dir, "documents")
	if _, err := os.Stat(docsDir); os.IsNotExist(err) {
		t.Error("Non-empty ancestor directory should not be removed")
	}
}

func TestDelete_PreservesNonEmptyParentDirectory(t *testing.T) {
	sys := startedStorage(t)
	ctx := context.Background()

	sys.Store(ctx, "signatures/f1/first.png", []byte("content1"))
	sys.Store(ctx, "signatures/f1/second.png", []byte("content2"))

	if err := sys.Delete(ctx, "signatures/f1/first.png"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if _, err := sys.Retrieve(ctx, "signatures/f1/second.png"); err != nil {
		t.Error("Other file in directory should still exist")
	}
}
