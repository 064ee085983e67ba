package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/student-support/supportctl/internal/core/domain"
)

func TestFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	f := NewFile(path)
	if err := f.Set(ctx, "token", "abc123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Set(ctx, "user", `{"id":"u1"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh store over the same file sees both values.
	g := NewFile(path)
	v, err := g.Get(ctx, "token")
	if err != nil || v != "abc123" {
		t.Fatalf("Get token = %q, %v", v, err)
	}
	v, err = g.Get(ctx, "user")
	if err != nil || v != `{"id":"u1"}` {
		t.Fatalf("Get user = %q, %v", v, err)
	}
}

func TestFile_MissingKey(t *testing.T) {
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "state.json"))

	if _, err := f.Get(ctx, "token"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestFile_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	f := NewFile(path)

	// Deleting from a store whose file does not exist yet is fine.
	if err := f.Delete(ctx, "token"); err != nil {
		t.Fatalf("Delete on absent file: %v", err)
	}

	if err := f.Set(ctx, "token", "abc123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Delete(ctx, "token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := f.Delete(ctx, "token"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if _, err := f.Get(ctx, "token"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestFile_CorruptFileRecoversOnSet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{torn write"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	f := NewFile(path)
	if _, err := f.Get(ctx, "token"); err == nil {
		t.Fatalf("expected an error reading a corrupt file")
	}

	// Set starts over rather than refusing forever.
	if err := f.Set(ctx, "token", "abc123"); err != nil {
		t.Fatalf("Set after corruption: %v", err)
	}
	v, err := f.Get(ctx, "token")
	if err != nil || v != "abc123" {
		t.Fatalf("Get = %q, %v", v, err)
	}
}

func TestFile_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")

	f := NewFile(path)
	if err := f.Set(ctx, "token", "abc123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("state file not created: %v", err)
	}
}
