package git

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	unlock, err := client.Lock()
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	lockPath := filepath.Join(tmpDir, LockFileName)
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		t.Error("Lock file not created")
	}

	t.Run("Contention Times Out", func(t *testing.T) {
		start := time.Now()
		_, err := client.Lock()
		if !errors.Is(err, ErrLockTimeout) {
			t.Fatalf("expected ErrLockTimeout, got %v", err)
		}
		if elapsed := time.Since(start); elapsed < LockTimeout {
			t.Errorf("Lock returned after %v, expected to wait %v", elapsed, LockTimeout)
		}
	})

	unlock()

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("Lock file not removed after unlock")
	}
}

func TestClient_Record(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git not installed")
	}

	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	if err := client.Init(); err != nil {
		t.Fatalf("Failed to init: %v", err)
	}
	if !client.IsRepo() {
		t.Fatal("expected IsRepo after Init")
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "a.md"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := client.Record("create a.md", "a.md"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := os.Remove(filepath.Join(tmpDir, "a.md")); err != nil {
		t.Fatal(err)
	}
	if err := client.Record("delete a.md", "a.md"); err != nil {
		t.Fatalf("Record of removal failed: %v", err)
	}

	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if strings.TrimSpace(status) != "" {
		t.Errorf("expected clean work tree, got %q", status)
	}

	log, err := client.Run("log", "--format=%s")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if log != "delete a.md\ncreate a.md" {
		t.Errorf("unexpected history: %q", log)
	}
}

func TestClient_IsRepo_PlainDirectory(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git not installed")
	}
	if NewClient(t.TempDir(), nil).IsRepo() {
		t.Error("expected a fresh temp dir not to be a work tree")
	}
}
