package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM resolutions").Scan(&count); err != nil {
		t.Errorf("table resolutions: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d rows", count)
	}
}

func TestKindConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO resolutions (id, kind) VALUES ('1', 'smalltalk')`); err == nil {
		t.Error("expected CHECK constraint to reject unknown kind")
	}
	if _, err := d.Exec(`INSERT INTO resolutions (id, kind) VALUES ('2', 'default')`); err != nil {
		t.Errorf("insert default kind: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "circuitbot.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if d.Path() != path {
		t.Errorf("Path() = %q, want %q", d.Path(), path)
	}
	d.Close()

	// Reopening runs migrations again on an existing file.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	d.Close()
}
