package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupBuiltin(t *testing.T) {
	r := newResolver(filepath.Join(t.TempDir(), "missing"))
	if got := r.Lookup(22, "tcp"); got != "ssh" {
		t.Fatalf("expected ssh for 22/tcp, got %q", got)
	}
	if got := r.Lookup(8080, "TCP"); got != "http-alt" {
		t.Fatalf("proto should be case-insensitive, got %q", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	r := newResolver(filepath.Join(t.TempDir(), "missing"))
	if got := r.Lookup(49152, "tcp"); got != Unknown {
		t.Fatalf("unregistered port should resolve to %q, got %q", Unknown, got)
	}
}

func TestLoadServicesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "services")
	data := "" +
		"# /etc/services fragment\n" +
		"tcpmux          1/tcp\n" +
		"http            80/tcp          www www-http    # World Wide Web\n" +
		"my-api          8080/tcp\n" +
		"bogus           notaport/tcp\n" +
		"short\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	r := newResolver(path)
	if got := r.Lookup(1, "tcp"); got != "tcpmux" {
		t.Fatalf("expected tcpmux, got %q", got)
	}
	if got := r.Lookup(80, "tcp"); got != "http" {
		t.Fatalf("aliases and comments should be dropped, got %q", got)
	}
	// The database overrides the builtin table.
	if got := r.Lookup(8080, "tcp"); got != "my-api" {
		t.Fatalf("expected file entry to win for 8080/tcp, got %q", got)
	}
	// Builtin entries survive for ports the file does not list.
	if got := r.Lookup(22, "tcp"); got != "ssh" {
		t.Fatalf("expected builtin ssh, got %q", got)
	}
}
