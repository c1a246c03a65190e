package output

import (
	"strings"
	"testing"

	"github.com/portlens/portlens/pkg/model"
)

func TestTablePlainOutput(t *testing.T) {
	var b strings.Builder
	table := NewTable(&b, false)

	table.Banner("127.0.0.1", 1, 65535)
	table.Header()
	table.Record(model.Record{
		Port:    80,
		State:   model.StateListening,
		Service: "http",
		Process: &model.ProcessRecord{PID: 1234, Name: "nginx", Owner: "www-data"},
	})
	table.Record(model.Record{
		Port:    8080,
		State:   model.StateEstablished,
		Service: "unknown",
	})

	out := b.String()
	if strings.Contains(out, "\033[") {
		t.Fatal("plain output must not contain ANSI escapes")
	}
	if !strings.Contains(out, "Scanning 127.0.0.1 ports 1 to 65535...") {
		t.Fatalf("missing banner in output:\n%s", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// banner, blank, header, separator, two records
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}

	header := lines[2]
	if !strings.HasPrefix(header, "PORT    STATE       SERVICE             PROCESS") {
		t.Fatalf("unexpected header alignment: %q", header)
	}
	if lines[3] != strings.Repeat("-", 70) {
		t.Fatalf("unexpected separator: %q", lines[3])
	}

	row := lines[4]
	if !strings.HasPrefix(row, "80      LISTENING   http                nginx PID: 1234 User: www-data") {
		t.Fatalf("unexpected record row: %q", row)
	}

	// STATE column starts at the PORT column width.
	if row[8:8+len("LISTENING")] != "LISTENING" {
		t.Fatalf("STATE column misaligned: %q", row)
	}

	empty := lines[5]
	if !strings.HasPrefix(empty, "8080    ESTABLISHED unknown") {
		t.Fatalf("unexpected ownerless row: %q", empty)
	}
	if strings.Contains(empty, "PID:") {
		t.Fatalf("ownerless record should leave PROCESS empty: %q", empty)
	}
}

func TestTableColorHeaderOnly(t *testing.T) {
	var b strings.Builder
	table := NewTable(&b, true)
	table.Record(model.Record{Port: 80, State: model.StateListening, Service: "http"})

	if strings.Contains(b.String(), "\033[") {
		t.Fatal("record rows must stay plain even with color enabled")
	}
}
