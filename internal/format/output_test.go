package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"tokens": []string{"a", "b"}}, "json", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != `{"tokens":["a","b"]}`+"\n" {
		t.Fatalf("out = %q", got)
	}
}

func TestWriteEDN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"tokens": []string{"a", "b"}, "n": 2}, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, ":tokens [\"a\" \"b\"]") {
		t.Fatalf("out = %q", got)
	}
	if !strings.Contains(got, ":n 2") {
		t.Fatalf("out = %q", got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
