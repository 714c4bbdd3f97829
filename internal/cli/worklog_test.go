package cli

import (
	"context"
	"testing"
	"time"

	"linesh/internal/store"
)

func TestWorklogList_EmptyStore(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "worklog", "list", "--dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	payload := decodeJSON(t, out)
	data, ok := payload["data"].([]any)
	if !ok {
		t.Fatalf("data = %#v, want array", payload["data"])
	}
	if len(data) != 0 {
		t.Fatalf("data = %#v, want empty", data)
	}
}

func TestWorklogList_ShowsRecordedCommands(t *testing.T) {
	dir := t.TempDir()
	s := store.Store{Dir: dir}
	entry := store.Entry{
		Line:      "echo hi",
		Argv:      []string{"echo", "hi"},
		StartedAt: time.Now().UTC(),
	}
	if err := s.Append(context.Background(), entry); err != nil {
		t.Fatalf("append: %v", err)
	}

	out, _, err := runCLI(t, "worklog", "list", "--dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	payload := decodeJSON(t, out)
	data, ok := payload["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("data = %#v, want one entry", payload["data"])
	}
	first, ok := data[0].(map[string]any)
	if !ok || first["line"] != "echo hi" {
		t.Fatalf("entry = %#v", data[0])
	}
}

func TestWorklogClear(t *testing.T) {
	dir := t.TempDir()
	s := store.Store{Dir: dir}
	if err := s.Append(context.Background(), store.Entry{Line: "ls", Argv: []string{"ls"}, StartedAt: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if _, _, err := runCLI(t, "worklog", "clear", "--dir", dir); err != nil {
		t.Fatalf("clear: %v", err)
	}

	entries, err := s.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %#v, want none", entries)
	}
}
