package store

import (
	"context"
	"testing"
	"time"
)

func TestWorklogAppendAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Line: "echo hi", Argv: []string{"echo", "hi"}, ExitCode: 0, StartedAt: base, DurationMS: 3},
		{Line: "cat missing", Argv: []string{"cat", "missing"}, ExitCode: 1, StartedAt: base.Add(time.Second), DurationMS: 8},
	}
	for _, e := range entries {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Line != "cat missing" || got[1].Line != "echo hi" {
		t.Fatalf("order = %q, %q", got[0].Line, got[1].Line)
	}
	if got[0].ExitCode != 1 {
		t.Fatalf("exit code = %d, want 1", got[0].ExitCode)
	}
	if len(got[1].Argv) != 2 || got[1].Argv[0] != "echo" {
		t.Fatalf("argv = %#v", got[1].Argv)
	}
	if !got[1].StartedAt.Equal(base) {
		t.Fatalf("startedAt = %v, want %v", got[1].StartedAt, base)
	}
}

func TestWorklogListLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		e := Entry{Line: "ls", Argv: []string{"ls"}, StartedAt: now.Add(time.Duration(i) * time.Second)}
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestWorklogClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	if err := s.Append(ctx, Entry{Line: "ls", Argv: []string{"ls"}, StartedAt: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
