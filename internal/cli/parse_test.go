package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errw bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errw)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errw.String(), err
}

func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("invalid JSON output %q: %v", s, err)
	}
	return v
}

func tokensFrom(t *testing.T, payload map[string]any) []any {
	t.Helper()
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data object: %#v", payload)
	}
	tokens, ok := data["tokens"].([]any)
	if !ok {
		t.Fatalf("missing tokens: %#v", data)
	}
	return tokens
}

func TestParseCommand_JSONContract(t *testing.T) {
	out, _, err := runCLI(t, "parse", `cat "a b"`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	payload := decodeJSON(t, out)
	tokens := tokensFrom(t, payload)
	if len(tokens) != 2 || tokens[0] != "cat" || tokens[1] != "a b" {
		t.Fatalf("tokens = %#v", tokens)
	}

	meta, ok := payload["meta"].(map[string]any)
	if !ok || meta["count"] != float64(2) {
		t.Fatalf("meta = %#v", payload["meta"])
	}
}

func TestParseCommand_KeepEmpty(t *testing.T) {
	out, _, err := runCLI(t, "parse", "--keep-empty", "a ")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	tokens := tokensFrom(t, decodeJSON(t, out))
	if len(tokens) != 2 || tokens[0] != "a" || tokens[1] != "" {
		t.Fatalf("tokens = %#v", tokens)
	}
}

func TestParseCommand_EDN(t *testing.T) {
	out, _, err := runCLI(t, "--format", "edn", "parse", "ls")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `:tokens ["ls"]`) {
		t.Fatalf("out = %q", out)
	}
}

func TestParseCommand_UnterminatedQuoteStillSucceeds(t *testing.T) {
	out, _, err := runCLI(t, "parse", `"abc`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	tokens := tokensFrom(t, decodeJSON(t, out))
	if len(tokens) != 1 || tokens[0] != "abc" {
		t.Fatalf("tokens = %#v", tokens)
	}
}
