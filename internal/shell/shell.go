// Package shell wires the line editor, token parser and completion engine
// into an interactive command loop.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"linesh/internal/complete"
	"linesh/internal/editor"
	"linesh/internal/store"
	"linesh/internal/token"
)

// ErrExit signals that the user asked the shell to terminate.
var ErrExit = errors.New("exit")

// Builtin is a command handled by the shell itself rather than the PATH.
type Builtin func(s *Shell, args []string) error

// Options configures a Shell. Zero values mean "use the real terminal and
// the default prompt".
type Options struct {
	Prompt  string
	Input   io.Reader
	Output  io.Writer
	Errout  io.Writer
	Worklog *store.Store
}

type Shell struct {
	prompt  string
	in      io.Reader
	out     io.Writer
	errout  io.Writer
	worklog *store.Store

	pathDirs  []string
	builtins  map[string]Builtin
	completer complete.Engine
}

func New(opts Options) *Shell {
	var dirs []string
	if path := os.Getenv("PATH"); path != "" {
		dirs = strings.Split(path, string(os.PathListSeparator))
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	errout := opts.Errout
	if errout == nil {
		errout = os.Stderr
	}

	s := &Shell{
		prompt:   opts.Prompt,
		in:       opts.Input,
		out:      out,
		errout:   errout,
		worklog:  opts.Worklog,
		pathDirs: dirs,
		builtins: map[string]Builtin{},
	}
	s.registerBuiltins()
	s.completer = complete.Engine{
		Cwd: func() string {
			dir, err := os.Getwd()
			if err != nil {
				return "."
			}
			return dir
		},
		Builtins: s.BuiltinNames,
		Lister:   complete.DirLister{},
	}
	return s
}

// Run reads and executes lines until exit or end of input.
func (s *Shell) Run() error {
	for {
		line, err := editor.ReadLine(editor.Options{
			Prompt:    s.promptLabel(),
			Completer: s.completer,
			Input:     s.in,
			Output:    s.out,
		})
		if errors.Is(err, editor.ErrEOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if errors.Is(err, editor.ErrInterrupted) {
			fmt.Fprintln(s.out)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out)

		args := token.Args(line)
		if len(args) == 0 {
			continue
		}

		start := time.Now()
		code, err := s.dispatch(args)
		s.record(line, args, code, start)

		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.errout, err)
		}
	}
}

// dispatch runs one parsed command and returns its exit code.
func (s *Shell) dispatch(args []string) (int, error) {
	name := args[0]

	if fn, ok := s.builtins[name]; ok {
		if err := fn(s, args[1:]); err != nil {
			if errors.Is(err, ErrExit) {
				return 0, err
			}
			return 1, err
		}
		return 0, nil
	}

	path, ok := s.lookup(name)
	if !ok {
		fmt.Fprintf(s.out, "%s: command not found\n", name)
		return 127, nil
	}

	cmd := exec.Command(path, args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.out
	cmd.Stderr = s.errout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}

// lookup resolves name to an executable on PATH.
func (s *Shell) lookup(name string) (string, bool) {
	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutable(name) {
			return name, true
		}
		return "", false
	}
	for _, dir := range s.pathDirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode()&0111 != 0
}

func (s *Shell) promptLabel() string {
	if s.prompt != "" {
		return s.prompt
	}
	dir, err := os.Getwd()
	if err != nil {
		return "$ "
	}
	return filepath.Base(dir) + " $ "
}

// record appends the executed line to the worklog. Best effort: a failing
// log never disturbs the prompt.
func (s *Shell) record(line string, args []string, code int, start time.Time) {
	if s.worklog == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.worklog.Append(ctx, store.Entry{
		Line:       line,
		Argv:       args,
		ExitCode:   code,
		StartedAt:  start.UTC(),
		DurationMS: time.Since(start).Milliseconds(),
	})
}
