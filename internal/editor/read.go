package editor

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line.
	ErrEOF = errors.New("eof")
	// ErrInterrupted is returned when the user cancels the line with Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
)

// Options configures one ReadLine call. Input/Output default to the
// terminal; tests substitute pipes or buffers.
type Options struct {
	Prompt    string
	Completer Completer
	Input     io.Reader
	Output    io.Writer
}

// ReadLine runs the editor until Enter and returns the finished line.
//
// It blocks for the duration of the read. Raw-mode acquisition, cursor
// hiding and restoration of the terminal on every exit path are handled by
// the bubbletea program around the Model.
func ReadLine(opts Options) (string, error) {
	m := New(opts.Prompt, opts.Completer)

	var popts []tea.ProgramOption
	if opts.Input != nil {
		popts = append(popts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		popts = append(popts, tea.WithOutput(opts.Output))
	}

	out, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}

	final, ok := out.(Model)
	if !ok {
		return "", fmt.Errorf("read line: unexpected model %T", out)
	}
	if final.err != nil {
		return "", final.err
	}
	return final.Value(), nil
}
