package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (s *Shell) registerBuiltins() {
	s.builtins["echo"] = func(s *Shell, args []string) error {
		fmt.Fprintln(s.out, strings.Join(args, " "))
		return nil
	}

	s.builtins["exit"] = func(s *Shell, args []string) error {
		return ErrExit
	}

	s.builtins["pwd"] = func(s *Shell, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("pwd: %w", err)
		}
		fmt.Fprintln(s.out, dir)
		return nil
	}

	s.builtins["cd"] = func(s *Shell, args []string) error {
		var target string
		if len(args) == 0 {
			target = os.Getenv("HOME")
			if target == "" {
				return nil
			}
		} else {
			target = args[0]
		}

		if target == "~" || strings.HasPrefix(target, "~/") {
			home := os.Getenv("HOME")
			if home == "" {
				return fmt.Errorf("cd: HOME not set")
			}
			target = filepath.Join(home, strings.TrimPrefix(target, "~"))
		}

		if err := os.Chdir(target); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("cd: %s: no such file or directory", target)
			}
			if os.IsPermission(err) {
				return fmt.Errorf("cd: %s: permission denied", target)
			}
			return fmt.Errorf("cd: %s: %v", target, err)
		}
		return nil
	}

	s.builtins["type"] = func(s *Shell, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(s.out, "type: usage: type NAME")
			return nil
		}
		name := args[0]
		if _, ok := s.builtins[name]; ok {
			fmt.Fprintf(s.out, "%s is a shell builtin\n", name)
			return nil
		}
		if path, ok := s.lookup(name); ok {
			fmt.Fprintf(s.out, "%s is %s\n", name, path)
			return nil
		}
		fmt.Fprintf(s.out, "%s: not found\n", name)
		return nil
	}

	s.builtins["help"] = func(s *Shell, args []string) error {
		fmt.Fprint(s.out, renderHelp(80))
		return nil
	}
}

// BuiltinNames returns the builtin command names, sorted. This is the
// builtin universe the completion engine draws from.
func (s *Shell) BuiltinNames() []string {
	names := make([]string, 0, len(s.builtins))
	for name := range s.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
