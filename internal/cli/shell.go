package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/logging"
)

// ErrUnknownCommand is returned by Exec for input it cannot interpret.
var ErrUnknownCommand = errors.New("unknown command")

const helpText = `commands:
  state               show the active state
  events              list the events the active state reacts to
  trigger <event>     follow a transition (alias: t)
  change <state>      jump to any state (alias: c)
  undo | redo         walk the history
  history             show the history, '>' marks the active entry
  states [event]      list states, optionally those handling event
  clear               forget history, keep the active state
  reset               return to the initial state
  help                show this text
  quit                leave the shell (alias: exit)
`

// Shell is a line-oriented interactive driver for a Machine.
type Shell struct {
	m      *fsmx.Machine
	in     io.Reader
	out    io.Writer
	prompt string
	logger *slog.Logger
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithPrompt sets the prompt printed before each line is read.
func WithPrompt(prompt string) ShellOption {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithShellLogger sets the logger for command errors.
func WithShellLogger(logger *slog.Logger) ShellOption {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewShell creates a Shell reading commands from in and writing to out.
func NewShell(m *fsmx.Machine, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		m:      m,
		in:     in,
		out:    out,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and executes commands until input ends, a quit command is read
// or ctx is cancelled. Command errors are printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go s.read(ctx, lines, readErr)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.prompt)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			line = l
		}

		quit, err := s.Exec(line)
		if err != nil {
			s.logger.Debug("command failed", "line", line, "error", err)
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// read feeds input lines to Run. It exits at end of input or once ctx is
// done, but a Scan blocked on the reader only returns when the reader does.
func (s *Shell) read(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			readErr <- nil
			return
		}
	}
	readErr <- scanner.Err()
}

// Exec runs a single command line. It reports whether the shell should stop.
func (s *Shell) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "state":
		fmt.Fprintln(s.out, s.m.State())
	case "events":
		s.printEvents()
	case "trigger", "t":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: trigger <event>")
		}
		if err := s.m.Trigger(fsmx.EventID(args[0])); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, s.m.State())
	case "change", "c":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: change <state>")
		}
		if err := s.m.ChangeState(fsmx.StateID(args[0])); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, s.m.State())
	case "undo":
		if !s.m.Undo() {
			fmt.Fprintln(s.out, "nothing to undo")
			return false, nil
		}
		fmt.Fprintln(s.out, s.m.State())
	case "redo":
		if !s.m.Redo() {
			fmt.Fprintln(s.out, "nothing to redo")
			return false, nil
		}
		fmt.Fprintln(s.out, s.m.State())
	case "history":
		s.printHistory()
	case "states":
		var event fsmx.EventID
		if len(args) > 0 {
			event = fsmx.EventID(args[0])
		}
		for _, id := range s.m.StatesFor(event) {
			fmt.Fprintln(s.out, id)
		}
	case "clear":
		s.m.ClearHistory()
		fmt.Fprintln(s.out, s.m.State())
	case "reset":
		s.m.Reset()
		fmt.Fprintln(s.out, s.m.State())
	default:
		return false, fmt.Errorf("%w %q, try help", ErrUnknownCommand, cmd)
	}
	return false, nil
}

func (s *Shell) printEvents() {
	transitions := s.m.Transitions()
	for _, event := range slices.Sorted(maps.Keys(transitions)) {
		fmt.Fprintf(s.out, "%s -> %s\n", event, transitions[event])
	}
}

func (s *Shell) printHistory() {
	cursor := s.m.Cursor()
	for i, id := range s.m.History() {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		fmt.Fprintf(s.out, "%s %d %s\n", marker, i, id)
	}
}
