// Command vtshell runs a shell under vtcore, forwarding stdin to the child
// and the child's rendered screen back to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/peterctl/vtcore"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "vtshell [command] [args...]",
		Short: "Run a command under a vtcore-driven pseudo-terminal",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := os.Getenv("SHELL")
			if shell == "" {
				shell = "/bin/sh"
			}
			command, cmdArgs := shell, []string(nil)
			if len(args) > 0 {
				command, cmdArgs = args[0], args[1:]
			}

			if rows == 0 || cols == 0 {
				rows, cols = detectSize()
			}
			logHostColors()

			vt, err := vtcore.NewTerminal(command, cmdArgs, rows, cols)
			if err != nil {
				return fmt.Errorf("start terminal: %w", err)
			}

			restore := enterRawMode()
			defer restore()

			go func() { _ = vt.Forward(os.Stdin) }()
			go renderLoop(vt)

			return vt.Wait()
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "initial row count (default: detect from stdout)")
	cmd.Flags().IntVar(&cols, "cols", 0, "initial column count (default: detect from stdout)")

	return cmd
}

// renderLoop is the render task (§5): it blocks on the terminal's render
// channel and, on each notification, takes the screen lock just long enough
// to build a full repaint frame via Screen.Render (which in turn calls
// Attributes.SGR once per run of equal attributes) and writes it to the outer
// tty. It exits once the channel drains and closes alongside Done.
func renderLoop(vt *vtcore.Terminal) {
	for range vt.RenderCh() {
		var frame string
		vt.WithScreen(func(s *vtcore.Screen) {
			frame = s.Render()
		})
		_, _ = os.Stdout.Write([]byte(frame))
	}
}

// logHostColors records the host terminal's foreground/background colors,
// the same detection the OSC 10/11 query responses in dispatch.go would
// otherwise have to guess at.
func logHostColors() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return
	}
	output := termenv.NewOutput(os.Stdout)
	vtcore.Logger.Debug("host terminal colors",
		"foreground", output.ForegroundColor(),
		"background", output.BackgroundColor(),
		"dark_background", output.HasDarkBackground(),
	)
}

// detectSize reads the controlling terminal's dimensions, falling back to
// config.DefaultConfig's 80x24 when stdout isn't a terminal.
func detectSize() (rows, cols int) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		cfg := vtcore.DefaultConfig()
		return cfg.Rows, cfg.Cols
	}
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cfg := vtcore.DefaultConfig()
		return cfg.Rows, cfg.Cols
	}
	return rows, cols
}

// enterRawMode puts stdin into raw mode when it's a terminal and returns a
// restore function, a no-op when it isn't.
func enterRawMode() func() {
	fd := int(os.Stdin.Fd())
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return func() {}
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}
	}
	return func() { _ = term.Restore(fd, state) }
}
