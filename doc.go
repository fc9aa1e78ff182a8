// Package vtcore provides a host-side VT220/xterm-compatible terminal
// emulator core: the fixed-size grid, cursor, and ANSI dispatch a terminal
// multiplexer or PTY host needs, with no rendering surface of its own.
//
// # Quick Start
//
// Run a command under a PTY and drive it through the decoder:
//
//	t, err := vtcore.NewTerminal("bash", nil, 24, 80)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.WithScreen(func(s *vtcore.Screen) {
//	    fmt.Println(s.Cell(vtcore.Point{X: 0, Y: 0}))
//	})
//
// # Architecture
//
//   - [Terminal]: owns the PTY, the decoder, and the read loop
//   - [Screen]: the fixed-size grid, cursor, scroll region and modes
//   - [Dispatch]: adapts [ansicode.Handler] callbacks onto Screen
//   - [Grid] / [Cell] / [Attributes]: the cell storage and styling model
//
// Sequence parsing itself is not implemented here — it is delegated to
// [github.com/danielgatis/go-ansicode], the same decoder the host-side
// terminal emulators this package is modeled on use. Dispatch only
// translates decoded events into Screen operations.
//
// # Screen
//
// Screen is constructed with functional options:
//
//	s := vtcore.NewScreen(vtcore.Point{X: 80, Y: 24},
//	    vtcore.WithResponse(ptyWriter),
//	    vtcore.WithBell(bellProvider),
//	)
//
// The grid is fixed-size: there is no resize and no scrollback. A host
// that wants a bigger or smaller grid tears down the Screen and starts a
// new one, resizing the PTY's reported window size separately via
// [Terminal.Resize].
//
// # Colors and attributes
//
// Colors are a tagged union of indexed (0-255), truecolor RGB, and the
// special foreground/background/cursor slots addressed by OSC 10/11/12,
// see [Color]. SGR parameters decode through two paths: [ParseSGRAttributes]
// for batch/offline decoding of a raw CSI parameter list, and
// [Dispatch.SetTerminalCharAttribute] for the live path, which receives one
// already-decoded attribute per ansicode callback.
//
// # Providers
//
// Side effects that reach outside the grid — bell, title, clipboard, and
// terminal responses — go through small interfaces so a host can plug in
// real behavior or accept the Noop defaults:
//
//	vtcore.WithBell(myBellProvider)
//	vtcore.WithTitle(myTitleProvider)
//	vtcore.WithClipboard(myClipboardProvider)
//
// # Thread safety
//
// A Screen is not safe for concurrent use on its own; Terminal guards it
// with a single mutex held across each decoder advance, matching the
// single-reader/single-writer discipline the underlying PTY split also
// relies on.
package vtcore
