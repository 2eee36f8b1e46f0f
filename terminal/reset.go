package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var (
	csiRIS           = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
)

// IsTerminal reports whether f is attached to a TTY
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// EmergencyReset restores a usable terminal after a crash while tcell owned it
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
