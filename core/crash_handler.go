package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/lixenwraith/breakout/terminal"
)

// crashFini releases the screen owner before the stack trace is printed
var crashFini atomic.Pointer[func()]

// SetCrashFinalizer registers the screen teardown run by HandleCrash
// Passing nil falls back to a raw terminal reset
func SetCrashFinalizer(fn func()) {
	if fn == nil {
		crashFini.Store(nil)
		return
	}
	crashFini.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashFini.Load(); fn != nil {
		(*fn)()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
