package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
)

const sentryFlushTimeout = 5 * time.Second

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	reporting   bool

	// Swapped by tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// InitReporting enables Sentry crash reports; an empty dsn leaves reporting off
func InitReporting(dsn string) error {
	if dsn == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
	}); err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}

	crashMu.Lock()
	reporting = true
	crashMu.Unlock()
	return nil
}

// FlushReporting waits for queued reports, call before a clean exit
func FlushReporting() {
	crashMu.Lock()
	on := reporting
	crashMu.Unlock()

	if on {
		sentry.Flush(sentryFlushTimeout)
	}
}

// SetCrashScreen registers the screen HandleCrash must finalize before printing
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler: report, restore the terminal, print the stack and exit
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen, on := crashScreen, reporting
	crashScreen = nil
	crashMu.Unlock()

	if on {
		hub := sentry.CurrentHub().Clone()
		hub.Recover(r)
		hub.Flush(sentryFlushTimeout)
	}

	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
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
