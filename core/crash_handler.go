package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.RWMutex
	crashReset func()
)

// SetCrashReset installs the hook that restores the display before a crash report
// Frontends register their screen teardown here so the core stays display agnostic
func SetCrashReset(fn func()) {
	crashMu.Lock()
	crashReset = fn
	crashMu.Unlock()
}

// HandleCrash restores the display, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.RLock()
	reset := crashReset
	crashMu.RUnlock()
	if reset != nil {
		reset()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGRIDSNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crashing poller cannot leave the terminal raw
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
