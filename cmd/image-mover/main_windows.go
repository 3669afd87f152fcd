//go:build windows

package main

import "runtime"

// The COM apartment and the shell folder dialogs must stay on a single OS
// thread for the lifetime of the process.
func init() {
	runtime.LockOSThread()
}
