//go:build !windows

package prompt

import "os"

// New returns the platform prompter: console prompts on stdin/stdout.
func New() Prompter {
	return NewConsole(os.Stdin, os.Stdout)
}

// Backend names the dialog implementation compiled in.
func Backend() string {
	return "console"
}
