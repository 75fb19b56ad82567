package domain

import "strings"

// Command is an external process invocation.
type Command struct {
	// Label names the command in logs and telemetry.
	Label string
	// Args is the program followed by its arguments.
	Args []string
	// Environment holds variables layered over the inherited environment.
	Environment map[string]string
	// WorkingDir is the directory the process runs in. Empty means the current directory.
	WorkingDir string
}

// String renders the command line for diagnostics.
func (c *Command) String() string {
	return strings.Join(c.Args, " ")
}
