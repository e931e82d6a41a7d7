package platform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDaemonNotStarted = errors.New("platform: daemon did not start")
	ErrDaemonNotStopped = errors.New("platform: daemon did not stop")
	ErrNoIPv4           = errors.New("platform: interface has no IPv4 address")
	ErrNoInterface      = errors.New("platform: interface not found")
)

// CommandError reports a command that exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int32
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("platform: %q exited %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }
