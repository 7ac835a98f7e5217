package main

import (
	"fmt"

	"github.com/askoglund/mpdlink/internal/protocol"
)

// Exit codes for CLI commands.
const (
	exitSuccess     = 0
	exitError       = 1
	exitNoDaemon    = 2
	exitNotFound    = 3
	exitBadPassword = 4
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errDaemonUnreachable(addr string, err error) *ExitError {
	return &ExitError{
		Code:    exitNoDaemon,
		Message: fmt.Sprintf("Cannot reach MPD at %s: %v", addr, err),
	}
}

// mapCommandError converts daemon error replies to exit-coded errors.
func mapCommandError(err error) error {
	switch {
	case err == nil:
		return nil
	case protocol.IsNotFound(err):
		return &ExitError{Code: exitNotFound, Message: err.Error()}
	case protocol.IsIncorrectPassword(err):
		return &ExitError{Code: exitBadPassword, Message: err.Error()}
	default:
		return err
	}
}
