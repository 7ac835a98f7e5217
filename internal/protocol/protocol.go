// Package protocol implements the MPD wire grammar: command encoding,
// response decoding with per-field type coercion, and the daemon's error
// reply format.
package protocol

import (
	"fmt"
	"strings"
)

// Wire literals.
const (
	// ReplyOK terminates a successful response.
	ReplyOK = "OK"
	// ListOK separates sub-responses inside a command-list reply.
	ListOK = "list_OK"
	// CmdListBegin opens a command list whose reply carries ListOK
	// separators.
	CmdListBegin = "command_list_ok_begin"
	// CmdListEnd closes a command list.
	CmdListEnd = "command_list_end"
	// CmdClose is the polite connection shutdown command.
	CmdClose = "close"
	// CmdPing is the no-op liveness probe.
	CmdPing = "ping"
	// CmdPassword authenticates the connection.
	CmdPassword = "password"
)

// greetingPrefix starts the single line the daemon sends on connect.
const greetingPrefix = "OK MPD "

// ParseGreeting extracts the daemon's protocol version from the greeting
// line.
func ParseGreeting(line string) (string, error) {
	line = strings.TrimRight(line, "\n")
	if !strings.HasPrefix(line, greetingPrefix) {
		return "", fmt.Errorf("unexpected greeting %q", line)
	}
	return strings.TrimPrefix(line, greetingPrefix), nil
}
