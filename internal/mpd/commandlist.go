package mpd

import (
	"fmt"
	"strings"

	"github.com/askoglund/mpdlink/internal/protocol"
)

// CommandList batches commands into one atomic request. Commands queue
// locally until Run, which dispatches the whole batch inside a single
// critical section: nothing else can use the connection between the list
// markers, and the batch occupies one in-flight slot.
type CommandList struct {
	client *Client
	names  []string
	lines  []string
	ran    bool
}

// NewCommandList returns an empty batch bound to the client.
func (c *Client) NewCommandList() *CommandList {
	return &CommandList{client: c}
}

// Add queues one command. Nothing is written until Run.
func (l *CommandList) Add(name string, args ...any) {
	l.names = append(l.names, name)
	l.lines = append(l.lines, protocol.Command(name, args...))
}

// Len returns the number of queued commands.
func (l *CommandList) Len() int {
	return len(l.names)
}

// Run sends the batch and splits the reply back into per-command results
// on the list_OK delimiter, pairing each segment with its queued command
// in order. Segments with no payload produce no result. When the daemon
// answers a mid-batch failure with an ACK, Run returns the results parsed
// up to that point together with the error; the daemon does not execute
// the remaining commands, so they yield nothing. A batch is single-use
// and is not retried on a dropped connection.
func (l *CommandList) Run() ([]any, error) {
	if l.ran {
		return nil, fmt.Errorf("command list already run")
	}
	l.ran = true

	c := l.client
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, &protocol.ConnectionError{Op: protocol.ConnOpNotConnected}
	}

	var req strings.Builder
	req.WriteString(protocol.CmdListBegin + "\n")
	for _, line := range l.lines {
		req.WriteString(line + "\n")
	}
	req.WriteString(protocol.CmdListEnd)
	if err := c.writeLine(req.String()); err != nil {
		return nil, connErr(err)
	}

	var results []any
	var segment strings.Builder
	next := 0
	for {
		raw, err := c.rd.ReadString('\n')
		if err != nil {
			return results, connErr(err)
		}
		line := strings.TrimRight(raw, "\n")
		switch {
		case line == protocol.ReplyOK:
			return results, nil
		case line == protocol.ListOK:
			if segment.Len() > 0 && next < len(l.names) {
				results = append(results, protocol.ParseResponse(l.names[next], segment.String()))
			}
			segment.Reset()
			next++
		default:
			if ackErr, ok := protocol.ParseAck(line); ok {
				return results, ackErr
			}
			segment.WriteString(raw)
		}
	}
}
