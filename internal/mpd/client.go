// Package mpd provides the client for the Music Player Daemon: connection
// lifecycle, serialized command dispatch, command-list batching, the
// command surface, and a background status watcher.
package mpd

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/askoglund/mpdlink/internal/protocol"
)

// DefaultDialTimeout bounds connection establishment. Command round trips
// themselves carry no timeout; a hung daemon blocks the caller.
const DefaultDialTimeout = 5 * time.Second

// Client is a connection to one daemon. A single mutex serializes every
// command round trip (encode, write, read, parse) so the half-duplex
// stream is never interleaved between the foreground caller and the
// status watcher.
type Client struct {
	addr        string
	password    string
	dialTimeout time.Duration
	logger      *slog.Logger

	// mu guards the connection and is held for full round trips.
	mu      sync.Mutex
	conn    net.Conn
	rd      *bufio.Reader
	version string

	watcher atomic.Pointer[Watcher]
}

// Option configures a Client.
type Option func(*Client)

// WithPassword authenticates the connection right after the greeting.
func WithPassword(password string) Option {
	return func(c *Client) { c.password = password }
}

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDialTimeout overrides the connection establishment timeout.
func WithDialTimeout(d time.Duration) Option {
	return func(c *Client) { c.dialTimeout = d }
}

// New creates a client for the given address. An address containing a
// path separator is treated as a Unix socket path, anything else as a
// TCP host:port.
func New(addr string, opts ...Option) *Client {
	c := &Client{
		addr:        addr,
		dialTimeout: DefaultDialTimeout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect opens the socket, consumes the greeting, and authenticates if
// a password is configured. Connecting an already-connected client is an
// error.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return &protocol.ConnectionError{Op: protocol.ConnOpAlreadyConnected}
	}
	return c.connectLocked()
}

func (c *Client) connectLocked() error {
	network := "tcp"
	if strings.ContainsRune(c.addr, '/') {
		network = "unix"
	}
	conn, err := net.DialTimeout(network, c.addr, c.dialTimeout)
	if err != nil {
		return &protocol.ConnectionError{Op: protocol.ConnOpDial, Err: err}
	}

	rd := bufio.NewReader(conn)
	line, err := rd.ReadString('\n')
	if err != nil {
		conn.Close()
		return &protocol.ConnectionError{Op: protocol.ConnOpGreeting, Err: err}
	}
	version, err := protocol.ParseGreeting(line)
	if err != nil {
		conn.Close()
		return &protocol.ConnectionError{Op: protocol.ConnOpGreeting, Err: err}
	}

	c.conn = conn
	c.rd = rd
	c.version = version

	if c.password != "" {
		if _, err := c.exchangeLocked(protocol.Command(protocol.CmdPassword, c.password)); err != nil {
			c.closeLocked()
			return err
		}
	}

	c.logger.Debug("connected", "addr", c.addr, "version", version)
	return nil
}

// Disconnect stops the watcher, sends a polite close, and shuts the
// socket. It is idempotent and reports whether a connection was open.
func (c *Client) Disconnect() bool {
	// Stop the watcher before taking mu: its loop may be blocked on a
	// command round trip holding the lock.
	if w := c.watcher.Load(); w != nil {
		w.Stop()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return false
	}
	_ = c.writeLine(protocol.Command(protocol.CmdClose))
	c.closeLocked()
	c.logger.Debug("disconnected", "addr", c.addr)
	return true
}

func (c *Client) closeLocked() {
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn = nil
	c.rd = nil
	c.version = ""
}

// Connected actively probes liveness with a ping round trip rather than
// trusting cached socket state. A failed probe tears the connection down
// so a later Connect starts clean.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return false
	}
	if _, err := c.exchangeLocked(protocol.Command(protocol.CmdPing)); err != nil {
		c.closeLocked()
		return false
	}
	return true
}

// Version returns the protocol version announced in the greeting, or the
// empty string when disconnected.
func (c *Client) Version() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Command dispatches one command and returns its parsed result. The
// declared response shape of each command decides the dynamic type; the
// typed wrappers in this package assert it.
func (c *Client) Command(name string, args ...any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandLocked(name, args...)
}

// outcome classifies one dispatch attempt.
type outcome int

const (
	outcomeOK outcome = iota
	// outcomeRetry marks a dropped connection, recoverable by one
	// reconnect-and-retry.
	outcomeRetry
	// outcomeFatal covers daemon error replies and everything else.
	outcomeFatal
)

func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeOK
	case protocol.IsConnectionError(err):
		return outcomeFatal
	case brokenConn(err):
		return outcomeRetry
	default:
		return outcomeFatal
	}
}

func (c *Client) commandLocked(name string, args ...any) (any, error) {
	if c.conn == nil {
		return nil, &protocol.ConnectionError{Op: protocol.ConnOpNotConnected}
	}

	line := protocol.Command(name, args...)
	body, err := c.exchangeLocked(line)
	if classify(err) == outcomeRetry {
		// Exactly one reconnect-and-retry of the same command. The lock
		// stays held, so contenders observe it as a single blocking step.
		c.logger.Warn("connection dropped, retrying once", "command", name)
		c.closeLocked()
		if rerr := c.connectLocked(); rerr != nil {
			return nil, rerr
		}
		body, err = c.exchangeLocked(line)
	}
	if err != nil {
		return nil, connErr(err)
	}
	return protocol.ParseResponse(name, body), nil
}

// connErr folds dropped-connection failures into the connection error
// taxonomy; everything else passes through.
func connErr(err error) error {
	if brokenConn(err) {
		return &protocol.ConnectionError{Op: protocol.ConnOpSend, Err: err}
	}
	return err
}

// exchangeLocked performs one write/read round trip. A daemon ACK reply
// comes back as a *protocol.Error.
func (c *Client) exchangeLocked(line string) (string, error) {
	if err := c.writeLine(line); err != nil {
		return "", err
	}
	return c.readReplyLocked()
}

func (c *Client) writeLine(line string) error {
	_, err := c.conn.Write([]byte(line + "\n"))
	return err
}

// readReplyLocked accumulates reply lines until the terminating OK, or
// an ACK error line.
func (c *Client) readReplyLocked() (string, error) {
	var body strings.Builder
	for {
		raw, err := c.rd.ReadString('\n')
		if err != nil {
			return "", err
		}
		line := strings.TrimRight(raw, "\n")
		if line == protocol.ReplyOK {
			return body.String(), nil
		}
		if ackErr, ok := protocol.ParseAck(line); ok {
			return "", ackErr
		}
		body.WriteString(raw)
	}
}

// brokenConn reports whether err indicates the daemon dropped the
// connection mid-dispatch.
func brokenConn(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, fs.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET)
}

// Helpers shared by the typed command wrappers.

func (c *Client) commandOK(name string, args ...any) error {
	_, err := c.Command(name, args...)
	return err
}

func (c *Client) commandRecord(name string, args ...any) (*protocol.Record, error) {
	res, err := c.Command(name, args...)
	if err != nil {
		return nil, err
	}
	rec, _ := res.(*protocol.Record)
	return rec, nil
}

func (c *Client) commandInt(name string, args ...any) (int, error) {
	res, err := c.Command(name, args...)
	if err != nil {
		return 0, err
	}
	n, _ := res.(int)
	return n, nil
}

func (c *Client) commandTrack(name string, args ...any) (*protocol.Track, error) {
	res, err := c.Command(name, args...)
	if err != nil {
		return nil, err
	}
	switch v := res.(type) {
	case *protocol.Track:
		return v, nil
	case []any:
		if len(v) > 0 {
			t, _ := v[0].(*protocol.Track)
			return t, nil
		}
	}
	return nil, nil
}

func (c *Client) commandTracks(name string, args ...any) ([]*protocol.Track, error) {
	res, err := c.Command(name, args...)
	if err != nil {
		return nil, err
	}
	return asTracks(res), nil
}

func asTracks(res any) []*protocol.Track {
	switch v := res.(type) {
	case *protocol.Track:
		return []*protocol.Track{v}
	case []any:
		tracks := make([]*protocol.Track, 0, len(v))
		for _, e := range v {
			if t, ok := e.(*protocol.Track); ok {
				tracks = append(tracks, t)
			}
		}
		return tracks
	default:
		return nil
	}
}

func (c *Client) commandRecords(name string, args ...any) ([]*protocol.Record, error) {
	res, err := c.Command(name, args...)
	if err != nil {
		return nil, err
	}
	switch v := res.(type) {
	case *protocol.Record:
		return []*protocol.Record{v}, nil
	case []any:
		recs := make([]*protocol.Record, 0, len(v))
		for _, e := range v {
			if r, ok := e.(*protocol.Record); ok {
				recs = append(recs, r)
			}
		}
		return recs, nil
	default:
		return nil, nil
	}
}

func (c *Client) commandStrings(name string, args ...any) ([]string, error) {
	res, err := c.Command(name, args...)
	if err != nil {
		return nil, err
	}
	list, _ := res.([]any)
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
