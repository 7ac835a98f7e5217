package mpd

import (
	"bufio"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"
)

// Handler sentinels: noReply suppresses the response for a received line,
// dropConn closes the connection instead of answering.
const (
	noReply  = ""
	dropConn = "\x00drop"
)

// testServer is an in-process daemon speaking just enough of the wire
// protocol for these tests: it greets, records every received line, and
// answers through a per-line handler.
type testServer struct {
	t        *testing.T
	ln       net.Listener
	greeting string
	handle   func(line string) string

	mu      sync.Mutex
	lines   []string
	accepts int
}

func newTestServer(t *testing.T, handle func(line string) string) *testServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &testServer{
		t:        t,
		ln:       ln,
		greeting: "OK MPD 0.23.5\n",
		handle:   handle,
	}
	go s.serve()
	t.Cleanup(func() { ln.Close() })
	return s
}

func (s *testServer) addr() string {
	return s.ln.Addr().String()
}

func (s *testServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.accepts++
		s.mu.Unlock()
		go s.serveConn(conn)
	}
}

func (s *testServer) setGreeting(greeting string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greeting = greeting
}

func (s *testServer) serveConn(conn net.Conn) {
	defer conn.Close()
	s.mu.Lock()
	greeting := s.greeting
	s.mu.Unlock()
	if _, err := io.WriteString(conn, greeting); err != nil {
		return
	}
	rd := bufio.NewReader(conn)
	for {
		raw, err := rd.ReadString('\n')
		if err != nil {
			return
		}
		line := strings.TrimRight(raw, "\n")
		s.mu.Lock()
		s.lines = append(s.lines, line)
		s.mu.Unlock()
		if line == "close" {
			return
		}
		reply := s.handle(line)
		if reply == dropConn {
			return
		}
		if reply == noReply {
			continue
		}
		if _, err := io.WriteString(conn, reply); err != nil {
			return
		}
	}
}

func (s *testServer) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func (s *testServer) acceptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepts
}

// okAll answers every command with a bare success.
func okAll(string) string {
	return "OK\n"
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

// connectedClient dials the server and registers a disconnect cleanup.
func connectedClient(t *testing.T, s *testServer, opts ...Option) *Client {
	t.Helper()
	c := New(s.addr(), opts...)
	if err := c.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { c.Disconnect() })
	return c
}
