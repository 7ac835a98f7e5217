// Package bridge streams watcher events to WebSocket subscribers as JSON.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/askoglund/mpdlink/internal/mpd"
	"github.com/askoglund/mpdlink/internal/protocol"
)

// Server fans watcher events out to any number of WebSocket clients.
type Server struct {
	watcher *mpd.Watcher
	logger  *slog.Logger
}

// New creates a bridge over the given watcher.
func New(watcher *mpd.Watcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{watcher: watcher, logger: logger}
}

// Handler accepts WebSocket upgrades and streams one JSON object per
// event until the client goes away.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.serve)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	// Clients only listen; CloseRead cancels the context when they
	// disconnect.
	ctx := conn.CloseRead(r.Context())

	events, cancel := s.watcher.Subscribe()
	defer cancel()

	s.logger.Info("subscriber connected", "remote", r.RemoteAddr)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("subscriber gone", "remote", r.RemoteAddr)
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(Payload(ev))
			if err != nil {
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}
	}
}

// ListenAndServe serves the bridge on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("bridge listening", "addr", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// WireEvent is the JSON form of one watcher event.
type WireEvent struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Payload converts a watcher event into its JSON-friendly form.
func Payload(ev mpd.Event) WireEvent {
	return WireEvent{Field: string(ev.Field), Value: wireValue(ev.Value)}
}

func wireValue(v any) any {
	switch t := v.(type) {
	case *protocol.Track:
		if t == nil {
			return nil
		}
		song := map[string]any{"file": t.File}
		if t.Title != "" {
			song["title"] = t.Title
		}
		if t.Artist != "" {
			song["artist"] = t.Artist
		}
		if t.Album != "" {
			song["album"] = t.Album
		}
		if t.Time.HasTotal {
			song["duration"] = t.Time.Total
		}
		return song
	case protocol.TimePair:
		return map[string]any{"elapsed": t.Elapsed, "total": t.Total}
	case protocol.AudioFormat:
		return map[string]any{
			"sample_rate": t.SampleRate,
			"bits":        t.Bits,
			"channels":    t.Channels,
		}
	default:
		return v
	}
}
