package mpd

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/askoglund/mpdlink/internal/protocol"
)

// Field identifies one entry of a status snapshot. Most values come
// straight from the status record; FieldConnection and FieldNowPlaying
// are synthesized by the watcher.
type Field string

// Synthesized and commonly watched fields.
const (
	FieldConnection Field = "connection"
	FieldNowPlaying Field = "nowplaying"
	FieldState      Field = "state"
	FieldVolume     Field = "volume"
	FieldTime       Field = "time"
	FieldAudio      Field = "audio"
	FieldRandom     Field = "random"
	FieldRepeat     Field = "repeat"
	FieldSingle     Field = "single"
	FieldConsume    Field = "consume"
	FieldSong       Field = "song"
	FieldSongID     Field = "songid"
	FieldQueue      Field = "playlist"
	FieldBitrate    Field = "bitrate"
	FieldError      Field = "error"
)

// Event is one observed change: a snapshot field and its new value.
type Event struct {
	Field Field
	Value any
}

const (
	defaultPollInterval  = 100 * time.Millisecond
	defaultReconnectWait = 2 * time.Second
	eventBuffer          = 64
)

// Watcher polls the daemon in the background and emits one Event per
// changed snapshot field to its subscribers. Its probing is best-effort:
// a failing daemon surfaces only through FieldConnection, never as an
// error out of the loop.
type Watcher struct {
	client        *Client
	logger        *slog.Logger
	interval      time.Duration
	reconnectWait time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	// fields is nil for a subscribe-to-everything subscription.
	fields map[Field]bool
	ch     chan Event
}

// NewWatcher creates the client's watcher. The client remembers it so
// Disconnect can stop it.
func (c *Client) NewWatcher(logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w := &Watcher{
		client:        c,
		logger:        logger,
		interval:      defaultPollInterval,
		reconnectWait: defaultReconnectWait,
		subs:          make(map[int]*subscription),
	}
	c.watcher.Store(w)
	return w
}

// Subscribe registers for events on the given fields, or on every field
// when none are named. The returned cancel function unsubscribes and
// closes the channel. Events are dropped oldest-first when a subscriber
// falls behind.
func (w *Watcher) Subscribe(fields ...Field) (<-chan Event, func()) {
	sub := &subscription{ch: make(chan Event, eventBuffer)}
	if len(fields) > 0 {
		sub.fields = make(map[Field]bool, len(fields))
		for _, f := range fields {
			sub.fields[f] = true
		}
	}

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = sub
	w.mu.Unlock()

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if _, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub.ch)
		}
	}
	return sub.ch, cancel
}

// Start launches the polling loop. Starting a running watcher is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	go w.loop(ctx, w.done)
}

// Stop cancels the loop and waits for it to exit. Cancellation is
// observed at every sleep, not only once per tick. A stopped watcher can
// be started again.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel = nil
	w.done = nil
	w.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (w *Watcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	prev := make(map[Field]any)
	for {
		if !sleep(ctx, w.interval) {
			return
		}
		snap := w.snapshot()
		w.emitChanges(prev, snap)
		prev = snap

		if connected, _ := snap[FieldConnection].(bool); !connected {
			if !sleep(ctx, w.reconnectWait) {
				return
			}
			if err := w.client.Connect(); err != nil {
				w.logger.Debug("reconnect failed", "error", err)
			}
		}
	}
}

// snapshot assembles one poll tick: the status record, the connectivity
// probe, and the current track, with fixed-arity placeholders for the
// time pair and audio triple. Probe failures are swallowed and show up
// as absent data.
func (w *Watcher) snapshot() map[Field]any {
	snap := make(map[Field]any)

	if status, err := w.client.Status(); err == nil && status != nil {
		for _, f := range status.Fields() {
			v, _ := status.Get(f)
			snap[Field(f)] = v
		}
	}

	song, err := w.client.CurrentSong()
	if err != nil {
		song = nil
	}
	snap[FieldNowPlaying] = song
	snap[FieldConnection] = w.client.Connected()

	if _, ok := snap[FieldTime]; !ok {
		snap[FieldTime] = protocol.TimePair{}
	}
	if _, ok := snap[FieldAudio]; !ok {
		snap[FieldAudio] = protocol.AudioFormat{}
	}
	return snap
}

// emitChanges publishes one event per field whose value differs from the
// previous snapshot, in field-name order.
func (w *Watcher) emitChanges(prev, next map[Field]any) {
	fields := make([]Field, 0, len(next))
	for f := range next {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

	for _, f := range fields {
		v := next[f]
		if old, ok := prev[f]; !ok || !valueEqual(old, v) {
			w.publish(Event{Field: f, Value: v})
		}
	}
}

func (w *Watcher) publish(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, sub := range w.subs {
		if sub.fields != nil && !sub.fields[ev.Field] {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// Full subscriber: drop the oldest event to make room.
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- ev:
			default:
			}
		}
	}
}

func valueEqual(a, b any) bool {
	if ta, ok := a.(*protocol.Track); ok {
		tb, ok := b.(*protocol.Track)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}

// sleep waits for d, returning false when ctx is cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
