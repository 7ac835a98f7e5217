package mpd

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/askoglund/mpdlink/internal/protocol"
)

func recvEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("event channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestWatcher_EmitChanges(t *testing.T) {
	c := New("127.0.0.1:0")
	w := c.NewWatcher(nil)
	ch, cancel := w.Subscribe(FieldVolume)
	defer cancel()

	first := map[Field]any{FieldVolume: 50, FieldState: "play"}
	w.emitChanges(map[Field]any{}, first)

	ev := recvEvent(t, ch)
	if ev.Field != FieldVolume || ev.Value != 50 {
		t.Errorf("event = %+v, want volume 50", ev)
	}

	// An unchanged field stays silent.
	w.emitChanges(first, map[Field]any{FieldVolume: 50, FieldState: "pause"})
	if len(ch) != 0 {
		t.Errorf("%d events buffered for an unchanged field", len(ch))
	}

	w.emitChanges(first, map[Field]any{FieldVolume: 60, FieldState: "play"})
	ev = recvEvent(t, ch)
	if ev.Value != 60 {
		t.Errorf("event value = %v, want 60", ev.Value)
	}
}

func TestWatcher_SubscribeAll(t *testing.T) {
	c := New("127.0.0.1:0")
	w := c.NewWatcher(nil)
	ch, cancel := w.Subscribe()
	defer cancel()

	w.emitChanges(map[Field]any{}, map[Field]any{FieldState: "play", FieldVolume: 50})

	// Events arrive in field-name order.
	if ev := recvEvent(t, ch); ev.Field != FieldState {
		t.Errorf("first event = %v, want state", ev.Field)
	}
	if ev := recvEvent(t, ch); ev.Field != FieldVolume {
		t.Errorf("second event = %v, want volume", ev.Field)
	}
}

func TestWatcher_Unsubscribe(t *testing.T) {
	c := New("127.0.0.1:0")
	w := c.NewWatcher(nil)
	ch, cancel := w.Subscribe(FieldVolume)

	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel not closed by cancel")
	}

	// Publishing after cancel must not panic, and cancel is idempotent.
	w.publish(Event{Field: FieldVolume, Value: 10})
	cancel()
}

func TestWatcher_DropOldest(t *testing.T) {
	c := New("127.0.0.1:0")
	w := c.NewWatcher(nil)
	ch, cancel := w.Subscribe(FieldVolume)
	defer cancel()

	for i := 0; i <= eventBuffer; i++ {
		w.publish(Event{Field: FieldVolume, Value: i})
	}

	if ev := recvEvent(t, ch); ev.Value != 1 {
		t.Errorf("oldest surviving event = %v, want 1", ev.Value)
	}
}

func TestWatcher_TrackComparison(t *testing.T) {
	build := func(title string) *protocol.Track {
		rec := protocol.NewRecord()
		rec.Add("file", "a.flac")
		rec.Add("title", title)
		return protocol.NewTrack(rec)
	}

	c := New("127.0.0.1:0")
	w := c.NewWatcher(nil)
	ch, cancel := w.Subscribe(FieldNowPlaying)
	defer cancel()

	prev := map[Field]any{FieldNowPlaying: build("One")}
	w.emitChanges(prev, map[Field]any{FieldNowPlaying: build("One")})
	if len(ch) != 0 {
		t.Error("equal tracks reported as a change")
	}

	w.emitChanges(prev, map[Field]any{FieldNowPlaying: build("Two")})
	ev := recvEvent(t, ch)
	track, ok := ev.Value.(*protocol.Track)
	if !ok || track.Title != "Two" {
		t.Errorf("event = %+v, want the new track", ev)
	}
}

func TestWatcher_Loop(t *testing.T) {
	var volume atomic.Int32
	volume.Store(50)
	s := newTestServer(t, func(line string) string {
		switch line {
		case "status":
			return fmt.Sprintf("volume: %d\nstate: play\nOK\n", volume.Load())
		default:
			return "OK\n"
		}
	})
	c := connectedClient(t, s)

	w := c.NewWatcher(nil)
	w.interval = 5 * time.Millisecond
	ch, cancel := w.Subscribe(FieldVolume, FieldTime)
	defer cancel()

	w.Start()
	defer w.Stop()

	// First tick reports the initial value, and the time placeholder for a
	// status without a time field.
	sawVolume, sawTime := false, false
	for !sawVolume || !sawTime {
		switch ev := recvEvent(t, ch); ev.Field {
		case FieldVolume:
			if ev.Value != 50 {
				t.Errorf("initial volume = %v, want 50", ev.Value)
			}
			sawVolume = true
		case FieldTime:
			if ev.Value != (protocol.TimePair{}) {
				t.Errorf("time placeholder = %#v", ev.Value)
			}
			sawTime = true
		}
	}

	volume.Store(60)
	for {
		ev := recvEvent(t, ch)
		if ev.Field != FieldVolume {
			continue
		}
		if ev.Value != 60 {
			t.Errorf("changed volume = %v, want 60", ev.Value)
		}
		break
	}
}

func TestWatcher_StoppedByDisconnect(t *testing.T) {
	s := newTestServer(t, okAll)
	c := connectedClient(t, s)

	w := c.NewWatcher(nil)
	w.interval = 5 * time.Millisecond
	w.Start()

	if !c.Disconnect() {
		t.Fatal("Disconnect = false")
	}

	// The watcher is already stopped, so Stop returns immediately.
	w.Stop()
	w.mu.Lock()
	running := w.cancel != nil
	w.mu.Unlock()
	if running {
		t.Error("watcher still running after Disconnect")
	}
}
