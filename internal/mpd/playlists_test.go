package mpd

import (
	"testing"
)

func TestPlaylists(t *testing.T) {
	s := newTestServer(t, func(line string) string {
		if line == "listplaylists" {
			return "playlist: 95\n" +
				"Last-Modified: 2021-01-01T00:00:00Z\n" +
				"playlist: favorites\n" +
				"Last-Modified: 2021-02-01T00:00:00Z\n" +
				"OK\n"
		}
		return "OK\n"
	})
	c := connectedClient(t, s)

	playlists, err := c.Playlists()
	if err != nil {
		t.Fatalf("Playlists: %v", err)
	}
	if len(playlists) != 2 {
		t.Fatalf("got %d playlists, want 2", len(playlists))
	}

	// A numeric-looking name is still a name.
	if playlists[0].Name != "95" {
		t.Errorf("Name = %q, want %q", playlists[0].Name, "95")
	}
	if playlists[1].Name != "favorites" {
		t.Errorf("Name = %q, want %q", playlists[1].Name, "favorites")
	}
	if playlists[0].LastModified.Year() != 2021 {
		t.Errorf("LastModified = %v", playlists[0].LastModified)
	}
}

func TestPlaylist_Operations(t *testing.T) {
	s := newTestServer(t, okAll)
	c := connectedClient(t, s)

	p := c.StoredPlaylist("road trip")
	if err := p.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := p.Add("albums/one.flac"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := p.Rename("vacation"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if p.Name != "vacation" {
		t.Errorf("Name = %q after rename", p.Name)
	}
	if err := p.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	want := []string{
		`load "road trip"`,
		`playlistadd "road trip" albums/one.flac`,
		`rename "road trip" vacation`,
		"rm vacation",
	}
	got := s.received()
	if len(got) != len(want) {
		t.Fatalf("wire = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wire[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSaveQueue(t *testing.T) {
	s := newTestServer(t, okAll)
	c := connectedClient(t, s)

	p, err := c.SaveQueue("tonight")
	if err != nil {
		t.Fatalf("SaveQueue: %v", err)
	}
	if p.Name != "tonight" {
		t.Errorf("Name = %q", p.Name)
	}
	if got := s.received(); len(got) != 1 || got[0] != "save tonight" {
		t.Errorf("wire = %v", got)
	}
}
