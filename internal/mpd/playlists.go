package mpd

import (
	"fmt"
	"time"

	"github.com/askoglund/mpdlink/internal/protocol"
)

// Playlist is a handle on a stored playlist. Names are always text, even
// when they look numeric.
type Playlist struct {
	Name         string
	LastModified time.Time

	client *Client
}

// Playlists lists the stored playlists.
func (c *Client) Playlists() ([]*Playlist, error) {
	recs, err := c.commandRecords("listplaylists")
	if err != nil {
		return nil, err
	}
	playlists := make([]*Playlist, 0, len(recs))
	for _, rec := range recs {
		name, ok := rec.Get("playlist")
		if !ok {
			continue
		}
		p := &Playlist{Name: fmt.Sprint(name), client: c}
		if v, ok := rec.Get("last-modified"); ok {
			if t, ok := v.(time.Time); ok {
				p.LastModified = t
			}
		}
		playlists = append(playlists, p)
	}
	return playlists, nil
}

// StoredPlaylist returns a handle on the named playlist without touching
// the daemon. Operations on a playlist that does not exist fail with the
// daemon's not-found error.
func (c *Client) StoredPlaylist(name string) *Playlist {
	return &Playlist{Name: name, client: c}
}

// SaveQueue stores the current queue as a new playlist and returns its
// handle.
func (c *Client) SaveQueue(name string) (*Playlist, error) {
	if err := c.commandOK("save", name); err != nil {
		return nil, err
	}
	return &Playlist{Name: name, client: c}, nil
}

// Songs returns the playlist's tracks.
func (p *Playlist) Songs() ([]*protocol.Track, error) {
	return p.client.commandTracks("listplaylistinfo", p.Name)
}

// Load appends the whole playlist to the queue.
func (p *Playlist) Load() error {
	return p.client.commandOK("load", p.Name)
}

// LoadRange appends the span of the playlist selected by r to the queue.
func (p *Playlist) LoadRange(r protocol.Range) error {
	return p.client.commandOK("load", p.Name, r)
}

// Add appends a URI to the playlist.
func (p *Playlist) Add(uri string) error {
	return p.client.commandOK("playlistadd", p.Name, uri)
}

// Delete removes the song at the given playlist position.
func (p *Playlist) Delete(pos int) error {
	return p.client.commandOK("playlistdelete", p.Name, pos)
}

// Move moves the song with the given id to the new position.
func (p *Playlist) Move(id, pos int) error {
	return p.client.commandOK("playlistmove", p.Name, id, pos)
}

// Clear removes every song from the playlist.
func (p *Playlist) Clear() error {
	return p.client.commandOK("playlistclear", p.Name)
}

// Rename renames the playlist and updates the handle.
func (p *Playlist) Rename(name string) error {
	if err := p.client.commandOK("rename", p.Name, name); err != nil {
		return err
	}
	p.Name = name
	return nil
}

// Destroy deletes the stored playlist.
func (p *Playlist) Destroy() error {
	return p.client.commandOK("rm", p.Name)
}
