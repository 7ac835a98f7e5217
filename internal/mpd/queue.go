package mpd

import "github.com/askoglund/mpdlink/internal/protocol"

// Queue returns the whole play queue.
func (c *Client) Queue() ([]*protocol.Track, error) {
	return c.commandTracks("playlistinfo")
}

// QueueRange returns the span of the play queue selected by r.
func (c *Client) QueueRange(r protocol.Range) ([]*protocol.Track, error) {
	return c.commandTracks("playlistinfo", r)
}

// QueueChanges returns the songs changed since the given queue version.
func (c *Client) QueueChanges(version int) ([]*protocol.Track, error) {
	return c.commandTracks("plchanges", version)
}

// SongAtPos returns the queued song at the given position.
func (c *Client) SongAtPos(pos int) (*protocol.Track, error) {
	return c.commandTrack("playlistinfo", pos)
}

// SongWithID returns the queued song with the given id.
func (c *Client) SongWithID(id int) (*protocol.Track, error) {
	return c.commandTrack("playlistid", id)
}

// Add appends a URI (file or directory) to the queue.
func (c *Client) Add(uri string) error {
	return c.commandOK("add", uri)
}

// AddID appends a single song and returns its queue id. A negative pos
// appends at the end.
func (c *Client) AddID(uri string, pos int) (int, error) {
	if pos < 0 {
		return c.commandInt("addid", uri)
	}
	return c.commandInt("addid", uri, pos)
}

// Delete removes the song at the given queue position.
func (c *Client) Delete(pos int) error {
	return c.commandOK("delete", pos)
}

// DeleteRange removes the span of the queue selected by r.
func (c *Client) DeleteRange(r protocol.Range) error {
	return c.commandOK("delete", r)
}

// DeleteID removes the song with the given queue id.
func (c *Client) DeleteID(id int) error {
	return c.commandOK("deleteid", id)
}

// Move moves the song at pos to the new position.
func (c *Client) Move(pos, to int) error {
	return c.commandOK("move", pos, to)
}

// MoveRange moves the span selected by r to the new position.
func (c *Client) MoveRange(r protocol.Range, to int) error {
	return c.commandOK("move", r, to)
}

// MoveID moves the song with the given id to the new position.
func (c *Client) MoveID(id, to int) error {
	return c.commandOK("moveid", id, to)
}

// Swap exchanges the songs at two queue positions.
func (c *Client) Swap(a, b int) error {
	return c.commandOK("swap", a, b)
}

// SwapID exchanges the songs with two queue ids.
func (c *Client) SwapID(a, b int) error {
	return c.commandOK("swapid", a, b)
}

// Shuffle shuffles the whole queue.
func (c *Client) Shuffle() error {
	return c.commandOK("shuffle")
}

// ShuffleRange shuffles the span of the queue selected by r.
func (c *Client) ShuffleRange(r protocol.Range) error {
	return c.commandOK("shuffle", r)
}

// Clear empties the queue.
func (c *Client) Clear() error {
	return c.commandOK("clear")
}

// SetPriority raises the priority of the span selected by r for random
// mode.
func (c *Client) SetPriority(prio int, r protocol.Range) error {
	return c.commandOK("prio", prio, r)
}
