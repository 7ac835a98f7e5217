package mpd

import "github.com/askoglund/mpdlink/internal/protocol"

// Status returns the daemon's status record.
func (c *Client) Status() (*protocol.Record, error) {
	return c.commandRecord("status")
}

// Stats returns database and daemon statistics.
func (c *Client) Stats() (*protocol.Record, error) {
	return c.commandRecord("stats")
}

// CurrentSong returns the playing or paused track, or nil when the
// queue is stopped with no current song.
func (c *Client) CurrentSong() (*protocol.Track, error) {
	return c.commandTrack("currentsong")
}

// ClearError clears the daemon's sticky error flag.
func (c *Client) ClearError() error {
	return c.commandOK("clearerror")
}

// Ping round-trips a no-op command.
func (c *Client) Ping() error {
	return c.commandOK(protocol.CmdPing)
}

// Password authenticates an open connection.
func (c *Client) Password(password string) error {
	return c.commandOK(protocol.CmdPassword, password)
}

// Kill asks the daemon to shut down.
func (c *Client) Kill() error {
	return c.commandOK("kill")
}
