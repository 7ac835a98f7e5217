package mpd

import "github.com/askoglund/mpdlink/internal/protocol"

// Decoders returns one record per decoder plugin, with its supported
// suffixes and MIME types accumulated as lists.
func (c *Client) Decoders() ([]*protocol.Record, error) {
	return c.commandRecords("decoders")
}

// Commands returns the commands the current connection may use.
func (c *Client) Commands() ([]string, error) {
	return c.commandStrings("commands")
}

// NotCommands returns the commands the current connection may not use.
func (c *Client) NotCommands() ([]string, error) {
	return c.commandStrings("notcommands")
}

// TagTypes returns the metadata tag names the daemon knows.
func (c *Client) TagTypes() ([]string, error) {
	return c.commandStrings("tagtypes")
}

// URLHandlers returns the remote URL schemes the daemon can play.
func (c *Client) URLHandlers() ([]string, error) {
	return c.commandStrings("urlhandlers")
}
