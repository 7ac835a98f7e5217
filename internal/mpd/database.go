package mpd

import "github.com/askoglund/mpdlink/internal/protocol"

// Find returns database songs matching the query exactly.
func (c *Client) Find(q protocol.Query) ([]*protocol.Track, error) {
	return c.commandTracks("find", q)
}

// Search returns database songs matching the query case-insensitively.
func (c *Client) Search(q protocol.Query) ([]*protocol.Track, error) {
	return c.commandTracks("search", q)
}

// List returns the distinct values of a tag, optionally narrowed by a
// query.
func (c *Client) List(tag string, q protocol.Query) ([]string, error) {
	if len(q) == 0 {
		return c.commandStrings("list", tag)
	}
	return c.commandStrings("list", tag, q)
}

// Files returns every database file path under the given directory.
func (c *Client) Files(dir string) ([]string, error) {
	var rec *protocol.Record
	var err error
	if dir == "" {
		rec, err = c.commandRecord("listall")
	} else {
		rec, err = c.commandRecord("listall", dir)
	}
	if err != nil || rec == nil {
		return nil, err
	}
	v, _ := rec.Get("file")
	switch files := v.(type) {
	case string:
		return []string{files}, nil
	case []any:
		out := make([]string, 0, len(files))
		for _, f := range files {
			if s, ok := f.(string); ok {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return nil, nil
	}
}

// ListFiles returns one record per directory entry (files, directories,
// playlists), including entries outside the music database.
func (c *Client) ListFiles(dir string) ([]*protocol.Record, error) {
	if dir == "" {
		return c.commandRecords("listfiles")
	}
	return c.commandRecords("listfiles", dir)
}

// ListAllInfo returns full song records for everything under the given
// directory.
func (c *Client) ListAllInfo(dir string) ([]*protocol.Track, error) {
	if dir == "" {
		return c.commandTracks("listallinfo")
	}
	return c.commandTracks("listallinfo", dir)
}

// LsInfo returns the songs directly inside the given directory.
// Subdirectory and stored-playlist entries are dropped by the parser.
func (c *Client) LsInfo(dir string) ([]*protocol.Track, error) {
	if dir == "" {
		return c.commandTracks("lsinfo")
	}
	return c.commandTracks("lsinfo", dir)
}

// Count returns the songs/playtime record for songs matching the query.
func (c *Client) Count(q protocol.Query) (*protocol.Record, error) {
	return c.commandRecord("count", q)
}

// ReadComments returns the raw metadata comments of one database file.
func (c *Client) ReadComments(uri string) (*protocol.Record, error) {
	return c.commandRecord("readcomments", uri)
}

// Update triggers a database update of the given path ("" for the whole
// database) and returns the update job id.
func (c *Client) Update(path string) (int, error) {
	if path == "" {
		return c.commandInt("update")
	}
	return c.commandInt("update", path)
}

// Rescan is Update for unmodified files too.
func (c *Client) Rescan(path string) (int, error) {
	if path == "" {
		return c.commandInt("rescan")
	}
	return c.commandInt("rescan", path)
}
