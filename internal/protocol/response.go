package protocol

import (
	"strings"
)

// Command shape tables. The wire format does not tell a one-element list
// apart from a bare value, so each command declares its shape up front.
var (
	// collectionCommands always yield a slice, even for zero or one
	// result.
	collectionCommands = map[string]bool{
		"channels": true, "commands": true, "notcommands": true,
		"tagtypes": true, "urlhandlers": true, "decoders": true,
		"outputs": true, "readmessages": true,
		"list": true, "listall": true, "listallinfo": true,
		"listfiles": true, "lsinfo": true, "find": true, "search": true,
		"playlistinfo": true, "plchanges": true,
		"playlistfind": true, "playlistsearch": true,
		"listplaylists": true, "listplaylist": true,
		"listplaylistinfo": true,
	}

	// trackCommands yield song records built into Tracks.
	trackCommands = map[string]bool{
		"currentsong": true, "playlistinfo": true, "playlistid": true,
		"plchanges": true, "find": true, "search": true,
		"listallinfo": true, "lsinfo": true,
		"playlistfind": true, "playlistsearch": true,
	}

	// playlistCommands yield stored-playlist records.
	playlistCommands = map[string]bool{
		"listplaylists": true,
	}
)

// ParseResponse decodes a raw success reply body into the typed result
// declared for the command: a bare value or Record, a slice of values,
// Records or Tracks, or boolean true for a payload-free success. Callers
// must know each command's declared shape.
func ParseResponse(command, body string) any {
	command = strings.ToLower(command)

	// listall replies are a flat stream of file lines with no usable
	// record boundary; decode the whole body as one record.
	if command == "listall" {
		return parseFlatRecord(body)
	}

	// lsinfo mixes directory and stored-playlist marker lines into the
	// song records, which breaks the chunk boundary heuristic. Strip
	// them (and their trailing modification times) up front.
	if command == "lsinfo" {
		body = stripListingMarkers(body)
	}

	if strings.TrimSpace(body) == "" {
		if collectionCommands[command] {
			return []any{}
		}
		return true
	}

	buildRecords := trackCommands[command] || playlistCommands[command]
	chunks := splitChunks(body)
	results := make([]any, 0, len(chunks))
	for _, chunk := range chunks {
		if !buildRecords && !strings.Contains(chunk, "\n") {
			field, raw := cutPair(chunk)
			results = append(results, Coerce(strings.ToLower(field), raw))
			continue
		}
		rec := buildRecord(chunk)
		if trackCommands[command] {
			results = append(results, buildTrack(rec))
		} else {
			results = append(results, rec)
		}
	}

	if len(results) == 1 && !collectionCommands[command] {
		return results[0]
	}
	return results
}

// splitChunks divides a body into records. The boundary field is the
// first key of the body; a new chunk starts before every later line that
// opens with the same key. This assumes the first field of every record
// in a response is always present and always first, which holds for the
// commands declared above.
func splitChunks(body string) []string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	key, _, ok := strings.Cut(lines[0], ":")
	if !ok {
		return []string{strings.Join(lines, "\n")}
	}
	prefix := key + ":"

	var chunks []string
	start := 0
	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], prefix) {
			chunks = append(chunks, strings.Join(lines[start:i], "\n"))
			start = i
		}
	}
	return append(chunks, strings.Join(lines[start:], "\n"))
}

// buildRecord decodes one chunk's key/value lines into a Record, field
// names lower-cased.
func buildRecord(chunk string) *Record {
	rec := NewRecord()
	for _, line := range strings.Split(strings.TrimRight(chunk, "\n"), "\n") {
		if line == "" {
			continue
		}
		field, raw := cutPair(line)
		rec.Add(strings.ToLower(field), raw)
	}
	return rec
}

// buildTrack turns a song record into a Track. Remote streams carry no
// usable metadata beyond their URL: every other field is dropped and the
// time pair becomes zero elapsed with no total.
func buildTrack(rec *Record) *Track {
	t := NewTrack(rec)
	if t.Remote() {
		return &Track{
			File: t.File,
			Time: TimePair{HasElapsed: true},
			tags: NewRecord(),
		}
	}
	return t
}

// parseFlatRecord decodes an entire body as one record, value-per-key.
func parseFlatRecord(body string) *Record {
	return buildRecord(strings.TrimRight(body, "\n"))
}

// stripListingMarkers removes directory and stored-playlist marker lines,
// each with an optional following modification-time line.
func stripListingMarkers(body string) string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	skipModified := false
	for _, line := range lines {
		if strings.HasPrefix(line, "directory: ") || strings.HasPrefix(line, "playlist: ") {
			skipModified = true
			continue
		}
		if skipModified && strings.HasPrefix(line, "Last-Modified: ") {
			skipModified = false
			continue
		}
		skipModified = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// cutPair splits one wire line into its field name and raw value.
func cutPair(line string) (field, raw string) {
	if f, r, ok := strings.Cut(line, ": "); ok {
		return f, r
	}
	f, r, _ := strings.Cut(line, ":")
	return f, r
}
