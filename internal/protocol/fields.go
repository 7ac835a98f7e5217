package protocol

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// TimePair is an elapsed/total playback time, in seconds. The daemon emits
// "elapsed:total" for the current song and a bare total for database
// entries; HasElapsed distinguishes the two forms.
type TimePair struct {
	Elapsed    int
	Total      int
	HasElapsed bool
	HasTotal   bool
}

// AudioFormat is the decoded "audio" status field.
type AudioFormat struct {
	SampleRate int
	Bits       int
	Channels   int
}

// Field typing tables. The daemon sends every value as text; the field
// name alone decides how a value is decoded.
var (
	intFields = map[string]bool{
		"volume": true, "playlistlength": true, "song": true, "songid": true,
		"nextsong": true, "nextsongid": true, "bitrate": true, "pos": true,
		"id": true, "date": true, "track": true, "disc": true,
		"outputid": true, "updating_db": true, "xfade": true, "prio": true,
		"artists": true, "albums": true, "songs": true, "uptime": true,
		"playtime": true, "db_playtime": true,
	}

	floatFields = map[string]bool{
		"mixrampdb": true, "mixrampdelay": true, "elapsed": true,
		"duration": true,
	}

	boolFields = map[string]bool{
		"repeat": true, "random": true, "single": true, "consume": true,
		"outputenabled": true,
	}

	symbolFields = map[string]bool{
		"state": true, "replay_gain_mode": true, "tagtype": true,
		"changed": true,
	}
)

// Coerce converts a raw wire value into its typed form based on the field
// name. Unknown fields pass through as text.
func Coerce(field, raw string) any {
	switch {
	case intFields[field]:
		return parseInt(raw)
	case floatFields[field]:
		if raw == "nan" {
			return math.NaN()
		}
		f, _ := strconv.ParseFloat(raw, 64)
		return f
	case boolFields[field]:
		return raw != "0"
	case symbolFields[field]:
		return strings.ToLower(raw)
	}

	switch field {
	case "playlist":
		// Overloaded by the daemon: a queue version when numeric and
		// nonzero, a playlist name otherwise.
		if n := parseInt(raw); n != 0 {
			return n
		}
		return raw
	case "db_update":
		return time.Unix(int64(parseInt(raw)), 0)
	case "last-modified":
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return raw
		}
		return t
	case "time":
		return parseTimePair(raw)
	case "audio":
		return parseAudio(raw)
	}
	return raw
}

// parseInt parses leading digits the way the original protocol expects:
// garbage input yields 0 rather than an error.
func parseInt(raw string) int {
	i := 0
	neg := false
	if i < len(raw) && (raw[i] == '-' || raw[i] == '+') {
		neg = raw[i] == '-'
		i++
	}
	n := 0
	digits := false
	for ; i < len(raw) && raw[i] >= '0' && raw[i] <= '9'; i++ {
		n = n*10 + int(raw[i]-'0')
		digits = true
	}
	if !digits {
		return 0
	}
	if neg {
		return -n
	}
	return n
}

func parseTimePair(raw string) TimePair {
	if elapsed, total, ok := strings.Cut(raw, ":"); ok {
		return TimePair{
			Elapsed:    parseInt(elapsed),
			Total:      parseInt(total),
			HasElapsed: true,
			HasTotal:   true,
		}
	}
	// A bare integer is a total with no elapsed component.
	return TimePair{Total: parseInt(raw), HasTotal: true}
}

func parseAudio(raw string) AudioFormat {
	parts := strings.SplitN(raw, ":", 3)
	var f AudioFormat
	if len(parts) > 0 {
		f.SampleRate = parseInt(parts[0])
	}
	if len(parts) > 1 {
		f.Bits = parseInt(parts[1])
	}
	if len(parts) > 2 {
		f.Channels = parseInt(parts[2])
	}
	return f
}
