package protocol

import (
	"reflect"
	"strings"
)

// Record is one decoded response record: field names mapped to coerced
// values, in wire order. A field the daemon emits more than once inside a
// record accumulates into an ordered []any.
type Record struct {
	fields []string
	values map[string]any
	// multi marks fields that were explicitly converted to a list by a
	// repeated key. Fields whose single value is itself composite (the
	// time pair, the audio triple) are not in this set.
	multi map[string]bool
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Add coerces raw and stores it under field, accumulating repeated fields
// into a list in arrival order.
func (r *Record) Add(field, raw string) {
	v := Coerce(field, raw)
	old, ok := r.values[field]
	if !ok {
		r.fields = append(r.fields, field)
		r.values[field] = v
		return
	}
	if r.multi[field] {
		r.values[field] = append(old.([]any), v)
		return
	}
	if r.multi == nil {
		r.multi = make(map[string]bool)
	}
	r.multi[field] = true
	r.values[field] = []any{old, v}
}

// Get returns the value stored under field.
func (r *Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Set stores a value under field, appending the field to the order on
// first write.
func (r *Record) Set(field string, v any) {
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = v
}

// Fields returns the field names in wire order.
func (r *Record) Fields() []string {
	return r.fields
}

// Len returns the number of distinct fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Equal reports whether both records hold the same fields with the same
// values, in the same order.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if !reflect.DeepEqual(r.fields, o.fields) {
		return false
	}
	return reflect.DeepEqual(r.values, o.values)
}

// Track is a song record. The common tags are promoted to struct fields;
// everything else the daemon sent stays in an ordered tag bag reachable
// through Tag and SetTag.
type Track struct {
	File        string
	Title       string
	Artist      string
	Artists     []string
	Album       string
	AlbumArtist string
	Time        TimePair

	tags *Record
}

// promoted fields are pulled out of the record when a Track is built.
var promotedTrackFields = map[string]bool{
	"file": true, "title": true, "artist": true, "album": true,
	"albumartist": true, "time": true,
}

// NewTrack builds a Track from a decoded record.
func NewTrack(rec *Record) *Track {
	t := &Track{tags: NewRecord()}
	for _, field := range rec.Fields() {
		v, _ := rec.Get(field)
		switch strings.ToLower(field) {
		case "file":
			t.File = stringValue(v)
		case "title":
			t.Title = stringValue(v)
		case "artist":
			t.Artists = stringValues(v)
			if len(t.Artists) > 0 {
				t.Artist = t.Artists[0]
			}
		case "album":
			t.Album = stringValue(v)
		case "albumartist":
			t.AlbumArtist = stringValue(v)
		case "time":
			if tp, ok := v.(TimePair); ok {
				t.Time = tp
			}
		default:
			t.tags.Set(field, v)
		}
	}
	return t
}

// Tag reads a non-promoted field from the tag bag.
func (t *Track) Tag(name string) (any, bool) {
	return t.tags.Get(name)
}

// SetTag writes a non-promoted field into the tag bag.
func (t *Track) SetTag(name string, v any) {
	t.tags.Set(name, v)
}

// TagNames returns the tag bag field names in wire order.
func (t *Track) TagNames() []string {
	return t.tags.Fields()
}

// Remote reports whether the track is a remote stream rather than a
// database file.
func (t *Track) Remote() bool {
	return isRemoteURL(t.File)
}

// Equal reports whether every field of both tracks, including the tag
// bag, is equal.
func (t *Track) Equal(o *Track) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.File == o.File &&
		t.Title == o.Title &&
		t.Artist == o.Artist &&
		reflect.DeepEqual(t.Artists, o.Artists) &&
		t.Album == o.Album &&
		t.AlbumArtist == o.AlbumArtist &&
		t.Time == o.Time &&
		t.tags.Equal(o.tags)
}

func isRemoteURL(file string) bool {
	scheme, _, ok := strings.Cut(file, "://")
	if !ok || scheme == "" {
		return false
	}
	for _, r := range scheme {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []any:
		if len(s) > 0 {
			return stringValue(s[0])
		}
		return ""
	default:
		return ""
	}
}

func stringValues(v any) []string {
	switch s := v.(type) {
	case string:
		return []string{s}
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			out = append(out, stringValue(e))
		}
		return out
	default:
		return nil
	}
}
