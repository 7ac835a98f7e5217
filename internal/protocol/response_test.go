package protocol

import (
	"reflect"
	"testing"
)

func TestParseResponse_Chunking(t *testing.T) {
	body := "file: a.flac\nTitle: One\nfile: b.flac\nTitle: Two\n"

	res := ParseResponse("playlistinfo", body)
	tracks, ok := res.([]any)
	if !ok {
		t.Fatalf("ParseResponse = %T, want []any", res)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d records, want 2", len(tracks))
	}

	first := tracks[0].(*Track)
	second := tracks[1].(*Track)
	if first.File != "a.flac" || first.Title != "One" {
		t.Errorf("first track = %q/%q", first.File, first.Title)
	}
	if second.File != "b.flac" || second.Title != "Two" {
		t.Errorf("second track = %q/%q", second.File, second.Title)
	}
}

func TestParseResponse_RecordGrouping(t *testing.T) {
	body := "file: a.flac\nArtist: First\nArtist: Second\nAlbum: Solo\n"

	res := ParseResponse("playlistinfo", body)
	tracks := res.([]any)
	if len(tracks) != 1 {
		t.Fatalf("got %d records, want 1", len(tracks))
	}

	track := tracks[0].(*Track)
	if want := []string{"First", "Second"}; !reflect.DeepEqual(track.Artists, want) {
		t.Errorf("Artists = %v, want %v", track.Artists, want)
	}
	if track.Artist != "First" {
		t.Errorf("Artist = %q, want %q", track.Artist, "First")
	}
	if track.Album != "Solo" {
		t.Errorf("Album = %q, want singular value", track.Album)
	}
}

func TestParseResponse_RepeatedKeyAccumulation(t *testing.T) {
	rec := NewRecord()
	rec.Add("genre", "Jazz")
	rec.Add("genre", "Fusion")
	rec.Add("genre", "Bop")

	v, _ := rec.Get("genre")
	want := []any{"Jazz", "Fusion", "Bop"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("genre = %v, want %v", v, want)
	}
}

// A repeated composite field accumulates typed values, not raw text.
func TestParseResponse_CompositeValueNotList(t *testing.T) {
	rec := NewRecord()
	rec.Add("time", "10:60")
	rec.Add("time", "20:60")

	v, _ := rec.Get("time")
	list, ok := v.([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("time = %#v, want two-element list", v)
	}
	if list[0] != (TimePair{Elapsed: 10, Total: 60, HasElapsed: true, HasTotal: true}) {
		t.Errorf("time[0] = %#v", list[0])
	}
}

func TestParseResponse_CollapseRule(t *testing.T) {
	body := "file: a.flac\nTitle: One\n"

	t.Run("single result collapses for non-collection command", func(t *testing.T) {
		res := ParseResponse("currentsong", body)
		track, ok := res.(*Track)
		if !ok {
			t.Fatalf("ParseResponse = %T, want *Track", res)
		}
		if track.File != "a.flac" {
			t.Errorf("File = %q", track.File)
		}
	})

	t.Run("single result stays a list for collection command", func(t *testing.T) {
		res := ParseResponse("find", body)
		list, ok := res.([]any)
		if !ok || len(list) != 1 {
			t.Fatalf("ParseResponse = %#v, want one-element []any", res)
		}
	})
}

func TestParseResponse_EmptyBody(t *testing.T) {
	t.Run("collection command yields empty list", func(t *testing.T) {
		res := ParseResponse("search", "")
		list, ok := res.([]any)
		if !ok || len(list) != 0 {
			t.Errorf("ParseResponse = %#v, want empty []any", res)
		}
	})

	t.Run("other commands yield bare success", func(t *testing.T) {
		if res := ParseResponse("play", ""); res != true {
			t.Errorf("ParseResponse = %#v, want true", res)
		}
	})
}

func TestParseResponse_StatusRecord(t *testing.T) {
	body := "volume: 70\nrepeat: 0\nstate: play\ntime: 35:120\naudio: 44100:16:2\n"

	res := ParseResponse("status", body)
	rec, ok := res.(*Record)
	if !ok {
		t.Fatalf("ParseResponse = %T, want *Record", res)
	}

	if v, _ := rec.Get("volume"); v != 70 {
		t.Errorf("volume = %v", v)
	}
	if v, _ := rec.Get("repeat"); v != false {
		t.Errorf("repeat = %v", v)
	}
	if v, _ := rec.Get("time"); v != (TimePair{Elapsed: 35, Total: 120, HasElapsed: true, HasTotal: true}) {
		t.Errorf("time = %#v", v)
	}
	if v, _ := rec.Get("audio"); v != (AudioFormat{44100, 16, 2}) {
		t.Errorf("audio = %#v", v)
	}
}

func TestParseResponse_ScalarList(t *testing.T) {
	body := "Artist: Ella\nArtist: Duke\nArtist: Monk\n"

	res := ParseResponse("list", body)
	want := []any{"Ella", "Duke", "Monk"}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("ParseResponse = %#v, want %#v", res, want)
	}
}

func TestParseResponse_ListingMarkersStripped(t *testing.T) {
	body := "directory: Albums\n" +
		"Last-Modified: 2021-01-01T00:00:00Z\n" +
		"file: a.flac\nTitle: One\n" +
		"playlist: favorites\n" +
		"Last-Modified: 2021-02-01T00:00:00Z\n" +
		"file: b.flac\nTitle: Two\n"

	res := ParseResponse("lsinfo", body)
	tracks, ok := res.([]any)
	if !ok {
		t.Fatalf("ParseResponse = %T, want []any", res)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if tracks[0].(*Track).File != "a.flac" || tracks[1].(*Track).File != "b.flac" {
		t.Errorf("tracks = %v, %v", tracks[0], tracks[1])
	}
}

func TestParseResponse_FlatFileListing(t *testing.T) {
	body := "file: a.flac\nfile: b.flac\nfile: c.flac\n"

	res := ParseResponse("listall", body)
	rec, ok := res.(*Record)
	if !ok {
		t.Fatalf("ParseResponse = %T, want *Record", res)
	}
	v, _ := rec.Get("file")
	want := []any{"a.flac", "b.flac", "c.flac"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("file = %#v, want %#v", v, want)
	}
}

func TestParseResponse_RemoteStream(t *testing.T) {
	body := "file: http://radio.example/stream\nTitle: Live\nArtist: Somebody\n"

	res := ParseResponse("currentsong", body)
	track := res.(*Track)
	if track.File != "http://radio.example/stream" {
		t.Errorf("File = %q", track.File)
	}
	// Remote streams keep only their URL and a zero elapsed time.
	if track.Title != "" || track.Artist != "" {
		t.Errorf("metadata not discarded: %q/%q", track.Title, track.Artist)
	}
	want := TimePair{HasElapsed: true}
	if track.Time != want {
		t.Errorf("Time = %+v, want %+v", track.Time, want)
	}
}

func TestParseResponse_BareScalar(t *testing.T) {
	if res := ParseResponse("addid", "Id: 17\n"); res != 17 {
		t.Errorf("ParseResponse(addid) = %#v, want 17", res)
	}
	if res := ParseResponse("update", "updating_db: 3\n"); res != 3 {
		t.Errorf("ParseResponse(update) = %#v, want 3", res)
	}
}

func TestTrack_Equal(t *testing.T) {
	build := func() *Track {
		rec := NewRecord()
		rec.Add("file", "a.flac")
		rec.Add("title", "One")
		rec.Add("genre", "Jazz")
		return NewTrack(rec)
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("identical tracks not equal")
	}

	b.SetTag("genre", "Blues")
	if a.Equal(b) {
		t.Error("tracks differing only in tag bag reported equal")
	}
}

func TestTrack_TagBag(t *testing.T) {
	rec := NewRecord()
	rec.Add("file", "a.flac")
	rec.Add("track", "7")
	rec.Add("genre", "Jazz")
	track := NewTrack(rec)

	if v, ok := track.Tag("track"); !ok || v != 7 {
		t.Errorf("Tag(track) = %v, %v", v, ok)
	}
	track.SetTag("rating", 5)
	if v, _ := track.Tag("rating"); v != 5 {
		t.Errorf("Tag(rating) = %v", v)
	}
	if want := []string{"track", "genre", "rating"}; !reflect.DeepEqual(track.TagNames(), want) {
		t.Errorf("TagNames = %v, want %v", track.TagNames(), want)
	}
}
