// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/askoglund/mpdlink/internal/mpd"
	"github.com/askoglund/mpdlink/internal/protocol"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// StateBadge returns a colored playback state indicator.
func StateBadge(state string) string {
	switch state {
	case "play":
		return Green("▶ Playing")
	case "pause":
		return Yellow("❚❚ Paused")
	case "stop":
		return Yellow("■ Stopped")
	default:
		return Red("○ Not Connected")
	}
}

// TrackLine formats one track as "Artist - Title" with a dim duration,
// falling back to the file path for untagged and remote tracks.
func TrackLine(t *protocol.Track) string {
	if t == nil {
		return Dim("(none)")
	}
	name := t.File
	if t.Title != "" {
		name = t.Title
		if t.Artist != "" {
			name = t.Artist + " - " + name
		}
	}
	if t.Time.HasTotal {
		return fmt.Sprintf("%s %s", name, Dim("("+FormatDuration(t.Time.Total)+")"))
	}
	return name
}

// FormatDuration renders seconds as m:ss or h:mm:ss.
func FormatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PrintStatus prints the playback status and the current track.
func PrintStatus(state string, track *protocol.Track, status *protocol.Record) {
	fmt.Fprintf(Output, "%s %s\n", Bold("State:"), StateBadge(state))
	fmt.Fprintf(Output, "%s %s\n", Bold("Track:"), TrackLine(track))

	if status == nil {
		return
	}
	if v, ok := status.Get("time"); ok {
		if tp, ok := v.(protocol.TimePair); ok && tp.HasElapsed && tp.HasTotal {
			fmt.Fprintf(Output, "%s %s / %s\n", Bold("Time:"),
				FormatDuration(tp.Elapsed), FormatDuration(tp.Total))
		}
	}
	if v, ok := status.Get("volume"); ok {
		if volume, ok := v.(int); ok && volume >= 0 {
			fmt.Fprintf(Output, "%s %d%%\n", Bold("Volume:"), volume)
		}
	}
	if v, ok := status.Get("error"); ok {
		fmt.Fprintf(Output, "%s %s\n", Bold("Error:"), Red(v))
	}
}

// PrintTrackList prints a numbered track list, marking the current
// position.
func PrintTrackList(tracks []*protocol.Track, current int) {
	if len(tracks) == 0 {
		fmt.Fprintln(Output, "Queue is empty.")
		return
	}
	for i, t := range tracks {
		marker := "  "
		line := TrackLine(t)
		if i == current {
			marker = Green("▶ ")
			line = Bold(line)
		}
		fmt.Fprintf(Output, "%s%s %s\n", marker, Dim(fmt.Sprintf("%3d", i)), line)
	}
}

// PrintPlaylists prints the stored playlists with modification times.
func PrintPlaylists(playlists []*mpd.Playlist) {
	if len(playlists) == 0 {
		fmt.Fprintln(Output, "No stored playlists.")
		return
	}
	fmt.Fprintln(Output, Bold("Stored playlists:"))
	for _, p := range playlists {
		if p.LastModified.IsZero() {
			fmt.Fprintf(Output, "  %s\n", Cyan(p.Name))
			continue
		}
		fmt.Fprintf(Output, "  %s %s\n", Cyan(p.Name),
			Dim(p.LastModified.Format("2006-01-02 15:04")))
	}
}

// PrintOutputs prints the daemon's audio outputs.
func PrintOutputs(outputs []mpd.Output) {
	if len(outputs) == 0 {
		fmt.Fprintln(Output, "No outputs.")
		return
	}
	for _, out := range outputs {
		badge := Red("off")
		if out.Enabled {
			badge = Green("on")
		}
		fmt.Fprintf(Output, "  %s %s %s\n", Dim(fmt.Sprintf("%d", out.ID)), out.Name, badge)
	}
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}
