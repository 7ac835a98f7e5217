package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/askoglund/mpdlink/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
)

type CLI struct {
	Status StatusCmd `cmd:"" help:"Show playback status and the current track"`

	Play   PlayCmd   `cmd:"" help:"Start playback"`
	Pause  PauseCmd  `cmd:"" help:"Pause playback"`
	Toggle ToggleCmd `cmd:"" help:"Toggle between play and pause"`
	Stop   StopCmd   `cmd:"" help:"Stop playback"`
	Next   NextCmd   `cmd:"" help:"Play the next queued song"`
	Prev   PrevCmd   `cmd:"" help:"Play the previous queued song"`
	Seek   SeekCmd   `cmd:"" help:"Seek within the current song"`
	Volume VolumeCmd `cmd:"" help:"Set the mixer volume"`

	Queue    QueueCmd    `cmd:"" help:"Manage the play queue"`
	Playlist PlaylistCmd `cmd:"" help:"Manage stored playlists"`
	Search   SearchCmd   `cmd:"" help:"Search the music database"`
	Update   UpdateCmd   `cmd:"" help:"Update the music database"`
	Outputs  OutputsCmd  `cmd:"" help:"Manage audio outputs"`

	Watch  WatchCmd  `cmd:"" help:"Follow status changes as they happen"`
	Bridge BridgeCmd `cmd:"" help:"Serve status changes over WebSocket"`

	Version            VersionCmd                   `cmd:"" help:"Show version"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("mpdlink"),
		kong.Description("Control a Music Player Daemon over its line protocol"),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("playlist", playlistPredictor()),
	)

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := kctx.Run(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				ui.PrintError(exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
