package main

import (
	"github.com/askoglund/mpdlink/internal/ui"
)

type PlaylistCmd struct {
	List   PlaylistListCmd   `cmd:"" default:"1" help:"List stored playlists"`
	Show   PlaylistShowCmd   `cmd:"" help:"Show a playlist's songs"`
	Load   PlaylistLoadCmd   `cmd:"" help:"Append a playlist to the queue"`
	Save   PlaylistSaveCmd   `cmd:"" help:"Save the queue as a playlist"`
	Rename PlaylistRenameCmd `cmd:"" help:"Rename a playlist"`
	Rm     PlaylistRmCmd     `cmd:"" help:"Delete a playlist"`
}

type PlaylistListCmd struct{}

func (c *PlaylistListCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	playlists, err := client.Playlists()
	if err != nil {
		return mapCommandError(err)
	}
	ui.PrintPlaylists(playlists)
	return nil
}

type PlaylistShowCmd struct {
	Name string `arg:"" predictor:"playlist" help:"Playlist name"`
}

func (c *PlaylistShowCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	tracks, err := client.StoredPlaylist(c.Name).Songs()
	if err != nil {
		return mapCommandError(err)
	}
	ui.PrintTrackList(tracks, -1)
	return nil
}

type PlaylistLoadCmd struct {
	Name string `arg:"" predictor:"playlist" help:"Playlist name"`
}

func (c *PlaylistLoadCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	if err := client.StoredPlaylist(c.Name).Load(); err != nil {
		return mapCommandError(err)
	}
	ui.PrintSuccess("Loaded " + c.Name)
	return nil
}

type PlaylistSaveCmd struct {
	Name string `arg:"" help:"Name for the new playlist"`
}

func (c *PlaylistSaveCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	if _, err := client.SaveQueue(c.Name); err != nil {
		return mapCommandError(err)
	}
	ui.PrintSuccess("Saved queue as " + c.Name)
	return nil
}

type PlaylistRenameCmd struct {
	Name    string `arg:"" predictor:"playlist" help:"Playlist name"`
	NewName string `arg:"" help:"New playlist name"`
}

func (c *PlaylistRenameCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.StoredPlaylist(c.Name).Rename(c.NewName))
}

type PlaylistRmCmd struct {
	Name string `arg:"" predictor:"playlist" help:"Playlist name"`
}

func (c *PlaylistRmCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.StoredPlaylist(c.Name).Destroy())
}
