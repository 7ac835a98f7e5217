package main

import (
	"github.com/askoglund/mpdlink/internal/ui"
)

type QueueCmd struct {
	List    QueueListCmd    `cmd:"" default:"1" help:"Show the play queue"`
	Add     QueueAddCmd     `cmd:"" help:"Append a URI to the queue"`
	Del     QueueDelCmd     `cmd:"" help:"Remove a song from the queue"`
	Move    QueueMoveCmd    `cmd:"" help:"Move a song within the queue"`
	Shuffle QueueShuffleCmd `cmd:"" help:"Shuffle the queue"`
	Clear   QueueClearCmd   `cmd:"" help:"Empty the queue"`
}

type QueueListCmd struct{}

func (c *QueueListCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	tracks, err := client.Queue()
	if err != nil {
		return mapCommandError(err)
	}

	current := -1
	if status, err := client.Status(); err == nil && status != nil {
		if v, ok := status.Get("song"); ok {
			if pos, ok := v.(int); ok {
				current = pos
			}
		}
	}
	ui.PrintTrackList(tracks, current)
	return nil
}

type QueueAddCmd struct {
	URI string `arg:"" help:"File, directory, or stream URL"`
}

func (c *QueueAddCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	if err := client.Add(c.URI); err != nil {
		return mapCommandError(err)
	}
	ui.PrintSuccess("Added " + c.URI)
	return nil
}

type QueueDelCmd struct {
	Pos int `arg:"" help:"Queue position to remove"`
}

func (c *QueueDelCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Delete(c.Pos))
}

type QueueMoveCmd struct {
	From int `arg:"" help:"Queue position to move"`
	To   int `arg:"" help:"Destination position"`
}

func (c *QueueMoveCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Move(c.From, c.To))
}

type QueueShuffleCmd struct{}

func (c *QueueShuffleCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Shuffle())
}

type QueueClearCmd struct{}

func (c *QueueClearCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	if err := client.Clear(); err != nil {
		return mapCommandError(err)
	}
	ui.PrintSuccess("Queue cleared")
	return nil
}
