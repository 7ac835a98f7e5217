package main

import "github.com/askoglund/mpdlink/internal/ui"

type StatusCmd struct{}

func (c *StatusCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	status, err := client.Status()
	if err != nil {
		return mapCommandError(err)
	}
	track, err := client.CurrentSong()
	if err != nil {
		return mapCommandError(err)
	}

	state := ""
	if v, ok := status.Get("state"); ok {
		state, _ = v.(string)
	}
	ui.PrintStatus(state, track, status)
	return nil
}
