package main

import (
	"fmt"

	"github.com/askoglund/mpdlink/internal/protocol"
	"github.com/askoglund/mpdlink/internal/ui"
)

type SearchCmd struct {
	Exact bool     `short:"e" help:"Match tag values exactly instead of case-insensitively"`
	Terms []string `arg:"" help:"Alternating tag/value pairs, e.g. artist 'Miles Davis'"`
}

func (c *SearchCmd) Run() error {
	if len(c.Terms)%2 != 0 {
		return fmt.Errorf("search terms must be tag/value pairs")
	}
	query := make(protocol.Query, 0, len(c.Terms)/2)
	for i := 0; i < len(c.Terms); i += 2 {
		query = append(query, protocol.Term{Tag: c.Terms[i], Value: c.Terms[i+1]})
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	var tracks []*protocol.Track
	if c.Exact {
		tracks, err = client.Find(query)
	} else {
		tracks, err = client.Search(query)
	}
	if err != nil {
		return mapCommandError(err)
	}

	if len(tracks) == 0 {
		ui.PrintInfo("No matches.")
		return nil
	}
	ui.PrintTrackList(tracks, -1)
	return nil
}

type UpdateCmd struct {
	Path   string `arg:"" optional:"" help:"Database path to update (whole database when omitted)"`
	Rescan bool   `help:"Also rescan unmodified files"`
}

func (c *UpdateCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	var job int
	if c.Rescan {
		job, err = client.Rescan(c.Path)
	} else {
		job, err = client.Update(c.Path)
	}
	if err != nil {
		return mapCommandError(err)
	}
	ui.PrintSuccess(fmt.Sprintf("Update job %d started", job))
	return nil
}

type OutputsCmd struct {
	List    OutputsListCmd    `cmd:"" default:"1" help:"List audio outputs"`
	Enable  OutputsEnableCmd  `cmd:"" help:"Enable an output"`
	Disable OutputsDisableCmd `cmd:"" help:"Disable an output"`
	Toggle  OutputsToggleCmd  `cmd:"" help:"Toggle an output"`
}

type OutputsListCmd struct{}

func (c *OutputsListCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	outputs, err := client.Outputs()
	if err != nil {
		return mapCommandError(err)
	}
	ui.PrintOutputs(outputs)
	return nil
}

type OutputsEnableCmd struct {
	ID int `arg:"" help:"Output id"`
}

func (c *OutputsEnableCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.EnableOutput(c.ID))
}

type OutputsDisableCmd struct {
	ID int `arg:"" help:"Output id"`
}

func (c *OutputsDisableCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.DisableOutput(c.ID))
}

type OutputsToggleCmd struct {
	ID int `arg:"" help:"Output id"`
}

func (c *OutputsToggleCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.ToggleOutput(c.ID))
}
