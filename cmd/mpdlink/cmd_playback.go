package main

type PlayCmd struct {
	Pos int `arg:"" optional:"" default:"-1" help:"Queue position to play (resumes when omitted)"`
}

func (c *PlayCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Play(c.Pos))
}

type PauseCmd struct{}

func (c *PauseCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Pause(true))
}

type ToggleCmd struct{}

func (c *ToggleCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Toggle())
}

type StopCmd struct{}

func (c *StopCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Stop())
}

type NextCmd struct{}

func (c *NextCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Next())
}

type PrevCmd struct{}

func (c *PrevCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.Previous())
}

type SeekCmd struct {
	Seconds int `arg:"" help:"Absolute position in seconds within the current song"`
}

func (c *SeekCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.SeekCur(c.Seconds))
}

type VolumeCmd struct {
	Level int `arg:"" help:"Volume level 0-100"`
}

func (c *VolumeCmd) Run() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return mapCommandError(client.SetVolume(c.Level))
}
