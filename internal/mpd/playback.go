package mpd

import "fmt"

// Play starts playback at the given queue position. A negative position
// resumes the current song.
func (c *Client) Play(pos int) error {
	if pos < 0 {
		return c.commandOK("play")
	}
	return c.commandOK("play", pos)
}

// PlayID starts playback of the song with the given queue id.
func (c *Client) PlayID(id int) error {
	return c.commandOK("playid", id)
}

// Pause sets the pause state.
func (c *Client) Pause(on bool) error {
	return c.commandOK("pause", on)
}

// Toggle pauses when playing and plays otherwise.
func (c *Client) Toggle() error {
	status, err := c.Status()
	if err != nil {
		return err
	}
	if state, _ := status.Get("state"); state == "play" {
		return c.Pause(true)
	}
	return c.Play(-1)
}

// Stop stops playback.
func (c *Client) Stop() error {
	return c.commandOK("stop")
}

// Next advances to the next queued song.
func (c *Client) Next() error {
	return c.commandOK("next")
}

// Previous goes back to the previous queued song.
func (c *Client) Previous() error {
	return c.commandOK("previous")
}

// SeekTo seeks within the song at the given queue position.
func (c *Client) SeekTo(pos, seconds int) error {
	return c.commandOK("seek", pos, seconds)
}

// SeekID seeks within the song with the given queue id.
func (c *Client) SeekID(id, seconds int) error {
	return c.commandOK("seekid", id, seconds)
}

// SeekCur seeks within the current song.
func (c *Client) SeekCur(seconds int) error {
	return c.commandOK("seekcur", seconds)
}

// SetVolume sets the mixer volume (0-100).
func (c *Client) SetVolume(volume int) error {
	if volume < 0 || volume > 100 {
		return fmt.Errorf("volume %d out of range 0-100", volume)
	}
	return c.commandOK("setvol", volume)
}

// Volume reads the mixer volume from the status record. The daemon
// reports -1 when no mixer is available.
func (c *Client) Volume() (int, error) {
	status, err := c.Status()
	if err != nil {
		return 0, err
	}
	v, _ := status.Get("volume")
	n, _ := v.(int)
	return n, nil
}

// Repeat sets repeat mode.
func (c *Client) Repeat(on bool) error {
	return c.commandOK("repeat", on)
}

// Random sets random mode.
func (c *Client) Random(on bool) error {
	return c.commandOK("random", on)
}

// Single sets single mode.
func (c *Client) Single(on bool) error {
	return c.commandOK("single", on)
}

// Consume sets consume mode.
func (c *Client) Consume(on bool) error {
	return c.commandOK("consume", on)
}

// Crossfade sets the crossfade duration in seconds.
func (c *Client) Crossfade(seconds int) error {
	return c.commandOK("crossfade", seconds)
}

// ReplayGainMode sets the replay gain mode (off, track, album, auto).
func (c *Client) ReplayGainMode(mode string) error {
	return c.commandOK("replay_gain_mode", mode)
}

// ReplayGainStatus returns the active replay gain mode.
func (c *Client) ReplayGainStatus() (string, error) {
	res, err := c.Command("replay_gain_status")
	if err != nil {
		return "", err
	}
	mode, _ := res.(string)
	return mode, nil
}
