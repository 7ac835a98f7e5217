package mpd

// Output is one audio output of the daemon.
type Output struct {
	ID      int
	Name    string
	Enabled bool
}

// Outputs lists the daemon's audio outputs.
func (c *Client) Outputs() ([]Output, error) {
	recs, err := c.commandRecords("outputs")
	if err != nil {
		return nil, err
	}
	outputs := make([]Output, 0, len(recs))
	for _, rec := range recs {
		var out Output
		if v, ok := rec.Get("outputid"); ok {
			out.ID, _ = v.(int)
		}
		if v, ok := rec.Get("outputname"); ok {
			out.Name, _ = v.(string)
		}
		if v, ok := rec.Get("outputenabled"); ok {
			out.Enabled, _ = v.(bool)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// EnableOutput enables the output with the given id.
func (c *Client) EnableOutput(id int) error {
	return c.commandOK("enableoutput", id)
}

// DisableOutput disables the output with the given id.
func (c *Client) DisableOutput(id int) error {
	return c.commandOK("disableoutput", id)
}

// ToggleOutput flips the output with the given id.
func (c *Client) ToggleOutput(id int) error {
	return c.commandOK("toggleoutput", id)
}
