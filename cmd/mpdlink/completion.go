package main

import (
	"strings"

	"github.com/posener/complete"
)

// playlistPredictor completes stored playlist names by asking the
// daemon. Completion must never block or fail loudly, so any error
// yields no suggestions.
func playlistPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		client, err := newClient()
		if err != nil {
			return nil
		}
		defer client.Disconnect()

		playlists, err := client.Playlists()
		if err != nil {
			return nil
		}

		results := make([]string, 0, len(playlists))
		for _, p := range playlists {
			if strings.HasPrefix(p.Name, args.Last) {
				results = append(results, p.Name)
			}
		}
		return results
	})
}
