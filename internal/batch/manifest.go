package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered texture in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Filter string `json:"filter"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Image  string `json:"image"`
}

// WriteManifest writes the successful results of a run as JSON.
func WriteManifest(path string, s Settings, results []Result) error {
	filterName := s.Kind.String()
	if s.Sheet {
		filterName = "sheet"
	}

	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Filter: filterName,
			Width:  r.Width,
			Height: r.Height,
			Image:  r.Image,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
