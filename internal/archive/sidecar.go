package archive

import (
	"encoding/json"
	"fmt"
	"os"
)

// Sidecar records how an extracted asset was stored. It lives next to the
// asset as "<file>.json".
type Sidecar struct {
	Encrypt    bool `json:"encrypt"`
	Compress   bool `json:"compress"`
	Remastered int  `json:"remastered,omitempty"`
}

func sidecarPath(asset string) string {
	return asset + ".json"
}

func saveSidecar(asset string, s Sidecar) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	return os.WriteFile(sidecarPath(asset), data, 0644)
}

func loadSidecar(asset string) (Sidecar, error) {
	var s Sidecar
	data, err := os.ReadFile(sidecarPath(asset))
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("JSON parsing error in %s: %w", sidecarPath(asset), err)
	}
	return s, nil
}
