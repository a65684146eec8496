package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

const ManifestName = "file_list.json"

// ManifestEntry maps an extracted file to the hash it had in the header.
type ManifestEntry struct {
	Path string
	Hash string
}

// Manifest lists the extracted files in archive order. It is stored as a
// JSON object whose key order is the archive order.
type Manifest []ManifestEntry

func (m Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range m {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(e.Path)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Hash)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":")
		buf.Write(value)
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func (m *Manifest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("manifest is not a JSON object")
	}

	var out Manifest
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var hash string
		if err := dec.Decode(&hash); err != nil {
			return fmt.Errorf("manifest entry %q: %w", key, err)
		}
		out = append(out, ManifestEntry{Path: key, Hash: hash})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}

// SaveManifest writes m to path.
func SaveManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadManifest reads the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("JSON parsing error in %s: %w", path, err)
	}
	return m, nil
}
