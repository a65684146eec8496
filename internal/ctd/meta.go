package ctd

import (
	"encoding/json"
	"fmt"

	"khtools/internal/binfmt"
)

type general struct {
	Version  uint32 `json:"version"`
	Unknown1 uint16 `json:"unknown_1"`
	Unknown2 uint16 `json:"unknown_2"`
	Unknown3 uint32 `json:"unknown_3"`
}

// metadata is the .meta document: everything but the texts.
type metadata struct {
	General  general                `json:"general"`
	Messages []binfmt.MessageHeader `json:"messages"`
	Layouts  json.RawMessage        `json:"layouts"`
}

func (f *File) marshalMeta() ([]byte, error) {
	layouts, err := json.Marshal(f.Layouts)
	if err != nil {
		return nil, err
	}
	m := metadata{
		General: general{
			Version:  f.Version,
			Unknown1: f.Unknown1,
			Unknown2: f.Unknown2,
			Unknown3: f.Unknown3,
		},
		Messages: f.Messages,
		Layouts:  layouts,
	}
	if m.Messages == nil {
		m.Messages = []binfmt.MessageHeader{}
	}
	return json.MarshalIndent(m, "", "  ")
}

func unmarshalMeta(data []byte) (*File, error) {
	var m metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	f := &File{
		Version:  m.General.Version,
		Unknown1: m.General.Unknown1,
		Unknown2: m.General.Unknown2,
		Unknown3: m.General.Unknown3,
		Messages: m.Messages,
	}
	if len(m.Layouts) == 0 || string(m.Layouts) == "null" {
		return f, nil
	}

	if f.Version == VersionV1 {
		var layouts []*binfmt.LayoutV1
		if err := json.Unmarshal(m.Layouts, &layouts); err != nil {
			return nil, fmt.Errorf("layouts: %w", err)
		}
		for _, l := range layouts {
			f.Layouts = append(f.Layouts, l)
		}
	} else {
		var layouts []*binfmt.LayoutGeneric
		if err := json.Unmarshal(m.Layouts, &layouts); err != nil {
			return nil, fmt.Errorf("layouts: %w", err)
		}
		for _, l := range layouts {
			f.Layouts = append(f.Layouts, l)
		}
	}
	return f, nil
}
