// Package exia dumps the English subtitle lines of the movie schedule XML
// files to a translation catalog.
package exia

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"golang.org/x/text/encoding/japanese"

	"khtools/internal/binfmt"
	"khtools/internal/potext"
)

const (
	textMovieCategory = "SCHEDULE_CATEGORY_TEXT_MOVIE"
	english           = "LANGUAGE_EN"
)

type document struct {
	Categories []category `xml:"SCHEDULE>SCHEDULE_CATEGORY"`
}

type category struct {
	Type   string `xml:"type,attr"`
	Params []struct {
		Language string `xml:"Language,attr"`
	} `xml:"PARAM"`
	Movie struct {
		Lines []struct {
			Text string `xml:"Text,attr"`
		} `xml:",any"`
	} `xml:"SCHEDULE_TEXT_MOVIE>TEXT_MOVIE"`
}

func (c category) english() bool {
	for _, p := range c.Params {
		if p.Language == english {
			return true
		}
	}
	return false
}

// Lines returns the subtitle lines of every English text movie category in
// a Shift-JIS schedule document, in document order.
func Lines(data []byte) ([]string, error) {
	for len(data) > 0 && data[len(data)-1] == binfmt.Filler {
		data = data[:len(data)-1]
	}
	utf8, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode Shift-JIS: %w", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(utf8))
	// already decoded above, whatever the prolog declares
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}

	var lines []string
	for _, c := range doc.Categories {
		if c.Type != textMovieCategory || !c.english() {
			continue
		}
		for _, l := range c.Movie.Lines {
			lines = append(lines, l.Text)
		}
	}
	return lines, nil
}

// Extract writes the subtitle lines of the schedule at path to <stem>.po.
// Documents without English subtitles produce no catalog.
func Extract(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines, err := Lines(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(lines) == 0 {
		log.WithField("file", path).Debug("no English subtitles, nothing written")
		return nil
	}

	ref := filepath.Base(path)
	entries := make([]potext.Entry, len(lines))
	for i, l := range lines {
		entries[i] = potext.Entry{Context: potext.IndexContext(i), Source: l, Reference: ref}
	}

	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".po"
	if err := potext.Save(out, entries); err != nil {
		return err
	}

	log.WithFields(log.Fields{"file": path, "lines": len(lines)}).Info("schedule extracted")
	return nil
}
