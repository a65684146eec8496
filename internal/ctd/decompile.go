package ctd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"khtools/internal/potext"
)

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Decompile splits the container at path into <stem>.meta, holding every
// structural field, and <stem>.po with one entry per message.
func Decompile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	meta, err := f.marshalMeta()
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	if err := os.WriteFile(stem(path)+".meta", meta, 0644); err != nil {
		return err
	}

	ref := filepath.Base(path)
	entries := make([]potext.Entry, len(f.Texts))
	for i, text := range f.Texts {
		entries[i] = potext.Entry{
			Context:   potext.IndexContext(i),
			Source:    text,
			Reference: ref,
		}
	}
	if err := potext.Save(stem(path)+".po", entries); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"file":     path,
		"version":  f.Version,
		"messages": len(f.Messages),
		"layouts":  len(f.Layouts),
	}).Info("decompiled")
	return nil
}

// Compile rebuilds <stem>.ctd from <stem>.meta and <stem>.po. A message
// takes its translation when the catalog has one and its source text
// otherwise.
func Compile(path string) error {
	metaPath := stem(path) + ".meta"
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return err
	}
	f, err := unmarshalMeta(data)
	if err != nil {
		return fmt.Errorf("JSON parsing error in %s: %w", metaPath, err)
	}

	entries, err := potext.Load(stem(path) + ".po")
	if err != nil {
		return err
	}
	f.Texts, err = potext.ByIndex(entries, len(f.Messages))
	if err != nil {
		return fmt.Errorf("%s: %w", stem(path)+".po", err)
	}

	out, err := f.Encode()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(stem(path)+".ctd", out, 0644); err != nil {
		return err
	}

	log.WithFields(log.Fields{"file": stem(path) + ".ctd", "size": len(out)}).Info("compiled")
	return nil
}
