// Package archive extracts and repacks the .hed/.pkg package pairs of the
// PC re-release.
package archive

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"khtools/internal/binfmt"
)

// Paths returns the .hed and .pkg paths of the archive named by path. path
// may carry either extension or none.
func Paths(path string) (hed, pkg string) {
	base := path
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hed", ".pkg":
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return base + ".hed", base + ".pkg"
}

// within joins the slash-separated name under root. Absolute names and
// names that climb out of root are rejected.
func within(root, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	up := ".." + string(filepath.Separator)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, up) ||
		filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("%w: %q", binfmt.ErrUnsafePath, name)
	}
	return filepath.Join(root, clean), nil
}

// ReadHeader reads every record of a .hed file in disk order.
func ReadHeader(path string) ([]binfmt.HeaderEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)
	var entries []binfmt.HeaderEntry
	for r.Len() >= binfmt.HeaderEntrySize {
		var e binfmt.HeaderEntry
		if err := binfmt.Read(r, &e); err != nil {
			return nil, fmt.Errorf("read header entry %d: %w", len(entries), err)
		}
		entries = append(entries, e)
	}

	if consumed := len(data) - r.Len(); consumed != len(data) {
		return nil, fmt.Errorf("%w: %s: read 0x%X of 0x%X bytes",
			binfmt.ErrHeaderLengthMismatch, path, consumed, len(data))
	}
	return entries, nil
}
