// Package names resolves the content hashes of a .hed header back to the
// file names they were computed from.
package names

import (
	"bufio"
	"crypto/md5"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed resources/*.txt
var resources embed.FS

// Hash is the digest an archive stores for a file name.
func Hash(name string) [md5.Size]byte {
	return md5.Sum([]byte(strings.TrimSpace(name)))
}

// Map is a hash to file name lookup.
type Map struct {
	names map[[md5.Size]byte]string
}

func New() *Map {
	return &Map{names: make(map[[md5.Size]byte]string)}
}

// Add registers a candidate name. Empty names are ignored.
func (m *Map) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	m.names[Hash(name)] = name
}

// Lookup returns the known name for hash, or "<hexhash>.raw".
func (m *Map) Lookup(hash [md5.Size]byte) string {
	if name, ok := m.names[hash]; ok {
		return name
	}
	return hex.EncodeToString(hash[:]) + ".raw"
}

// Resolve reports whether the hash belongs to a known name.
func (m *Map) Resolve(hash [md5.Size]byte) (string, bool) {
	name, ok := m.names[hash]
	return name, ok
}

func (m *Map) Len() int { return len(m.names) }

// Default builds the map from every source: enumerated names, the static
// list and the bundled master lists with their derived variants.
func Default() (*Map, error) {
	m := New()

	for _, name := range Enumerate() {
		m.Add(name)
	}
	for _, name := range static {
		m.Add(name)
	}
	if err := m.addResources(resources); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Map) addResources(fsys fs.FS) error {
	files, err := fs.Glob(fsys, "resources/*.txt")
	if err != nil {
		return err
	}

	for _, path := range files {
		f, err := fsys.Open(path)
		if err != nil {
			return fmt.Errorf("open name list %s: %w", path, err)
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			name := strings.TrimSpace(scanner.Text())
			m.Add(name)
			for _, derived := range Derive(name) {
				m.Add(derived)
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return fmt.Errorf("read name list %s: %w", path, err)
		}
	}

	return nil
}
