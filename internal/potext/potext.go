// Package potext reads and writes the gettext catalogs translators edit.
package potext

import (
	"fmt"
	"os"
	"strconv"

	"github.com/chai2010/gettext-go/po"
)

// Entry is one translatable string. Reference names the binary file the
// string came from.
type Entry struct {
	Context     string
	Source      string
	Translation string
	Reference   string
}

// Text is what a compiler should write back: the translation when there is
// one, the source string otherwise.
func (e Entry) Text() string {
	if e.Translation != "" {
		return e.Translation
	}
	return e.Source
}

// Save writes entries to path in order. Entries with an empty source are
// left out: a catalog cannot hold an empty msgid, and ByIndex restores them.
func Save(path string, entries []Entry) error {
	file := &po.File{
		MimeHeader: po.Header{
			MimeVersion:             "1.0",
			ContentType:             "text/plain; charset=UTF-8",
			ContentTransferEncoding: "8bit",
			XGenerator:              "khtools",
		},
	}
	for i, e := range entries {
		if e.Source == "" {
			continue
		}
		msg := po.Message{
			MsgContext: e.Context,
			MsgId:      e.Source,
			MsgStr:     e.Translation,
		}
		// the writer orders messages by reference, so the position goes there
		if e.Reference != "" {
			msg.ReferenceFile = []string{e.Reference}
			msg.ReferenceLine = []int{i + 1}
		}
		file.Messages = append(file.Messages, msg)
	}

	if err := os.WriteFile(path, file.Data(), 0644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}

// Load reads every entry of the catalog at path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	file, err := po.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(file.Messages))
	for _, msg := range file.Messages {
		e := Entry{
			Context:     msg.MsgContext,
			Source:      msg.MsgId,
			Translation: msg.MsgStr,
		}
		if len(msg.ReferenceFile) > 0 {
			e.Reference = msg.ReferenceFile[0]
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// IndexContext is the context used for positional entries.
func IndexContext(i int) string {
	return strconv.Itoa(i)
}

// ByIndex places context-indexed entries back into a slice of n strings.
// Positions without an entry stay empty, which is how empty source strings
// come back.
func ByIndex(entries []Entry, n int) ([]string, error) {
	out := make([]string, n)
	for _, e := range entries {
		i, err := strconv.Atoi(e.Context)
		if err != nil {
			return nil, fmt.Errorf("entry %q: context %q is not an index", e.Source, e.Context)
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("entry %q: index %d out of range [0, %d)", e.Source, i, n)
		}
		out[i] = e.Text()
	}
	return out, nil
}
