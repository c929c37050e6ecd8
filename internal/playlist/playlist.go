// Package playlist enumerates asset directories and tracks which entry is
// current.
package playlist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Cursor is a position in a playlist of Len entries. The zero value is an
// empty playlist.
type Cursor struct {
	Index int
	Len   int
}

// Next moves to the following entry, wrapping to 0 after the last one.
// On an empty playlist it is a no-op.
func (c Cursor) Next() Cursor {
	if c.Len <= 0 {
		return c
	}
	c.Index++
	if c.Index >= c.Len || c.Index < 0 {
		c.Index = 0
	}
	return c
}

func (c Cursor) Valid() bool { return c.Len > 0 && c.Index >= 0 && c.Index < c.Len }

type Playlist struct {
	Files []string
}

// Scan lists the regular files in dir whose extension is in exts (case
// insensitive, with or without a leading dot), in directory listing order.
// A missing directory is not an error and yields an empty playlist.
func Scan(dir string, exts []string) (Playlist, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Playlist{}, nil
		}
		return Playlist{}, fmt.Errorf("scan %s: %w", dir, err)
	}

	allow := make(map[string]bool, len(exts))
	for _, e := range exts {
		allow[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	var p Playlist
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if allow[ext] {
			p.Files = append(p.Files, filepath.Join(dir, entry.Name()))
		}
	}
	return p, nil
}

func (p Playlist) Cursor() Cursor { return Cursor{Len: len(p.Files)} }

// Path returns the file under c, false when c does not point into p.
func (p Playlist) Path(c Cursor) (string, bool) {
	if c.Index < 0 || c.Index >= len(p.Files) {
		return "", false
	}
	return p.Files[c.Index], true
}

// Add appends path and returns a cursor on it.
func (p *Playlist) Add(path string) Cursor {
	p.Files = append(p.Files, path)
	return Cursor{Index: len(p.Files) - 1, Len: len(p.Files)}
}
