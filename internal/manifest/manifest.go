// Package manifest records what a render run produced.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/gogpu/ggart"
)

// FileName is the manifest written into the output directory.
const FileName = "manifest.json"

// Entry describes one written file.
type Entry struct {
	Collection string `json:"collection"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Seed       uint64 `json:"seed"`
	Frames     int    `json:"frames,omitempty"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

// NewEntry fills an entry for d written to path.
func NewEntry(d ggart.Design, path string, width, height int, seed uint64, frames int, elapsed time.Duration) Entry {
	return Entry{
		Collection: d.Collection,
		Name:       d.Name,
		Title:      d.DisplayTitle(),
		Path:       filepath.ToSlash(path),
		Width:      width,
		Height:     height,
		Seed:       seed,
		Frames:     frames,
		ElapsedMS:  elapsed.Milliseconds(),
	}
}

// Write stores entries as a JSON array at path.
func Write(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := sonic.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	ggart.Logger().Info("wrote manifest", "path", path, "entries", len(entries))
	return nil
}

// Read parses a manifest written by Write.
func Read(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var entries []Entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return entries, nil
}
