package presets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//go:embed builtin/*
var builtinFS embed.FS

// Loader loads presets from a file system root.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// Builtin returns a loader over the presets compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// builtin/ is embedded above, Sub cannot fail on it
		panic(err)
	}
	return &Loader{fsys: sub, Root: "builtin"}
}

// LoadAll recursively scans and loads all preset files.
// Invalid files are skipped. Returns presets sorted by ID.
func (l *Loader) LoadAll() ([]Preset, error) {
	var out []Preset

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("presets: walking %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single preset file relative to the loader root.
func (l *Loader) LoadFile(path string) (Preset, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Preset{}, fmt.Errorf("presets: reading %s: %w", path, err)
	}

	p, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Preset{}, fmt.Errorf("presets: parsing %s: %w", path, err)
	}
	if p.ID == "" {
		return Preset{}, fmt.Errorf("presets: %s: missing id", path)
	}
	p.FilePath = filepath.Join(l.Root, path)
	return p, nil
}

// LoadByID loads a specific preset by ID.
func (l *Loader) LoadByID(id string) (Preset, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("presets: not found: %s", id)
}

// Find looks id up in dir first (when set), then among the built-ins.
func Find(id, dir string) (Preset, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			if p, err := NewLoader(dir).LoadByID(id); err == nil {
				return p, nil
			}
		}
	}
	return Builtin().LoadByID(id)
}

// All merges the presets in dir (when present) with the built-ins.
// A file in dir replaces a built-in with the same ID.
func All(dir string) ([]Preset, error) {
	all, err := Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return all, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return all, nil
	}

	user, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	for _, p := range user {
		idx := slices.IndexFunc(all, func(b Preset) bool { return b.ID == p.ID })
		if idx >= 0 {
			all[idx] = p
		} else {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
