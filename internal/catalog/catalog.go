// Package catalog provides the static, read-only list of project tracks.
//
// The default catalog is embedded; a replacement file may be supplied at
// startup. A loaded Catalog is never mutated.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ShayCichocki/oulab/pkg/models"
)

//go:embed default.yaml
var defaultCatalog []byte

// ErrUnknownCategory is returned for categories outside models.Categories().
var ErrUnknownCategory = errors.New("unknown category")

// Catalog holds tracks grouped by category.
type Catalog struct {
	tracks map[models.Category][]models.Track
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a catalog. Track values are clamped to [0,100].
func Load(r io.Reader) (*Catalog, error) {
	var raw map[string][]models.Track
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{tracks: make(map[models.Category][]models.Track, len(raw))}
	for name, tracks := range raw {
		category := models.Category(name)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}

		out := make([]models.Track, 0, len(tracks))
		for i, t := range tracks {
			if strings.TrimSpace(t.Label) == "" {
				return nil, fmt.Errorf("%s[%d]: label is required", name, i)
			}
			if !t.Status.Valid() {
				return nil, fmt.Errorf("%s[%d] %q: invalid status %q", name, i, t.Label, t.Status)
			}
			t.Value = models.Clamp(int(t.Value))
			out = append(out, t)
		}
		c.tracks[category] = out
	}

	return c, nil
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []models.Category {
	return models.Categories()
}

// Tracks returns a copy of the tracks in category.
func (c *Catalog) Tracks(category models.Category) ([]models.Track, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	tracks := c.tracks[category]
	out := make([]models.Track, len(tracks))
	copy(out, tracks)
	return out, nil
}

// All returns every track in display order.
func (c *Catalog) All() []models.Track {
	var out []models.Track
	for _, category := range c.Categories() {
		out = append(out, c.tracks[category]...)
	}
	return out
}

// Len returns the total number of tracks.
func (c *Catalog) Len() int {
	n := 0
	for _, tracks := range c.tracks {
		n += len(tracks)
	}
	return n
}
