package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay modes for LoadFile.
const (
	ModeMerge   = "merge"
	ModeReplace = "replace"
)

// Overlay is the on-disk shape of a catalog file.
type Overlay struct {
	Mode       string   `yaml:"mode"`
	Tags       *Dataset `yaml:"html"`
	Properties *Dataset `yaml:"css"`
}

// ParseOverlay decodes a YAML overlay.
func ParseOverlay(data []byte) (*Overlay, error) {
	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parsing catalog overlay: %w", err)
	}
	if ov.Mode == "" {
		ov.Mode = ModeMerge
	}
	if ov.Mode != ModeMerge && ov.Mode != ModeReplace {
		return nil, fmt.Errorf("unknown catalog mode %q (want %s or %s)", ov.Mode, ModeMerge, ModeReplace)
	}
	return &ov, nil
}

// LoadFile reads an overlay file and applies it. The mode argument overrides
// the file's own mode when non-empty.
func (c *Catalog) LoadFile(path, mode string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	ov, err := ParseOverlay(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if mode != "" {
		ov.Mode = mode
	}

	c.Apply(ov)
	return nil
}

// Apply merges or replaces each dataset present in the overlay.
func (c *Catalog) Apply(ov *Overlay) {
	apply := func(kind Kind, ds *Dataset) {
		if ds == nil {
			return
		}
		if ds.Entries == nil {
			ds.Entries = make(map[string]Entry)
		}
		if ov.Mode == ModeReplace {
			c.Replace(kind, *ds)
			return
		}
		c.Merge(kind, *ds)
	}

	apply(KindTag, ov.Tags)
	apply(KindProperty, ov.Properties)
}

// Reload rebuilds both datasets from the built-in data plus the overlay at
// path. The file is parsed before anything changes, so a broken file leaves
// the catalog as it was.
func (c *Catalog) Reload(path, mode string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	ov, err := ParseOverlay(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if mode != "" {
		ov.Mode = mode
	}

	rebuild := func(kind Kind, ds *Dataset) {
		base := BuiltinDataset(kind)
		switch {
		case ds == nil:
		case ov.Mode == ModeReplace:
			base = *ds
		default:
			base = mergeDatasets(base, *ds)
		}
		if base.Entries == nil {
			base.Entries = make(map[string]Entry)
		}
		c.Replace(kind, base)
	}

	rebuild(KindTag, ov.Tags)
	rebuild(KindProperty, ov.Properties)
	return nil
}
