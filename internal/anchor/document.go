// Package anchor models the Anchor.toml configuration document and the
// rewrites applied when retargeting a project to a Sonic network.
package anchor

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

const (
	sectionProvider = "provider"
	sectionPrograms = "programs"
	keyCluster      = "cluster"
	keyLocalnet     = "localnet"
)

// Document is the in-memory Anchor.toml content. Sections and keys the
// transformer does not understand are kept verbatim and round-trip through
// Parse and Marshal unchanged.
type Document struct {
	root map[string]any
}

// Parse decodes TOML bytes into a Document.
func Parse(data []byte) (*Document, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if root == nil {
		root = map[string]any{}
	}
	return &Document{root: root}, nil
}

// Marshal serializes the document back to TOML bytes.
func (d *Document) Marshal() ([]byte, error) {
	out, err := toml.Marshal(d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize TOML: %w", err)
	}
	return out, nil
}

// table returns the named top-level section if it exists and is a table.
func (d *Document) table(name string) (map[string]any, bool) {
	v, ok := d.root[name]
	if !ok {
		return nil, false
	}
	t, ok := v.(map[string]any)
	return t, ok
}
