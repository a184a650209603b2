package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-mclib/limbo/internal/identifier"
	"github.com/go-mclib/limbo/internal/nbt"
)

// LoadFromResourcePath populates every already-registered key in m by
// reading its data files from resourcePath, matching vanilla's generated
// resource tree: one JSON file per entry under "<namespace>/<thing>/", one
// JSON file per tag under "<namespace>/tags/<thing>/". Files load in
// filename order, assigning sequential protocol ids starting at 0. A
// registry directory that doesn't exist on disk is left empty rather than
// failing the whole load, so partial resource trees (this build ships no
// generated vanilla data; see DESIGN.md) still produce a usable Manager.
func (m *Manager) LoadFromResourcePath(resourcePath string) error {
	for key, reg := range m.registries {
		if err := loadEntries(reg, resourcePath, key); err != nil {
			return err
		}
		if err := loadTags(reg, resourcePath, key); err != nil {
			return err
		}
	}
	return nil
}

func loadEntries(reg *Registry, resourcePath string, key Key) error {
	dir := filepath.Join(resourcePath, identifier.DefaultNamespace, key.Thing())
	names, err := sortedJSONFiles(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("registry: read %s: %w", name, err)
		}
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("registry: parse %s: %w", name, err)
		}
		tag, err := nbt.FromJSON(raw, false)
		if err != nil {
			return fmt.Errorf("registry: convert %s to nbt: %w", name, err)
		}

		stem := name[:len(name)-len(filepath.Ext(name))]
		ident, err := identifier.Vanilla(stem)
		if err != nil {
			return fmt.Errorf("registry: bad entry name %s: %w", name, err)
		}
		reg.Add(ident, tag)
	}
	return nil
}

func loadTags(reg *Registry, resourcePath string, key Key) error {
	dir := filepath.Join(resourcePath, identifier.DefaultNamespace, key.TagPath())
	names, err := sortedJSONFiles(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("registry: read tag %s: %w", name, err)
		}
		var body struct {
			Values []string `json:"values"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return fmt.Errorf("registry: parse tag %s: %w", name, err)
		}

		values := make([]identifier.Identifier, 0, len(body.Values))
		for _, v := range body.Values {
			ident, err := identifier.Parse(v)
			if err != nil {
				return fmt.Errorf("registry: tag %s value %q: %w", name, v, err)
			}
			values = append(values, ident)
		}

		stem := name[:len(name)-len(filepath.Ext(name))]
		tagIdent, err := identifier.Vanilla(stem)
		if err != nil {
			return fmt.Errorf("registry: bad tag name %s: %w", name, err)
		}
		reg.AddTag(tagIdent, values)
	}
	return nil
}

func sortedJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
