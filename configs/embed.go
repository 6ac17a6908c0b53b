package configs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed *.yaml
var embeddedCatalogues embed.FS

// Names returns the list of embedded YAML catalogue filenames.
func Names() []string {
	entries, err := fs.Glob(embeddedCatalogues, "*.yaml")
	if err != nil {
		return nil
	}
	sort.Strings(entries)
	return entries
}

// Load returns the embedded YAML catalogue by filename.
func Load(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("embedded catalogue name is empty")
	}
	data, err := fs.ReadFile(embeddedCatalogues, name)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogue %q: %w", name, err)
	}
	return data, nil
}
