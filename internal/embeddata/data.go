package embeddata

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed about.md layouts/*.yaml
var embeddedFS embed.FS

const layoutDir = "layouts"

// FS returns the embedded filesystem with access to about.md and the layouts.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadLayout returns the YAML of the named built-in layout.
func ReadLayout(name string) ([]byte, error) {
	return embeddedFS.ReadFile(path.Join(layoutDir, name+".yaml"))
}

// LayoutNames returns the built-in layout names, sorted.
func LayoutNames() ([]string, error) {
	entries, err := embeddedFS.ReadDir(layoutDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}
