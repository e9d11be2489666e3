package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/voidscrubbers/tilemap"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

const mapsDir = "maps"

// MapNames lists the embedded TMX maps by stem name.
func MapNames() ([]string, error) {
	matches, err := fs.Glob(mapFS, mapsDir+"/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", mapsDir, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadMap parses the embedded map called name.
func LoadMap(name string, chunkTiles int) (*tilemap.TiledSource, error) {
	return tilemap.LoadTiledSource(mapFS, path.Join(mapsDir, name+".tmx"), chunkTiles)
}
