package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:world
	worldFS embed.FS

	//go:embed all:locales
	localeFS embed.FS
)

// TitleMap is the tile map rendered behind the title menus
const TitleMap = "title.tmx"

// LoadWorldMap parses a Tiled map from the embedded world directory
func LoadWorldMap(name string) (*tiled.Map, error) {
	m, err := tiled.LoadFile(path.Join("world", name), tiled.WithFileSystem(worldFS))
	if err != nil {
		return nil, fmt.Errorf("load world map %s: %w", name, err)
	}
	return m, nil
}

// Locales returns the embedded .po catalogues rooted at the locales directory
func Locales() fs.FS {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}
