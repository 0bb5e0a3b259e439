package ghelper

import (
	"townpuzzle/src/logx"
	"townpuzzle/ui/gui/ghelper/gfont"
	"townpuzzle/ui/gui/ghelper/gtiles"
)

type GUIAssetsWorker struct {
	fonts *gfont.Fonts
	tiles *gtiles.TileSet
	log   logx.Logger
}

// NewGUIAssetsWorker loads fonts and slices the map picture. Neither
// can fail the game: both fall back to generated stand-ins.
func NewGUIAssetsWorker(imagePath string, tileSize, cols, rows int, log logx.Logger) *GUIAssetsWorker {
	return &GUIAssetsWorker{
		fonts: gfont.LoadFonts("assets/fonts", log),
		tiles: gtiles.Load(log, imagePath, tileSize, cols, rows),
		log:   log,
	}
}

// ReloadTiles re-slices after the map picture or grid changed.
func (aw *GUIAssetsWorker) ReloadTiles(imagePath string, tileSize, cols, rows int) {
	aw.tiles = gtiles.Load(aw.log, imagePath, tileSize, cols, rows)
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Tiles() *gtiles.TileSet {
	return aw.tiles
}
