package gtiles

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"

	"townpuzzle/src/logx"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// fallbackColors picks the flat fill of placeholder tile i by i % len.
var fallbackColors = []color.RGBA{
	{100, 140, 190, 255}, {80, 170, 100, 255}, {190, 130, 80, 255},
	{200, 80, 80, 255}, {170, 120, 200, 255}, {220, 100, 60, 255},
	{90, 160, 180, 255}, {160, 150, 100, 255}, {110, 110, 170, 255},
}

// TileSet is the tile source for one session: the picture sliced into
// cols*rows square tiles in row-major order, plus the full-size ghost
// reference. When the picture cannot be loaded both are generated
// placeholders and gameplay is unaffected.
type TileSet struct {
	tiles    []*ebiten.Image
	ghost    *ebiten.Image
	size     int
	fallback bool
}

// Load builds the TileSet for path. Load failure is non-fatal: it is
// logged as a warning and placeholder tiles of identical size and
// count are substituted.
func Load(log logx.Logger, path string, tileSize, cols, rows int) *TileSet {
	var full *image.RGBA
	fallback := false

	src, err := loadPicture(path)
	if err != nil {
		log.Warnf("map picture unavailable, using placeholder tiles: %v", err)
		full = placeholderGrid(tileSize, cols, rows)
		fallback = true
	} else {
		full = scaleToGrid(src, tileSize, cols, rows)
	}

	ts := &TileSet{
		ghost:    ebiten.NewImageFromImage(full),
		size:     tileSize,
		fallback: fallback,
	}
	for _, r := range cellRects(tileSize, cols, rows) {
		ts.tiles = append(ts.tiles, ebiten.NewImageFromImage(full.SubImage(r)))
	}
	return ts
}

// Tile returns the square tile of grid cell index (row-major).
func (ts *TileSet) Tile(index int) *ebiten.Image {
	return ts.tiles[index]
}

// Ghost is the full reconstructed picture; the caller applies opacity.
func (ts *TileSet) Ghost() *ebiten.Image {
	return ts.ghost
}

func (ts *TileSet) Size() int      { return ts.size }
func (ts *TileSet) Count() int     { return len(ts.tiles) }
func (ts *TileSet) Fallback() bool { return ts.fallback }

func loadPicture(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// scaleToGrid resizes src to exactly cover the cols*rows tile grid.
func scaleToGrid(src image.Image, tileSize, cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// cellRects lists the tile regions left to right, top to bottom.
func cellRects(tileSize, cols, rows int) []image.Rectangle {
	rects := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := col * tileSize
			y := row * tileSize
			rects = append(rects, image.Rect(x, y, x+tileSize, y+tileSize))
		}
	}
	return rects
}

// placeholderGrid renders the fallback picture: one flat colored cell
// per tile with its number, deterministic for a given grid.
func placeholderGrid(tileSize, cols, rows int) *image.RGBA {
	dc := gg.NewContext(cols*tileSize, rows*tileSize)
	for i, r := range cellRects(tileSize, cols, rows) {
		c := fallbackColors[i%len(fallbackColors)]
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 255)
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(tileSize), float64(tileSize))
		dc.Fill()

		dc.SetRGB255(255, 255, 255)
		cx := float64(r.Min.X) + float64(tileSize)/2
		cy := float64(r.Min.Y) + float64(tileSize)/2
		dc.DrawStringAnchored(strconv.Itoa(i+1), cx, cy, 0.5, 0.5)
	}
	return dc.Image().(*image.RGBA)
}
