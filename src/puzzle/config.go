package puzzle

// Config fixes the board and tray geometry for one session.
// All values are pixels in window coordinates.
type Config struct {
	Cols, Rows int

	TileSize int // board tile is TileSize x TileSize
	BoardX   int // left edge of the board grid
	BoardY   int // top edge of the board grid

	TrayX       int
	TrayY       int
	TrayW       int
	TrayH       int
	TrayCols    int
	TrayPad     int
	TrayHeaderH int // vertical space reserved for the tray label
}

func DefaultConfig() Config {
	return Config{
		Cols:        3,
		Rows:        3,
		TileSize:    160,
		BoardX:      350,
		BoardY:      (640 - 3*160) / 2,
		TrayX:       10,
		TrayY:       10,
		TrayW:       320,
		TrayH:       640 - 20,
		TrayCols:    2,
		TrayPad:     12,
		TrayHeaderH: 70,
	}
}

// LayoutConfig derives a Config for an arbitrary grid and window size,
// shrinking the tile size when the default 160px grid would not fit.
func LayoutConfig(cols, rows, winW, winH int) Config {
	c := DefaultConfig()
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	c.Cols = cols
	c.Rows = rows

	maxW := (winW - c.BoardX - 20) / cols
	maxH := (winH - 60) / rows
	if maxW < c.TileSize {
		c.TileSize = maxW
	}
	if maxH < c.TileSize {
		c.TileSize = maxH
	}
	c.BoardY = (winH - rows*c.TileSize) / 2
	c.TrayH = winH - 20
	return c
}

// TrayTileSize is the edge of one tray cell: the tray width split evenly
// across TrayCols columns with TrayPad gaps on both sides of every column.
func (c Config) TrayTileSize() int {
	return (c.TrayW - c.TrayPad*(c.TrayCols+1)) / c.TrayCols
}

// BoardRect is the rectangle covered by the slot grid.
func (c Config) BoardRect() Rect {
	return NewRect(c.BoardX, c.BoardY, c.Cols*c.TileSize, c.Rows*c.TileSize)
}
