package puzzle

import (
	"math/rand"
	"time"

	"townpuzzle/src/logx"
)

// Piece is one draggable unit. Home is both the index of the matching
// slot and the index of the tile image sliced from the picture.
type Piece struct {
	Home   int
	Bounds Rect
	Placed bool
}

// Slot is one fixed board cell waiting for the piece with the same Home.
type Slot struct {
	Home   int
	Bounds Rect
	Filled bool
}

const (
	overlayAlphaCap = 200
	winTextDelay    = 300 * time.Millisecond
)

// Session owns the whole puzzle state for one run of the game: the
// piece/slot tables, the shuffled tray order, the drag state and win
// detection. It is mutated only by the event pass of the current frame.
type Session struct {
	cfg Config
	rng *rand.Rand
	log logx.Logger

	pieces []Piece
	slots  []Slot
	order  []int // display order: permutation of piece indices

	held       int // index of the dragged piece, -1 when none
	dragOffset Point

	complete   bool
	winElapsed time.Duration
}

// NewSession builds the piece and slot tables for cfg and deals the
// first game. rng drives the tray shuffle and is never reseeded.
func NewSession(cfg Config, rng *rand.Rand, log logx.Logger) *Session {
	n := cfg.Cols * cfg.Rows
	s := &Session{
		cfg:    cfg,
		rng:    rng,
		log:    log,
		pieces: make([]Piece, n),
		slots:  make([]Slot, n),
		order:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		col := i % cfg.Cols
		row := i / cfg.Cols
		s.pieces[i] = Piece{Home: i}
		s.slots[i] = Slot{
			Home: i,
			Bounds: NewRect(
				cfg.BoardX+col*cfg.TileSize,
				cfg.BoardY+row*cfg.TileSize,
				cfg.TileSize, cfg.TileSize),
		}
		s.order[i] = i
	}
	s.Restart()
	return s
}

// Restart redeals: fresh shuffle of the display order, every piece back
// to the tray, every slot emptied, drag and win state cleared. The new
// permutation is not guaranteed to differ from the previous one.
func (s *Session) Restart() {
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	for i := range s.pieces {
		s.pieces[i].Placed = false
		s.pieces[i].Bounds = Rect{}
	}
	for i := range s.slots {
		s.slots[i].Filled = false
	}
	s.held = -1
	s.dragOffset = Point{}
	s.complete = false
	s.winElapsed = 0
	s.Relayout()
	s.log.Debugf("new deal: order=%v", s.order)
}

// PointerDown tries to pick up the tray piece under pt. Scans the
// display order back to front so the piece drawn topmost wins. Picked
// pieces are resized to the full board tile size at their current
// origin before the drag offset is captured. Ignored once the puzzle
// is complete.
func (s *Session) PointerDown(pt Point) {
	if s.complete || s.held >= 0 {
		return
	}
	for i := len(s.order) - 1; i >= 0; i-- {
		idx := s.order[i]
		p := &s.pieces[idx]
		if p.Placed || !p.Bounds.Contains(pt) {
			continue
		}
		p.Bounds.W = s.cfg.TileSize
		p.Bounds.H = s.cfg.TileSize
		s.held = idx
		s.dragOffset = Point{X: pt.X - p.Bounds.X, Y: pt.Y - p.Bounds.Y}
		return
	}
}

// PointerMove drags the held piece, keeping the offset captured at
// pick-up so the piece does not jump under the pointer.
func (s *Session) PointerMove(pt Point) {
	if s.held < 0 {
		return
	}
	p := &s.pieces[s.held]
	p.Bounds.X = pt.X - s.dragOffset.X
	p.Bounds.Y = pt.Y - s.dragOffset.Y
}

// PointerUp resolves the drop. Only a drop on the one unfilled slot
// under pt whose index matches the held piece snaps it in; any other
// outcome returns the piece to the tray. With nothing held it is a
// strict no-op.
func (s *Session) PointerUp(pt Point) {
	if s.held < 0 {
		return
	}
	p := &s.pieces[s.held]
	if j := s.HitSlot(pt); j >= 0 && j == p.Home {
		s.slots[j].Filled = true
		p.Placed = true
		p.Bounds = s.slots[j].Bounds
		s.log.Debugf("piece %d placed, %d remaining", p.Home, s.Remaining()-1)
	}
	s.held = -1
	s.Relayout()
	if !s.complete && s.allFilled() {
		s.complete = true
		s.winElapsed = 0
		s.log.Info("puzzle complete")
	}
}

// HitSlot returns the index of the first unfilled slot containing pt,
// or -1. Slots never overlap, so at most one can match.
func (s *Session) HitSlot(pt Point) int {
	for i := range s.slots {
		if !s.slots[i].Filled && s.slots[i].Bounds.Contains(pt) {
			return i
		}
	}
	return -1
}

// HitTray returns the index of the topmost unplaced piece under pt, or -1.
func (s *Session) HitTray(pt Point) int {
	for i := len(s.order) - 1; i >= 0; i-- {
		idx := s.order[i]
		if !s.pieces[idx].Placed && s.pieces[idx].Bounds.Contains(pt) {
			return idx
		}
	}
	return -1
}

// Relayout packs the unplaced pieces into the tray grid, left to right
// and top to bottom in display order. Safe to call repeatedly: with no
// intervening state change it recomputes identical rectangles.
func (s *Session) Relayout() {
	tw := s.cfg.TrayTileSize()
	vis := 0
	for _, idx := range s.order {
		p := &s.pieces[idx]
		if p.Placed {
			continue
		}
		col := vis % s.cfg.TrayCols
		row := vis / s.cfg.TrayCols
		p.Bounds = NewRect(
			s.cfg.TrayX+s.cfg.TrayPad+col*(tw+s.cfg.TrayPad),
			s.cfg.TrayY+s.cfg.TrayHeaderH+row*(tw+s.cfg.TrayPad),
			tw, tw)
		vis++
	}
}

// Advance accumulates the win timer. Called once per frame with the
// frame's measured duration; counts only after completion.
func (s *Session) Advance(dt time.Duration) {
	if s.complete {
		s.winElapsed += dt
	}
}

// OverlayAlpha is the dim-layer opacity of the win overlay, ramping
// with the accumulated win time and capped well below fully opaque.
func (s *Session) OverlayAlpha() uint8 {
	if !s.complete {
		return 0
	}
	a := s.winElapsed.Milliseconds() / 3
	if a > overlayAlphaCap {
		a = overlayAlphaCap
	}
	return uint8(a)
}

// ShowWinText reports whether the win message block should render yet.
func (s *Session) ShowWinText() bool {
	return s.complete && s.winElapsed > winTextDelay
}

func (s *Session) allFilled() bool {
	for i := range s.slots {
		if !s.slots[i].Filled {
			return false
		}
	}
	return true
}

// Remaining counts the pieces still in the tray (the held piece counts
// as remaining).
func (s *Session) Remaining() int {
	n := 0
	for i := range s.pieces {
		if !s.pieces[i].Placed {
			n++
		}
	}
	return n
}

func (s *Session) Config() Config { return s.cfg }

func (s *Session) Count() int { return len(s.pieces) }

func (s *Session) Held() int { return s.held }

func (s *Session) Complete() bool { return s.complete }

func (s *Session) WinElapsed() time.Duration { return s.winElapsed }

// Piece returns a copy of the piece table entry i.
func (s *Session) Piece(i int) Piece { return s.pieces[i] }

// Slot returns a copy of the slot table entry i.
func (s *Session) Slot(i int) Slot { return s.slots[i] }

// Order returns a copy of the current display order.
func (s *Session) Order() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}
