package puzzle

import (
	"math/rand"
	"testing"
	"time"

	"townpuzzle/src/logx"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(DefaultConfig(), rand.New(rand.NewSource(1)), logx.NewNop())
}

// newScenarioSession pins the display order used by the spec scenarios.
func newScenarioSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	s.order = []int{4, 0, 8, 1, 5, 2, 6, 3, 7}
	s.Relayout()
	return s
}

func slotCenter(s *Session, i int) Point {
	b := s.Slot(i).Bounds
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

func pieceOrigin(s *Session, i int) Point {
	b := s.Piece(i).Bounds
	return Point{X: b.X + 1, Y: b.Y + 1}
}

// dragTo picks up piece i from the tray and releases it at pt.
func dragTo(t *testing.T, s *Session, i int, pt Point) {
	t.Helper()
	s.PointerDown(pieceOrigin(s, i))
	if s.Held() != i {
		t.Fatalf("pick-up failed: held = %d, want %d", s.Held(), i)
	}
	s.PointerMove(pt)
	s.PointerUp(pt)
}

// checkConservation asserts tray + placed + held covers every piece
// exactly once.
func checkConservation(t *testing.T, s *Session) {
	t.Helper()
	seen := make([]int, s.Count())
	for i := 0; i < s.Count(); i++ {
		p := s.Piece(i)
		if p.Placed {
			if s.Held() == i {
				t.Fatalf("piece %d is both placed and held", i)
			}
			seen[i]++
			continue
		}
		seen[i]++ // in tray (or held, which is a tray piece in flight)
	}
	for i, n := range seen {
		if n != 1 {
			t.Errorf("piece %d counted %d times", i, n)
		}
	}
	order := s.Order()
	if len(order) != s.Count() {
		t.Fatalf("display order has %d entries, want %d", len(order), s.Count())
	}
	inOrder := make(map[int]bool, len(order))
	for _, idx := range order {
		if inOrder[idx] {
			t.Fatalf("display order repeats index %d", idx)
		}
		inOrder[idx] = true
	}
}

func TestNewSessionDeal(t *testing.T) {
	s := newTestSession(t)
	if s.Count() != 9 {
		t.Fatalf("Count() = %d, want 9", s.Count())
	}
	if s.Complete() {
		t.Error("fresh session reports complete")
	}
	if s.Held() != -1 {
		t.Errorf("fresh session holds piece %d", s.Held())
	}
	if s.Remaining() != 9 {
		t.Errorf("Remaining() = %d, want 9", s.Remaining())
	}
	for i := 0; i < s.Count(); i++ {
		if s.Piece(i).Placed || s.Slot(i).Filled {
			t.Errorf("piece/slot %d not reset on deal", i)
		}
	}
	checkConservation(t, s)
}

func TestSlotGridGeometry(t *testing.T) {
	s := newTestSession(t)
	cfg := s.Config()
	for i := 0; i < s.Count(); i++ {
		b := s.Slot(i).Bounds
		wantX := cfg.BoardX + (i%cfg.Cols)*cfg.TileSize
		wantY := cfg.BoardY + (i/cfg.Cols)*cfg.TileSize
		if b.X != wantX || b.Y != wantY || b.W != cfg.TileSize || b.H != cfg.TileSize {
			t.Errorf("slot %d bounds = %+v, want origin (%d,%d) size %d", i, b, wantX, wantY, cfg.TileSize)
		}
	}
}

// Scenario: dragging the piece with home index 4 onto slot 4 places it.
func TestDropOnMatchingSlot(t *testing.T) {
	s := newScenarioSession(t)
	dragTo(t, s, 4, slotCenter(s, 4))

	if !s.Piece(4).Placed {
		t.Error("piece 4 not placed after matching drop")
	}
	if !s.Slot(4).Filled {
		t.Error("slot 4 not filled after matching drop")
	}
	if got := s.Piece(4).Bounds; got != s.Slot(4).Bounds {
		t.Errorf("placed piece bounds = %+v, want snapped to slot %+v", got, s.Slot(4).Bounds)
	}
	if s.Remaining() != 8 {
		t.Errorf("Remaining() = %d, want 8", s.Remaining())
	}
	if s.Complete() {
		t.Error("complete after a single placement")
	}
	if s.Held() != -1 {
		t.Errorf("held = %d after drop, want -1", s.Held())
	}
	checkConservation(t, s)
}

// Scenario: dragging piece 4 onto slot 0 fails and returns it to the tray.
func TestDropOnMismatchedSlot(t *testing.T) {
	s := newScenarioSession(t)
	dragTo(t, s, 4, slotCenter(s, 0))

	if s.Piece(4).Placed {
		t.Error("piece 4 placed on mismatched slot")
	}
	for i := 0; i < s.Count(); i++ {
		if s.Slot(i).Filled {
			t.Errorf("slot %d filled after failed drop", i)
		}
	}
	if s.Complete() {
		t.Error("complete after failed drop")
	}
	// back in the tray at its relayout position
	tw := s.Config().TrayTileSize()
	if b := s.Piece(4).Bounds; b.W != tw || b.H != tw {
		t.Errorf("returned piece size = %dx%d, want tray size %d", b.W, b.H, tw)
	}
	checkConservation(t, s)
}

func TestDropOutsideAnySlot(t *testing.T) {
	s := newScenarioSession(t)
	dragTo(t, s, 4, Point{X: -50, Y: -50})

	if s.Piece(4).Placed {
		t.Error("piece placed on out-of-window drop")
	}
	if s.Held() != -1 {
		t.Error("drop outside did not clear held piece")
	}
	checkConservation(t, s)
}

func TestDropOnFilledSlotFails(t *testing.T) {
	s := newScenarioSession(t)
	dragTo(t, s, 4, slotCenter(s, 4))

	// slot 4 is filled now; piece 0 dropped there must bounce
	dragTo(t, s, 0, slotCenter(s, 4))
	if s.Piece(0).Placed {
		t.Error("piece 0 placed on an already filled slot")
	}
	if s.Remaining() != 8 {
		t.Errorf("Remaining() = %d, want 8", s.Remaining())
	}
}

func TestPickUpResizesToTileSize(t *testing.T) {
	s := newScenarioSession(t)
	origin := pieceOrigin(s, 4)
	s.PointerDown(origin)

	ts := s.Config().TileSize
	if b := s.Piece(4).Bounds; b.W != ts || b.H != ts {
		t.Errorf("held piece size = %dx%d, want %d", b.W, b.H, ts)
	}
}

func TestPointerMoveKeepsDragOffset(t *testing.T) {
	s := newScenarioSession(t)
	b := s.Piece(4).Bounds
	grab := Point{X: b.X + 5, Y: b.Y + 9}
	s.PointerDown(grab)

	s.PointerMove(Point{X: 400, Y: 300})
	got := s.Piece(4).Bounds
	if got.X != 400-5 || got.Y != 300-9 {
		t.Errorf("dragged origin = (%d,%d), want (395,291)", got.X, got.Y)
	}
}

func TestPointerMoveWithoutHoldIsNoop(t *testing.T) {
	s := newScenarioSession(t)
	before := s.Piece(4).Bounds
	s.PointerMove(Point{X: 500, Y: 500})
	if got := s.Piece(4).Bounds; got != before {
		t.Errorf("PointerMove with nothing held moved a piece: %+v -> %+v", before, got)
	}
}

func TestPointerUpWithoutHoldIsNoop(t *testing.T) {
	s := newScenarioSession(t)
	var before []Rect
	for i := 0; i < s.Count(); i++ {
		before = append(before, s.Piece(i).Bounds)
	}
	s.PointerUp(slotCenter(s, 4))
	for i := 0; i < s.Count(); i++ {
		if s.Piece(i).Bounds != before[i] {
			t.Errorf("piece %d moved by a stray pointer-up", i)
		}
		if s.Slot(i).Filled {
			t.Errorf("slot %d filled by a stray pointer-up", i)
		}
	}
}

func TestOnlyOnePieceHeld(t *testing.T) {
	s := newScenarioSession(t)
	s.PointerDown(pieceOrigin(s, 4))
	first := s.Held()
	// second press while holding must not switch pieces
	s.PointerDown(pieceOrigin(s, 0))
	if s.Held() != first {
		t.Errorf("second pointer-down switched held piece: %d -> %d", first, s.Held())
	}
}

func TestTrayHitTopmostWins(t *testing.T) {
	s := newScenarioSession(t)
	// Force two tray pieces to overlap; the one later in display order
	// draws on top and must win the hit-test.
	a, b := s.order[0], s.order[1]
	s.pieces[b].Bounds = s.pieces[a].Bounds
	if got := s.HitTray(pieceOrigin(s, a)); got != b {
		t.Errorf("HitTray = %d, want topmost %d", got, b)
	}
}

func TestRelayoutIdempotent(t *testing.T) {
	s := newScenarioSession(t)
	dragTo(t, s, 4, slotCenter(s, 4))

	first := make([]Rect, s.Count())
	for i := range first {
		first[i] = s.Piece(i).Bounds
	}
	s.Relayout()
	for i := range first {
		if got := s.Piece(i).Bounds; got != first[i] {
			t.Errorf("piece %d rect changed on repeated relayout: %+v -> %+v", i, first[i], got)
		}
	}
}

func TestTrayPacking(t *testing.T) {
	s := newScenarioSession(t)
	cfg := s.Config()
	tw := cfg.TrayTileSize()

	for vis, idx := range s.Order() {
		b := s.Piece(idx).Bounds
		wantX := cfg.TrayX + cfg.TrayPad + (vis%cfg.TrayCols)*(tw+cfg.TrayPad)
		wantY := cfg.TrayY + cfg.TrayHeaderH + (vis/cfg.TrayCols)*(tw+cfg.TrayPad)
		if b.X != wantX || b.Y != wantY {
			t.Errorf("tray piece %d at (%d,%d), want (%d,%d)", idx, b.X, b.Y, wantX, wantY)
		}
	}
}

// Scenario: placing all nine pieces flips complete exactly once and the
// win timer accumulates from zero afterwards.
func TestCompletion(t *testing.T) {
	s := newScenarioSession(t)
	for _, i := range []int{4, 0, 8, 1, 5, 2, 6, 3} {
		dragTo(t, s, i, slotCenter(s, i))
		if s.Complete() {
			t.Fatalf("complete before the last piece (after piece %d)", i)
		}
	}
	dragTo(t, s, 7, slotCenter(s, 7))

	if !s.Complete() {
		t.Fatal("not complete with all slots filled")
	}
	if s.WinElapsed() != 0 {
		t.Errorf("WinElapsed() = %v on completion frame, want 0", s.WinElapsed())
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}

	s.Advance(16 * time.Millisecond)
	s.Advance(16 * time.Millisecond)
	if s.WinElapsed() != 32*time.Millisecond {
		t.Errorf("WinElapsed() = %v, want 32ms", s.WinElapsed())
	}

	// no pick-ups once complete
	s.PointerDown(slotCenter(s, 0))
	if s.Held() != -1 {
		t.Error("pick-up allowed after completion")
	}
	checkConservation(t, s)
}

func TestAdvanceBeforeCompletion(t *testing.T) {
	s := newScenarioSession(t)
	s.Advance(time.Second)
	if s.WinElapsed() != 0 {
		t.Errorf("win timer ran before completion: %v", s.WinElapsed())
	}
}

func TestWinOverlayStaging(t *testing.T) {
	s := newScenarioSession(t)
	if s.OverlayAlpha() != 0 || s.ShowWinText() {
		t.Fatal("overlay active before completion")
	}
	for _, i := range []int{4, 0, 8, 1, 5, 2, 6, 3, 7} {
		dragTo(t, s, i, slotCenter(s, i))
	}

	if s.OverlayAlpha() != 0 {
		t.Errorf("OverlayAlpha() = %d at t=0, want 0", s.OverlayAlpha())
	}
	s.Advance(90 * time.Millisecond)
	if got := s.OverlayAlpha(); got != 30 {
		t.Errorf("OverlayAlpha() = %d at 90ms, want 30", got)
	}
	if s.ShowWinText() {
		t.Error("win text shown before the delay threshold")
	}
	s.Advance(300 * time.Millisecond)
	if !s.ShowWinText() {
		t.Error("win text hidden past the delay threshold")
	}
	s.Advance(10 * time.Second)
	if got := s.OverlayAlpha(); got != 200 {
		t.Errorf("OverlayAlpha() = %d, want capped at 200", got)
	}
}

// Scenario: restart mid-game resets every table and reshuffles.
func TestRestartMidGame(t *testing.T) {
	s := newScenarioSession(t)
	for _, i := range []int{4, 0, 8} {
		dragTo(t, s, i, slotCenter(s, i))
	}
	if s.Remaining() != 6 {
		t.Fatalf("Remaining() = %d before restart, want 6", s.Remaining())
	}

	s.Restart()

	if s.Complete() {
		t.Error("complete survived restart")
	}
	if s.WinElapsed() != 0 {
		t.Errorf("WinElapsed() = %v after restart, want 0", s.WinElapsed())
	}
	if s.Held() != -1 {
		t.Errorf("held = %d after restart, want -1", s.Held())
	}
	for i := 0; i < s.Count(); i++ {
		if s.Piece(i).Placed {
			t.Errorf("piece %d still placed after restart", i)
		}
		if s.Slot(i).Filled {
			t.Errorf("slot %d still filled after restart", i)
		}
	}
	if s.Remaining() != 9 {
		t.Errorf("Remaining() = %d after restart, want 9", s.Remaining())
	}
	checkConservation(t, s)
}

func TestRestartReshuffles(t *testing.T) {
	// With a fixed seed the sequence of permutations is deterministic;
	// across a handful of restarts at least one must differ.
	s := newTestSession(t)
	first := s.Order()
	changed := false
	for i := 0; i < 5 && !changed; i++ {
		s.Restart()
		next := s.Order()
		for j := range next {
			if next[j] != first[j] {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("display order never changed across restarts")
	}
}

func TestDeterministicShuffle(t *testing.T) {
	cfg := DefaultConfig()
	s1 := NewSession(cfg, rand.New(rand.NewSource(42)), logx.NewNop())
	s2 := NewSession(cfg, rand.New(rand.NewSource(42)), logx.NewNop())
	o1, o2 := s1.Order(), s2.Order()
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Fatalf("same seed produced different deals: %v vs %v", o1, o2)
		}
	}
}

func TestHitSlotPrefersUnfilled(t *testing.T) {
	s := newScenarioSession(t)
	pt := slotCenter(s, 4)
	if got := s.HitSlot(pt); got != 4 {
		t.Fatalf("HitSlot = %d, want 4", got)
	}
	dragTo(t, s, 4, pt)
	if got := s.HitSlot(pt); got != -1 {
		t.Errorf("HitSlot on a filled slot = %d, want -1", got)
	}
}

func TestLayoutConfigShrinksTiles(t *testing.T) {
	c := LayoutConfig(6, 6, 960, 640)
	if c.TileSize >= 160 {
		t.Errorf("TileSize = %d for a 6x6 grid, want < 160", c.TileSize)
	}
	if c.Cols*c.TileSize > 960-c.BoardX {
		t.Errorf("board width %d overflows the window", c.Cols*c.TileSize)
	}
	if c.Rows*c.TileSize > 640 {
		t.Errorf("board height %d overflows the window", c.Rows*c.TileSize)
	}
}
