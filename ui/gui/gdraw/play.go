package gdraw

import (
	"fmt"
	"time"

	"townpuzzle/src/puzzle"
	"townpuzzle/ui/gui/gctx"
	"townpuzzle/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ghostAlpha is the opacity of the reference picture under the empty slots.
const ghostAlpha = 60.0 / 255.0

// GUIPlayDrawer реализует Scene
type GUIPlayDrawer struct {
	// pre-rendered panel chrome
	trayPanel  *ebiten.Image
	boardPanel *ebiten.Image
	boardPos   puzzle.Point // top-left of the board panel
	overlay    *ebiten.Image

	prevMouseDown bool
	lastTick      time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{lastTick: time.Now()}

	cfg := ctx.Session.Config()
	pd.trayPanel = ghelper.RenderRoundedRect(cfg.TrayW, cfg.TrayH, 14, ctx.Theme.TrayFill, ctx.Theme.PanelStroke, 2)

	board := cfg.BoardRect()
	pd.boardPos = puzzle.Point{X: board.X - 16, Y: board.Y - 40}
	pd.boardPanel = ghelper.RenderRoundedRect(board.W+32, board.H+56, 14, ctx.Theme.BoardFill, ctx.Theme.PanelStroke, 2)

	pd.overlay = ebiten.NewImage(ctx.Config.WindowW, ctx.Config.WindowH)
	pd.overlay.Fill(ctx.Theme.OverlayFill)
	return pd
}

// Update runs one event pass: restart key, scene exit and the
// pointer-drag lifecycle, then advances the win timer.
func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	s := ctx.Session

	now := time.Now()
	dt := now.Sub(pd.lastTick)
	pd.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Restart()
		return SceneNotChanged, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// an in-flight drag goes back to the tray before leaving
		if s.Held() >= 0 {
			s.PointerUp(puzzle.Point{X: -1, Y: -1})
		}
		return SceneMenu, nil
	}

	mx, my := ebiten.CursorPosition()
	pt := puzzle.Point{X: mx, Y: my}
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	switch {
	case justPressed:
		s.PointerDown(pt)
	case justReleased:
		s.PointerUp(pt)
	case mouseDown:
		s.PointerMove(pt)
	}

	s.Advance(dt)
	return SceneNotChanged, nil
}

// Draw renders one frame in fixed order: background, tray chrome,
// board chrome, ghost reference, slots, tray pieces, held piece, hint,
// win overlay.
func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	s := ctx.Session
	cfg := s.Config()
	tiles := ctx.AssetsWorker.Tiles()
	fonts := ctx.AssetsWorker.Fonts()

	screen.Fill(ctx.Theme.Bg)

	// tray panel
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cfg.TrayX), float64(cfg.TrayY))
	screen.DrawImage(pd.trayPanel, op)

	label := "PIECES"
	lb := text.BoundString(fonts.Normal, label)
	text.Draw(screen, label, fonts.Normal, cfg.TrayX+(cfg.TrayW-lb.Dx())/2, cfg.TrayY+40, ctx.Theme.LabelText)

	rem := fmt.Sprintf("%d of %d remaining", s.Remaining(), s.Count())
	rb := text.BoundString(fonts.Small, rem)
	text.Draw(screen, rem, fonts.Small, cfg.TrayX+(cfg.TrayW-rb.Dx())/2, cfg.TrayY+62, ctx.Theme.PanelStroke)

	// board panel
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.boardPos.X), float64(pd.boardPos.Y))
	screen.DrawImage(pd.boardPanel, op)

	board := cfg.BoardRect()
	title := "TOWN MAP"
	tb := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, board.X+(board.W-tb.Dx())/2, board.Y-12, ctx.Theme.LabelText)

	// ghost reference under the slots
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(board.X), float64(board.Y))
	op.ColorScale.ScaleAlpha(ghostAlpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tiles.Ghost(), op)

	// slots: filled show the placed tile, empty show a border only
	for i := 0; i < s.Count(); i++ {
		slot := s.Slot(i)
		if slot.Filled {
			pd.drawTile(screen, tiles.Tile(slot.Home), slot.Bounds)
		} else {
			ghelper.EbitenutilDrawRectStroke(screen,
				float64(slot.Bounds.X), float64(slot.Bounds.Y),
				float64(slot.Bounds.W), float64(slot.Bounds.H), 2, ctx.Theme.PanelStroke)
		}
	}

	// tray pieces in display order, dragged piece skipped
	held := s.Held()
	for _, idx := range s.Order() {
		p := s.Piece(idx)
		if p.Placed || idx == held {
			continue
		}
		pd.drawTile(screen, tiles.Tile(p.Home), p.Bounds)
		ghelper.EbitenutilDrawRectStroke(screen,
			float64(p.Bounds.X), float64(p.Bounds.Y),
			float64(p.Bounds.W), float64(p.Bounds.H), 2, ctx.Theme.PanelStroke)
	}

	// held piece on top of everything
	if held >= 0 {
		p := s.Piece(held)
		pd.drawTile(screen, tiles.Tile(p.Home), p.Bounds)
		ghelper.EbitenutilDrawRectStroke(screen,
			float64(p.Bounds.X), float64(p.Bounds.Y),
			float64(p.Bounds.W), float64(p.Bounds.H), 3, ctx.Theme.Accent)
	}

	// controls hint
	hint := "R = restart"
	hb := text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, ctx.Config.WindowW-hb.Dx()-10, ctx.Config.WindowH-10, ctx.Theme.HintText)

	pd.drawWinOverlay(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// drawTile blits a tile image scaled to fit bounds.
func (pd *GUIPlayDrawer) drawTile(screen *ebiten.Image, img *ebiten.Image, b puzzle.Rect) {
	if img == nil {
		return
	}
	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.W)/float64(iw), float64(b.H)/float64(ih))
	op.GeoM.Translate(float64(b.X), float64(b.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (pd *GUIPlayDrawer) drawWinOverlay(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	s := ctx.Session
	alpha := s.OverlayAlpha()
	if alpha == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(alpha) / 255.0)
	screen.DrawImage(pd.overlay, op)

	if !s.ShowWinText() {
		return
	}

	fonts := ctx.AssetsWorker.Fonts()
	cx := ctx.Config.WindowW / 2
	cy := ctx.Config.WindowH / 2

	title := "Puzzle Complete!"
	tb := text.BoundString(fonts.Big, title)
	text.Draw(screen, title, fonts.Big, cx-tb.Dx()/2, cy-32, ctx.Theme.Success)

	sub := "You've revealed the ideal town map."
	sb := text.BoundString(fonts.Normal, sub)
	text.Draw(screen, sub, fonts.Normal, cx-sb.Dx()/2, cy+12, ctx.Theme.MenuText)

	again := "Press  R  to play again"
	ab := text.BoundString(fonts.Small, again)
	text.Draw(screen, again, fonts.Small, cx-ab.Dx()/2, cy+52, ctx.Theme.LabelText)
}
