package gdraw

import (
	"fmt"
	"time"

	"townpuzzle/ui/gui/gbase"
	"townpuzzle/ui/gui/gctx"
	"townpuzzle/ui/gui/ghelper"
	"townpuzzle/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIMenuDrawer struct {
	buttons   []*ghelper.Button
	idxPlay   int
	idxChoose int
	idxQuit   int

	// click tracking
	prevMouseDown bool

	// for animation
	prevTime time.Time
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{}
	md.prevTime = time.Now()
	md.makeLayout(ctx)
	return md
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	md.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, OffsetY: 0, TargetOffsetY: 0, AnimSpeed: 10.0,
		}
		idx := len(md.buttons)
		md.buttons = append(md.buttons, b)
		return idx
	}

	w, h := 240, 52
	x := (ctx.Config.WindowW - w) / 2
	y := ctx.Config.WindowH/2 - 40
	md.idxPlay = addBtn("Play", x, y, w, h)
	y += h + 16
	md.idxChoose = addBtn("Choose picture", x, y, w, h)
	y += h + 16
	md.idxQuit = addBtn("Quit", x, y, w, h)
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	// keyboard: toggle palette
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ctx.Theme == gbase.LightPalette {
			ctx.Theme = gbase.DarkPalette
		} else {
			ctx.Theme = gbase.LightPalette
		}
		ctx.Config.Theme = ctx.Theme.String()
		md.makeLayout(ctx)
	}

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !md.prevMouseDown
	justReleased := !mouseDown && md.prevMouseDown
	md.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case md.idxPlay:
			return ScenePlay, nil
		case md.idxChoose:
			md.choosePicture(ctx)
		case md.idxQuit:
			return SceneNotChanged, gbase.ErrExit
		}
	}

	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) choosePicture(ctx *gctx.GUIGameContext) {
	res, err := gdialog.OpenImage("Choose the map picture")
	if err != nil {
		// cancelled dialogs land here too, nothing to do
		ctx.Logx.Debugf("picture dialog: %v", err)
		return
	}
	ctx.Logx.Infof("map picture: %s", res.Name)
	ctx.Config.Image = res.Path
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Errorf("error save config: %v", err)
	}
	cfg := ctx.Session.Config()
	ctx.AssetsWorker.ReloadTiles(res.Path, cfg.TileSize, cfg.Cols, cfg.Rows)
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	title := "TOWN MAP PUZZLE"
	tb := text.BoundString(ctx.AssetsWorker.Fonts().Big, title)
	text.Draw(screen, title, ctx.AssetsWorker.Fonts().Big,
		(ctx.Config.WindowW-tb.Dx())/2, ctx.Config.WindowH/3, ctx.Theme.MenuText)

	sub := "Rebuild the town from its pieces"
	sb := text.BoundString(ctx.AssetsWorker.Fonts().Normal, sub)
	text.Draw(screen, sub, ctx.AssetsWorker.Fonts().Normal,
		(ctx.Config.WindowW-sb.Dx())/2, ctx.Config.WindowH/3+34, ctx.Theme.LabelText)

	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	hint := "Tab = theme"
	hb := text.BoundString(ctx.AssetsWorker.Fonts().Small, hint)
	text.Draw(screen, hint, ctx.AssetsWorker.Fonts().Small,
		ctx.Config.WindowW-hb.Dx()-10, ctx.Config.WindowH-10, ctx.Theme.HintText)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}
