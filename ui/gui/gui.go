package gui

import (
	"errors"
	"math/rand"
	"time"

	"townpuzzle/src/logx"
	"townpuzzle/src/puzzle"
	"townpuzzle/ui/gui/gbase"
	"townpuzzle/ui/gui/gbase/gconf"
	"townpuzzle/ui/gui/gctx"
	"townpuzzle/ui/gui/gdraw"
	"townpuzzle/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(cfg *gconf.Config, log logx.Logger) (*GUIProcessing, error) {
	layout := puzzle.LayoutConfig(cfg.Cols, cfg.Rows, cfg.WindowW, cfg.WindowH)
	assets := ghelper.NewGUIAssetsWorker(cfg.Image, layout.TileSize, layout.Cols, layout.Rows, log)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := puzzle.NewSession(layout, rng, log)

	ctx := gctx.NewGUIGameContext(session, assets, cfg, log)
	return &GUIProcessing{
		current: gdraw.NewGUIMenuDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Town Map Puzzle")
	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if next != gdraw.SceneNotChanged {
		gp.current = next.ToScene(gp.current, gp.ctx)
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
