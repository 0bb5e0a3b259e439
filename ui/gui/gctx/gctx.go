package gctx

import (
	"townpuzzle/src/logx"
	"townpuzzle/src/puzzle"
	"townpuzzle/ui/gui/gbase"
	"townpuzzle/ui/gui/gbase/gconf"
	"townpuzzle/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Session      *puzzle.Session
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(s *puzzle.Session, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Session:      s,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}
