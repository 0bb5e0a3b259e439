package gfont

import (
	"os"

	"townpuzzle/src/logx"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Big    font.Face // win title
	Normal font.Face // panel labels, buttons
	Small  font.Face // counters, hints
}

// LoadFonts reads the ttf from workdir and builds the three faces the
// game uses. A missing or broken ttf is not fatal: the game falls back
// to the builtin bitmap face so it stays playable without assets.
func LoadFonts(workdir string, log logx.Logger) *Fonts {
	fallback := &Fonts{
		Big:    basicfont.Face7x13,
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}

	raw, err := os.ReadFile(workdir + "/NotoSansDisplay-Regular.ttf")
	if err != nil {
		log.Warnf("font asset unavailable, using builtin face: %v", err)
		return fallback
	}
	f, err := opentype.Parse(raw)
	if err != nil {
		log.Warnf("error parse font: %v", err)
		return fallback
	}

	face := func(size float64) font.Face {
		fc, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Warnf("error create face %0.0fpx: %v", size, err)
			return basicfont.Face7x13
		}
		return fc
	}

	return &Fonts{
		Big:    face(36),
		Normal: face(20),
		Small:  face(14),
	}
}
