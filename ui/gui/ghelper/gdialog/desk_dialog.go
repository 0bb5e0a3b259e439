//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
}

// OpenImage shows the native open-file dialog filtered to pictures the
// tile source can decode.
func OpenImage(title string) (Result, error) {
	path, err := dialog.File().Title(title).
		Filter("Pictures (*.jpg, *.jpeg, *.png)", "jpg", "jpeg", "png").
		Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
	}, nil
}
