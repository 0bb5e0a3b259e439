package main

import (
	"fmt"

	"townpuzzle/ui"
)

func main() {
	if err := ui.RunTownPuzzle(); err != nil {
		fmt.Println(err)
	}
}
