package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	tunePath := flag.String("tune", "", "movement tuning yaml to load and watch for live reload")
	flag.Parse()

	game, err := NewGame(*tunePath)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("bluebolt demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
