package main

import (
	"flag"
	"log"

	"github.com/Akhipbm/Traffic-runner/pkg/app"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	configPath := flag.String("config", "", "Load game config from a YAML file instead of the embedded one")
	seed := flag.Int64("seed", 0, "Random seed for object spawning (0 = time based)")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Traffic Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
