package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/macsandoval1999/solarsys-expedition/pkg/app"
	"github.com/macsandoval1999/solarsys-expedition/pkg/config"
	"github.com/macsandoval1999/solarsys-expedition/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	planet := flag.String("planet", "", "启动后直接打开指定行星的详情页（如 \"mars\"）")
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	expeditionApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Planet:  *planet,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("太阳系探险 - Solar System Expedition")

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(expeditionApp); err != nil {
		log.Fatal(err)
	}
}
