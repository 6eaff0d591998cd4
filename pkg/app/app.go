// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/macsandoval1999/solarsys-expedition/pkg/config"
	"github.com/macsandoval1999/solarsys-expedition/pkg/game"
	"github.com/macsandoval1999/solarsys-expedition/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Planet 指定启动时直接打开的行星详情页（如 "mars"），为空则进入地图
	Planet string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载行星目录
	catalog, err := game.LoadPlanetCatalog("data/planets.yaml")
	if err != nil {
		return nil, fmt.Errorf("行星目录加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d planets", len(catalog.Planets()))

	// 恢复视图设置与收藏
	gameState := game.GetGameState()
	viewSettings := gameState.GetViewSettingsManager()
	if err := viewSettings.Load(); err != nil {
		log.Printf("[App] Warning: failed to load view settings: %v", err)
	}
	if err := gameState.GetFavoritesManager().Load(); err != nil {
		log.Printf("[App] Warning: failed to load favorites: %v", err)
	}
	if viewSettings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器并注册场景工厂
	sceneManager := game.NewSceneManager()
	sceneManager.SetMapSceneFactory(func() game.Scene {
		return scenes.NewMapScene(sceneManager, catalog)
	})
	sceneManager.SetDetailSceneFactory(func(planetID string) game.Scene {
		return scenes.NewDetailScene(sceneManager, catalog, planetID)
	})

	// 确定启动场景
	if cfg.Planet != "" {
		log.Printf("[App] Starting at detail page: %s", cfg.Planet)
		sceneManager.Navigate(game.DetailRoute(cfg.Planet))
	} else {
		sceneManager.Navigate("map")
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（持久化到视图设置）
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		game.GetGameState().GetViewSettingsManager().SetFullscreen(!isFullscreen)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
