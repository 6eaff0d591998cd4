package scenes

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/macsandoval1999/solarsys-expedition/pkg/camera"
	"github.com/macsandoval1999/solarsys-expedition/pkg/config"
	"github.com/macsandoval1999/solarsys-expedition/pkg/game"
	"github.com/macsandoval1999/solarsys-expedition/pkg/utils"
)

// 太阳标记的半径（世界单位）
const sunRadius = 46.0

// 行星名称标签在缩放低于此值时隐藏
const labelMinScale = 0.8

// 背景星星数量
const starCount = 160

// starPoint 背景星星（屏幕空间，静态）
type starPoint struct {
	x, y float32
	size float32
}

// MapScene 太阳系地图场景
//
// 持有相机控制器并每帧喂给它指针快照。行星标记由行星目录静态布局
// （圆形轨道上的固定角度），场景自身不模拟轨道运动。
type MapScene struct {
	sceneManager *game.SceneManager
	gameState    *game.GameState
	catalog      *game.PlanetCatalog
	controller   *camera.Controller

	// markers[0] 是太阳（不可导航），markers[i+1] 对应 catalog.Planets()[i]
	markers []*camera.Marker

	hudFace   *text.GoTextFace
	labelFace *text.GoTextFace

	showOrbits bool
	stars      []starPoint
}

// NewMapScene 创建太阳系地图场景
//
// 相机参数从 data/camera.yaml 加载，失败时回退到默认值（记录警告）。
func NewMapScene(sm *game.SceneManager, catalog *game.PlanetCatalog) *MapScene {
	cfg, err := config.LoadCameraConfig("data/camera.yaml")
	if err != nil {
		log.Printf("[MapScene] Warning: %v (using default camera config)", err)
		cfg = config.DefaultCameraConfig()
	}

	scene := &MapScene{
		sceneManager: sm,
		gameState:    game.GetGameState(),
		catalog:      catalog,
		markers:      buildMarkers(catalog),
		hudFace:      fontFace(13),
		labelFace:    fontFace(14),
		stars:        buildStars(starCount),
	}
	scene.showOrbits = scene.gameState.GetViewSettingsManager().GetSettings().ShowOrbits

	scene.controller = camera.NewController(cfg,
		config.WindowWidth, config.WindowHeight,
		config.WorldWidth, config.WorldHeight,
		func(planetID string) {
			sm.Navigate(game.DetailRoute(planetID))
		})
	scene.controller.SetMarkers(scene.markers)

	log.Printf("[MapScene] Initialized with %d markers", len(scene.markers))
	return scene
}

// buildMarkers 根据行星目录构建标记集合
// 太阳位于世界中心，标识符为空（点击它不导航）；行星按轨道半径和
// 角度摆放在太阳周围
func buildMarkers(catalog *game.PlanetCatalog) []*camera.Marker {
	centerX := config.WorldWidth / 2
	centerY := config.WorldHeight / 2

	markers := []*camera.Marker{
		{ID: "", WorldX: centerX, WorldY: centerY, Radius: sunRadius},
	}
	for _, p := range catalog.Planets() {
		rad := p.OrbitAngleDeg * math.Pi / 180
		markers = append(markers, &camera.Marker{
			ID:     p.ID,
			WorldX: centerX + math.Cos(rad)*p.OrbitRadius,
			WorldY: centerY + math.Sin(rad)*p.OrbitRadius,
			Radius: p.Radius,
		})
	}
	return markers
}

// buildStars 生成固定种子的背景星星（屏幕空间）
func buildStars(n int) []starPoint {
	rng := rand.New(rand.NewSource(42))
	stars := make([]starPoint, n)
	for i := range stars {
		stars[i] = starPoint{
			x:    rng.Float32() * config.WindowWidth,
			y:    rng.Float32() * config.WindowHeight,
			size: 0.5 + rng.Float32()*1.2,
		}
	}
	return stars
}

// Update 处理输入并推进相机
func (s *MapScene) Update(deltaTime float64) {
	s.controller.Update(utils.ReadPointer(), deltaTime)

	// O 切换轨道环显示（持久化）
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		s.showOrbits = !s.showOrbits
		s.gameState.GetViewSettingsManager().SetShowOrbits(s.showOrbits)
	}

	// 悬停在可导航标记上时切换指针形状
	if !s.controller.IsFlying() {
		mx, my := ebiten.CursorPosition()
		m := s.controller.MarkerAt(float64(mx), float64(my))
		if m != nil && m.ID != "" {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
}

// Draw 渲染地图
func (s *MapScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 6, G: 8, B: 20, A: 255})

	// 背景星星不随相机移动
	for _, st := range s.stars {
		vector.DrawFilledCircle(screen, st.x, st.y, st.size, color.RGBA{R: 180, G: 185, B: 205, A: 255}, false)
	}

	scale := s.controller.State().Scale
	sun := s.markers[0]
	sunX, sunY := s.controller.ScreenPos(sun)

	// 轨道环：以太阳为圆心，半径随缩放
	if s.showOrbits {
		orbitColor := color.RGBA{R: 60, G: 70, B: 100, A: 255}
		for _, p := range s.catalog.Planets() {
			vector.StrokeCircle(screen, float32(sunX), float32(sunY),
				float32(p.OrbitRadius*scale), 1, orbitColor, true)
		}
	}

	// 太阳
	vector.DrawFilledCircle(screen, float32(sunX), float32(sunY),
		float32(sun.Radius*scale), color.RGBA{R: 253, G: 184, B: 19, A: 255}, true)

	// 行星与名称标签
	for i, p := range s.catalog.Planets() {
		m := s.markers[i+1]
		sx, sy := s.controller.ScreenPos(m)
		r := m.Radius * scale

		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r), p.RGBA(), true)

		if m.Targeted {
			vector.StrokeCircle(screen, float32(sx), float32(sy),
				float32(r+6), 2, color.RGBA{R: 255, G: 255, B: 255, A: 220}, true)
		}

		if scale >= labelMinScale && s.labelFace != nil {
			op := &text.DrawOptions{}
			op.GeoM.Translate(sx-textWidth(p.Name, s.labelFace)/2, sy+r+6)
			op.ColorScale.ScaleWithColor(color.RGBA{R: 200, G: 205, B: 220, A: 255})
			text.Draw(screen, p.Name, s.labelFace, op)
		}
	}

	// 飞入中：压暗背景，突出目标行星
	if s.controller.IsFlying() {
		vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight,
			color.RGBA{A: 60}, false)
	}

	s.drawHUD(screen)
}

// drawHUD 绘制左下角的变换信息和操作提示
func (s *MapScene) drawHUD(screen *ebiten.Image) {
	if s.hudFace == nil {
		return
	}

	hudColor := color.RGBA{R: 120, G: 128, B: 150, A: 255}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, config.WindowHeight-40)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s.controller.TransformStyle(), s.hudFace, op)

	hint := "drag to pan / wheel or pinch to zoom / click a planet / O toggles orbits"
	op = &text.DrawOptions{}
	op.GeoM.Translate(8, config.WindowHeight-22)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, hint, s.hudFace, op)
}
