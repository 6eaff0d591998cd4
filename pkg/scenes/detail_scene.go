package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/macsandoval1999/solarsys-expedition/pkg/game"
	"github.com/macsandoval1999/solarsys-expedition/pkg/utils"
)

// 详情页布局常量
const (
	detailPlanetCX = 240.0 // 行星大圆的圆心 X
	detailPlanetCY = 320.0
	detailPlanetR  = 150.0 // 行星大圆半径
	detailTextX    = 460.0 // 右侧文本列起始 X
	detailWrapRune = 44    // 简介每行最大字符数
)

// buttonRect 可点击的矩形区域
type buttonRect struct {
	x, y, w, h float64
}

func (b buttonRect) contains(x, y float64) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// DetailScene 行星详情场景
// 飞入动画结束后由路由 "planet?planet=<id>" 进入
type DetailScene struct {
	sceneManager *game.SceneManager
	gameState    *game.GameState
	planet       *game.Planet

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace

	backButton buttonRect
	favButton  buttonRect
}

// NewDetailScene 创建行星详情场景
// 未知的行星标识符不是致命错误：场景照常创建，渲染占位信息
func NewDetailScene(sm *game.SceneManager, catalog *game.PlanetCatalog, planetID string) *DetailScene {
	planet, ok := catalog.ByID(planetID)
	if !ok {
		log.Printf("[DetailScene] Warning: unknown planet %q", planetID)
		planet = nil
	}

	return &DetailScene{
		sceneManager: sm,
		gameState:    game.GetGameState(),
		planet:       planet,
		titleFace:    fontFace(30),
		bodyFace:     fontFace(15),
		backButton:   buttonRect{x: 16, y: 16, w: 110, h: 34},
		favButton:    buttonRect{x: detailTextX, y: 520, w: 220, h: 34},
	}
}

// Update 处理返回与收藏输入
func (s *DetailScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sceneManager.Navigate("map")
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.toggleFavorite()
	}

	if pressed, x, y := utils.IsJustTouchedOrClicked(); pressed {
		fx, fy := float64(x), float64(y)
		if s.backButton.contains(fx, fy) {
			s.sceneManager.Navigate("map")
			return
		}
		if s.planet != nil && s.favButton.contains(fx, fy) {
			s.toggleFavorite()
		}
	}
}

// toggleFavorite 切换当前行星的收藏状态
func (s *DetailScene) toggleFavorite() {
	if s.planet == nil {
		return
	}
	nowFav := s.gameState.GetFavoritesManager().Toggle(s.planet.ID)
	log.Printf("[DetailScene] Favorite %s: %v", s.planet.ID, nowFav)
}

// Draw 渲染详情页
func (s *DetailScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 12, B: 26, A: 255})

	s.drawButton(screen, s.backButton, "< Back to map")

	if s.planet == nil {
		s.drawText(screen, "Unknown planet", s.titleFace, detailTextX, 120, color.White)
		return
	}

	// 行星大圆
	vector.DrawFilledCircle(screen, detailPlanetCX, detailPlanetCY, detailPlanetR, s.planet.RGBA(), true)
	vector.StrokeCircle(screen, detailPlanetCX, detailPlanetCY, detailPlanetR+10, 1,
		color.RGBA{R: 70, G: 80, B: 110, A: 255}, true)

	// 名称与简介
	s.drawText(screen, s.planet.Name, s.titleFace, detailTextX, 90, color.White)
	bodyColor := color.RGBA{R: 190, G: 196, B: 214, A: 255}
	y := 140.0
	for _, line := range wrapWords(s.planet.Blurb, detailWrapRune) {
		s.drawText(screen, line, s.bodyFace, detailTextX, y, bodyColor)
		y += 22
	}

	// 事实列表
	y += 18
	labelColor := color.RGBA{R: 120, G: 128, B: 150, A: 255}
	for _, fact := range s.planet.Facts {
		s.drawText(screen, fact.Label, s.bodyFace, detailTextX, y, labelColor)
		s.drawText(screen, fact.Value, s.bodyFace, detailTextX+170, y, bodyColor)
		y += 24
	}

	// 收藏按钮
	label := "Add favorite (F)"
	if s.gameState.GetFavoritesManager().IsFavorite(s.planet.ID) {
		label = "Favorited (F)"
	}
	s.drawButton(screen, s.favButton, label)
}

// drawButton 绘制一个带边框的按钮
func (s *DetailScene) drawButton(screen *ebiten.Image, b buttonRect, label string) {
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h),
		color.RGBA{R: 26, G: 30, B: 52, A: 255}, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1,
		color.RGBA{R: 80, G: 90, B: 125, A: 255}, false)
	s.drawText(screen, label, s.bodyFace, b.x+12, b.y+8, color.RGBA{R: 200, G: 205, B: 220, A: 255})
}

// drawText 在 (x, y) 处绘制一行文本，face 为 nil 时无操作
func (s *DetailScene) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// wrapWords 把文本按词折行，每行最多 maxRunes 个字符
// 单个超长词独占一行，不截断
func wrapWords(s string, maxRunes int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := fmt.Sprintf("%s %s", current, w)
		if len([]rune(candidate)) > maxRunes {
			lines = append(lines, current)
			current = w
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}
