package game

import (
	"fmt"
	"log"
	"net/url"

	"github.com/hajimehoshi/ebiten/v2"
)

// DetailPage 行星详情页的路由路径
const DetailPage = "planet"

// PlanetQueryKey 详情页路由中携带行星标识符的查询参数名
const PlanetQueryKey = "planet"

// MapSceneFactory 地图场景工厂函数类型
type MapSceneFactory func() Scene

// DetailSceneFactory 详情场景工厂函数类型
// 用于创建指定行星的详情场景，避免循环依赖
type DetailSceneFactory func(planetID string) Scene

// DetailRoute 构造行星详情页的路由
// 形如 "planet?planet=mars"，与跳转 URL 的形式保持一致
func DetailRoute(planetID string) string {
	v := url.Values{}
	v.Set(PlanetQueryKey, planetID)
	return DetailPage + "?" + v.Encode()
}

// ParseDetailRoute 解析详情页路由，返回行星标识符
func ParseDetailRoute(route string) (string, error) {
	u, err := url.Parse(route)
	if err != nil {
		return "", fmt.Errorf("failed to parse route %q: %w", route, err)
	}
	if u.Path != DetailPage {
		return "", fmt.Errorf("route %q is not a detail route", route)
	}
	planetID := u.Query().Get(PlanetQueryKey)
	if planetID == "" {
		return "", fmt.Errorf("route %q has no planet identifier", route)
	}
	return planetID, nil
}

// SceneManager manages the app's high-level state by controlling which
// scene is active. It ensures only one scene's Update and Draw methods
// are called at any given time.
type SceneManager struct {
	currentScene  Scene
	mapFactory    MapSceneFactory
	detailFactory DetailSceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetMapSceneFactory 设置地图场景工厂函数
func (sm *SceneManager) SetMapSceneFactory(factory MapSceneFactory) {
	sm.mapFactory = factory
}

// SetDetailSceneFactory 设置详情场景工厂函数
func (sm *SceneManager) SetDetailSceneFactory(factory DetailSceneFactory) {
	sm.detailFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent
// game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
// 没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Navigate 按路由切换场景
// 路由形式与页面 URL 一致："map" 回到地图，"planet?planet=<id>" 打开详情页。
// 路由非法或工厂未设置时记录日志并保持当前场景不变（不抛出异常）。
func (sm *SceneManager) Navigate(route string) {
	log.Printf("[SceneManager] Navigate: %s", route)

	if route == "map" || route == "" {
		if sm.mapFactory == nil {
			log.Printf("[SceneManager] 错误: MapSceneFactory 未设置")
			return
		}
		sm.SwitchTo(sm.mapFactory())
		return
	}

	planetID, err := ParseDetailRoute(route)
	if err != nil {
		log.Printf("[SceneManager] 错误: 非法路由: %v", err)
		return
	}
	if sm.detailFactory == nil {
		log.Printf("[SceneManager] 错误: DetailSceneFactory 未设置")
		return
	}

	newScene := sm.detailFactory(planetID)
	if newScene != nil {
		sm.SwitchTo(newScene)
		log.Printf("[SceneManager] 成功切换到行星详情: %s", planetID)
	} else {
		log.Printf("[SceneManager] 错误: 无法创建详情场景: %s", planetID)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
