package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/macsandoval1999/solarsys-expedition/pkg/utils"
)

// GameState 全局应用状态
// 持有跨场景共享的存储与管理器
type GameState struct {
	gdataManager *gdata.Manager
	favorites    *FavoritesManager
	viewSettings *ViewSettingsManager
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个应用生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = newGameState()
	}
	return globalGameState
}

// newGameState 初始化全局状态
// gdata 打开失败不是致命错误：记录警告后进入降级模式（仅内存）
func newGameState() *GameState {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[GameState] Warning: Failed to prepare storage directory: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: "solarsys-expedition",
	})
	if err != nil {
		log.Printf("[GameState] Warning: Failed to open gdata storage: %v (running without persistence)", err)
		manager = nil
	}

	favorites, err := NewFavoritesManager(manager)
	if err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}
	viewSettings, err := NewViewSettingsManager(manager)
	if err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}

	return &GameState{
		gdataManager: manager,
		favorites:    favorites,
		viewSettings: viewSettings,
	}
}

// GetGdataManager 返回跨平台存储管理器（可能为 nil）
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetFavoritesManager 返回收藏管理器
func (gs *GameState) GetFavoritesManager() *FavoritesManager {
	return gs.favorites
}

// GetViewSettingsManager 返回视图设置管理器
func (gs *GameState) GetViewSettingsManager() *ViewSettingsManager {
	return gs.viewSettings
}
