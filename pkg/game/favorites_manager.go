package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// favoritesData 收藏数据的持久化结构
type favoritesData struct {
	PlanetIDs []string `yaml:"planetIDs"` // 已收藏行星ID列表
}

// FavoritesManager 收藏管理器
//
// 职责：
//   - 记录用户收藏的行星
//   - 通过 gdata 跨平台持久化（YAML 格式，与项目其他配置保持一致）
//
// 架构说明：
//   - 由 GameState 持有，场景通过 GameState 访问
//   - gdataManager 为 nil 时进入降级模式：仅内存，不持久化，不报错
type FavoritesManager struct {
	gdataManager *gdata.Manager
	data         *favoritesData
}

// 存储路径常量
const (
	favoritesObject   = "favorites"
	favoritesProperty = "planets"
)

// NewFavoritesManager 创建收藏管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *FavoritesManager: 收藏管理器实例
//   - error: 如果加载失败返回错误（不影响创建，使用空收藏）
func NewFavoritesManager(gdataManager *gdata.Manager) (*FavoritesManager, error) {
	fm := &FavoritesManager{
		gdataManager: gdataManager,
		data:         &favoritesData{PlanetIDs: []string{}},
	}

	if err := fm.Load(); err != nil {
		// 加载失败不是致命错误，使用空收藏
		log.Printf("[FavoritesManager] Warning: Failed to load favorites: %v (starting empty)", err)
	}

	return fm, nil
}

// Load 从 gdata 加载收藏数据
// gdataManager 为 nil 或数据不存在时使用空收藏
func (fm *FavoritesManager) Load() error {
	if fm.gdataManager == nil {
		fm.data = &favoritesData{PlanetIDs: []string{}}
		return nil
	}

	if !fm.gdataManager.ObjectPropExists(favoritesObject, favoritesProperty) {
		fm.data = &favoritesData{PlanetIDs: []string{}}
		return nil
	}

	raw, err := fm.gdataManager.LoadObjectProp(favoritesObject, favoritesProperty)
	if err != nil {
		fm.data = &favoritesData{PlanetIDs: []string{}}
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	var loaded favoritesData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		fm.data = &favoritesData{PlanetIDs: []string{}}
		return fmt.Errorf("failed to unmarshal favorites: %w", err)
	}

	fm.data = &loaded
	return nil
}

// Save 保存收藏数据到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (fm *FavoritesManager) Save() error {
	if fm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(fm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}

	if err := fm.gdataManager.SaveObjectProp(favoritesObject, favoritesProperty, raw); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}

	return nil
}

// IsFavorite 检查行星是否已收藏
func (fm *FavoritesManager) IsFavorite(planetID string) bool {
	for _, id := range fm.data.PlanetIDs {
		if id == planetID {
			return true
		}
	}
	return false
}

// Toggle 切换行星的收藏状态并立即持久化
//
// 返回：
//   - bool: 切换后的收藏状态
func (fm *FavoritesManager) Toggle(planetID string) bool {
	if planetID == "" {
		return false
	}

	if fm.IsFavorite(planetID) {
		kept := fm.data.PlanetIDs[:0]
		for _, id := range fm.data.PlanetIDs {
			if id != planetID {
				kept = append(kept, id)
			}
		}
		fm.data.PlanetIDs = kept
	} else {
		fm.data.PlanetIDs = append(fm.data.PlanetIDs, planetID)
	}

	if err := fm.Save(); err != nil {
		log.Printf("[FavoritesManager] Warning: Failed to save favorites: %v", err)
	}
	return fm.IsFavorite(planetID)
}

// List 返回已收藏行星ID列表（排序后的副本，修改不影响原数据）
func (fm *FavoritesManager) List() []string {
	ids := make([]string, len(fm.data.PlanetIDs))
	copy(ids, fm.data.PlanetIDs)
	sort.Strings(ids)
	return ids
}
