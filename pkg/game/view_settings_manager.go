package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewSettings 全局视图设置
// 注意：这些设置是全局的，不绑定到特定行星
type ViewSettings struct {
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
	// ShowOrbits 地图上是否绘制轨道环
	ShowOrbits bool `yaml:"showOrbits"`
}

// DefaultViewSettings 返回默认视图设置
func DefaultViewSettings() *ViewSettings {
	return &ViewSettings{
		Fullscreen: false,
		ShowOrbits: true,
	}
}

// ViewSettingsManager 视图设置管理器
// 负责视图设置的加载、保存和内存管理
type ViewSettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "view"
)

// NewViewSettingsManager 创建新的视图设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *ViewSettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewViewSettingsManager(gdataManager *gdata.Manager) (*ViewSettingsManager, error) {
	vm := &ViewSettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultViewSettings(),
	}

	if err := vm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[ViewSettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return vm, nil
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或文件不存在时使用默认设置
func (vm *ViewSettingsManager) Load() error {
	if vm.gdataManager == nil {
		vm.settings = DefaultViewSettings()
		return nil
	}

	if !vm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		vm.settings = DefaultViewSettings()
		return nil
	}

	data, err := vm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		vm.settings = DefaultViewSettings()
		return fmt.Errorf("failed to load view settings: %w", err)
	}

	var loaded ViewSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		vm.settings = DefaultViewSettings()
		return fmt.Errorf("failed to unmarshal view settings: %w", err)
	}

	vm.settings = &loaded
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (vm *ViewSettingsManager) Save() error {
	if vm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(vm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal view settings: %w", err)
	}

	if err := vm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save view settings: %w", err)
	}

	return nil
}

// GetSettings 返回当前设置
func (vm *ViewSettingsManager) GetSettings() *ViewSettings {
	return vm.settings
}

// SetFullscreen 更新全屏偏好并持久化
func (vm *ViewSettingsManager) SetFullscreen(fullscreen bool) {
	vm.settings.Fullscreen = fullscreen
	if err := vm.Save(); err != nil {
		log.Printf("[ViewSettingsManager] Warning: Failed to save settings: %v", err)
	}
}

// SetShowOrbits 更新轨道环显示偏好并持久化
func (vm *ViewSettingsManager) SetShowOrbits(show bool) {
	vm.settings.ShowOrbits = show
	if err := vm.Save(); err != nil {
		log.Printf("[ViewSettingsManager] Warning: Failed to save settings: %v", err)
	}
}
