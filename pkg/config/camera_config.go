package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/macsandoval1999/solarsys-expedition/pkg/embedded"
)

// CameraConfig 相机控制器的可调参数
//
// 所有交互手感相关的常量都集中在这里，通过 data/camera.yaml 调整，
// 不需要改代码。无法加载配置文件时回退到 DefaultCameraConfig()。
type CameraConfig struct {
	// MinScale 缩放下限（滚轮/双指缩放时钳制，必须大于 0）
	MinScale float64 `yaml:"minScale"`
	// MaxScale 缩放上限
	MaxScale float64 `yaml:"maxScale"`
	// FlyInScale 飞入动画的目标缩放，允许超过 MaxScale
	FlyInScale float64 `yaml:"flyInScale"`
	// VerticalOffset 飞入结束后目标点在视口中心上方的偏移量（像素）
	VerticalOffset float64 `yaml:"verticalOffset"`

	// WheelSensitivity 每单位滚轮增量对应的缩放增量
	WheelSensitivity float64 `yaml:"wheelSensitivity"`
	// PinchSensitivity 双指间距每像素变化对应的缩放增量
	PinchSensitivity float64 `yaml:"pinchSensitivity"`

	// TransitionSeconds 飞入动画的时长（秒）
	TransitionSeconds float64 `yaml:"transitionSeconds"`
	// NavigationDelaySeconds 飞入开始到跳转详情页的延迟（秒）
	// 必须满足 0 ≤ NavigationDelaySeconds ≤ TransitionSeconds，
	// 让跳转发生在动画"看起来已到达"的时刻
	NavigationDelaySeconds float64 `yaml:"navigationDelaySeconds"`

	// InitialOffsetX / InitialOffsetY 相机初始平移量（像素）
	// 默认 -WorldWidth/2 / -WorldHeight/2，使世界中心（太阳）位于视口中心
	InitialOffsetX float64 `yaml:"initialOffsetX"`
	InitialOffsetY float64 `yaml:"initialOffsetY"`
	// InitialScale 相机初始缩放，必须落在 [MinScale, MaxScale] 内
	InitialScale float64 `yaml:"initialScale"`
}

// DefaultCameraConfig 返回默认相机参数
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		MinScale:               0.4,
		MaxScale:               3.0,
		FlyInScale:             4.0,
		VerticalOffset:         80.0,
		WheelSensitivity:       0.1,
		PinchSensitivity:       0.005,
		TransitionSeconds:      3.0,
		NavigationDelaySeconds: 2.4,
		InitialOffsetX:         -WorldWidth / 2,
		InitialOffsetY:         -WorldHeight / 2,
		InitialScale:           1.0,
	}
}

// ParseCameraConfig 从 YAML 字节解析相机参数并校验
func ParseCameraConfig(data []byte) (CameraConfig, error) {
	cfg := DefaultCameraConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse camera config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid camera config: %w", err)
	}
	return cfg, nil
}

// LoadCameraConfig 从嵌入资源加载相机参数
//
// 参数：
//   - path: 配置文件路径（如 "data/camera.yaml"）
func LoadCameraConfig(path string) (CameraConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return DefaultCameraConfig(), fmt.Errorf("failed to read camera config %s: %w", path, err)
	}
	return ParseCameraConfig(data)
}

// Validate 校验参数之间的约束关系
func (c CameraConfig) Validate() error {
	if c.MinScale <= 0 {
		return fmt.Errorf("minScale must be positive, got %v", c.MinScale)
	}
	if c.MaxScale < c.MinScale {
		return fmt.Errorf("maxScale (%v) must be >= minScale (%v)", c.MaxScale, c.MinScale)
	}
	if c.FlyInScale <= 0 {
		return fmt.Errorf("flyInScale must be positive, got %v", c.FlyInScale)
	}
	if c.WheelSensitivity <= 0 {
		return fmt.Errorf("wheelSensitivity must be positive, got %v", c.WheelSensitivity)
	}
	if c.PinchSensitivity <= 0 {
		return fmt.Errorf("pinchSensitivity must be positive, got %v", c.PinchSensitivity)
	}
	if c.TransitionSeconds <= 0 {
		return fmt.Errorf("transitionSeconds must be positive, got %v", c.TransitionSeconds)
	}
	if c.NavigationDelaySeconds < 0 || c.NavigationDelaySeconds > c.TransitionSeconds {
		return fmt.Errorf("navigationDelaySeconds (%v) must be in [0, transitionSeconds=%v]",
			c.NavigationDelaySeconds, c.TransitionSeconds)
	}
	if c.InitialScale < c.MinScale || c.InitialScale > c.MaxScale {
		return fmt.Errorf("initialScale (%v) must be in [minScale=%v, maxScale=%v]",
			c.InitialScale, c.MinScale, c.MaxScale)
	}
	return nil
}
