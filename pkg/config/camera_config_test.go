package config

import (
	"strings"
	"testing"
)

// TestDefaultCameraConfig 测试默认相机参数合法
func TestDefaultCameraConfig(t *testing.T) {
	cfg := DefaultCameraConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultCameraConfig() is invalid: %v", err)
	}

	// 验证缩放边界默认值
	if cfg.MinScale != 0.4 {
		t.Errorf("MinScale: got %v, want 0.4", cfg.MinScale)
	}
	if cfg.MaxScale != 3.0 {
		t.Errorf("MaxScale: got %v, want 3.0", cfg.MaxScale)
	}

	// 飞入缩放允许超过 MaxScale（这是飞入动画的例外）
	if cfg.FlyInScale <= cfg.MaxScale {
		t.Errorf("FlyInScale (%v) should exceed MaxScale (%v) by default", cfg.FlyInScale, cfg.MaxScale)
	}

	// 跳转延迟必须不晚于动画结束
	if cfg.NavigationDelaySeconds > cfg.TransitionSeconds {
		t.Errorf("NavigationDelaySeconds (%v) must be <= TransitionSeconds (%v)",
			cfg.NavigationDelaySeconds, cfg.TransitionSeconds)
	}

	// 初始平移量应使世界中心对准视口中心
	if cfg.InitialOffsetX != -WorldWidth/2 || cfg.InitialOffsetY != -WorldHeight/2 {
		t.Errorf("initial offset: got (%v, %v), want (%v, %v)",
			cfg.InitialOffsetX, cfg.InitialOffsetY, -WorldWidth/2, -WorldHeight/2)
	}
}

// TestCameraConfigValidate 测试参数校验规则
func TestCameraConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CameraConfig)
		wantErr string
	}{
		{"Zero min scale", func(c *CameraConfig) { c.MinScale = 0 }, "minScale"},
		{"Negative min scale", func(c *CameraConfig) { c.MinScale = -1 }, "minScale"},
		{"Max below min", func(c *CameraConfig) { c.MaxScale = 0.1 }, "maxScale"},
		{"Zero fly-in scale", func(c *CameraConfig) { c.FlyInScale = 0 }, "flyInScale"},
		{"Zero wheel sensitivity", func(c *CameraConfig) { c.WheelSensitivity = 0 }, "wheelSensitivity"},
		{"Zero pinch sensitivity", func(c *CameraConfig) { c.PinchSensitivity = 0 }, "pinchSensitivity"},
		{"Zero transition", func(c *CameraConfig) { c.TransitionSeconds = 0 }, "transitionSeconds"},
		{"Negative navigation delay", func(c *CameraConfig) { c.NavigationDelaySeconds = -0.1 }, "navigationDelaySeconds"},
		{"Navigation delay after transition", func(c *CameraConfig) { c.NavigationDelaySeconds = 99 }, "navigationDelaySeconds"},
		{"Initial scale below min", func(c *CameraConfig) { c.InitialScale = 0.1 }, "initialScale"},
		{"Initial scale above max", func(c *CameraConfig) { c.InitialScale = 10 }, "initialScale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCameraConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestParseCameraConfig 测试 YAML 解析与默认值合并
func TestParseCameraConfig(t *testing.T) {
	yamlData := []byte(`
minScale: 0.5
maxScale: 2.5
wheelSensitivity: 0.2
`)
	cfg, err := ParseCameraConfig(yamlData)
	if err != nil {
		t.Fatalf("ParseCameraConfig() error: %v", err)
	}

	if cfg.MinScale != 0.5 {
		t.Errorf("MinScale: got %v, want 0.5", cfg.MinScale)
	}
	if cfg.MaxScale != 2.5 {
		t.Errorf("MaxScale: got %v, want 2.5", cfg.MaxScale)
	}
	if cfg.WheelSensitivity != 0.2 {
		t.Errorf("WheelSensitivity: got %v, want 0.2", cfg.WheelSensitivity)
	}

	// 未指定的字段保留默认值
	def := DefaultCameraConfig()
	if cfg.TransitionSeconds != def.TransitionSeconds {
		t.Errorf("TransitionSeconds: got %v, want default %v", cfg.TransitionSeconds, def.TransitionSeconds)
	}
}

// TestParseCameraConfigInvalid 测试非法 YAML 与非法取值
func TestParseCameraConfigInvalid(t *testing.T) {
	if _, err := ParseCameraConfig([]byte("minScale: [not a number]")); err == nil {
		t.Error("ParseCameraConfig() should fail on malformed yaml")
	}
	if _, err := ParseCameraConfig([]byte("minScale: -3")); err == nil {
		t.Error("ParseCameraConfig() should fail validation on negative minScale")
	}
}
