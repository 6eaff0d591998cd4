package embedded

import (
	"embed"
	"strings"
	"testing"
)

//go:embed testdata
var testFS embed.FS

// TestReadFileNotInitialized 测试未初始化时读取文件返回错误
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false
	defer func() { initialized = false }()

	_, err := ReadFile("data/planets.yaml")
	if err == nil {
		t.Fatal("ReadFile() should fail when package is not initialized")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestReadFileUnknownPrefix 测试未知路径前缀返回错误
func TestReadFileUnknownPrefix(t *testing.T) {
	Init(testFS)
	defer func() { initialized = false }()

	_, err := ReadFile("assets/background.png")
	if err == nil {
		t.Fatal("ReadFile() should reject paths outside data/")
	}
}

// TestNormalize 测试路径标准化
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Plain path", "data/planets.yaml", "data/planets.yaml"},
		{"Dot-slash prefix", "./data/planets.yaml", "data/planets.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.path); got != tt.expected {
				t.Errorf("normalize(%q) = %q, expected %q", tt.path, got, tt.expected)
			}
		})
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	initialized = false
	if Exists("data/planets.yaml") {
		t.Error("Exists() should return false before initialization")
	}

	Init(testFS)
	defer func() { initialized = false }()

	if Exists("data/missing.yaml") {
		t.Error("Exists() should return false for a missing file")
	}
}
