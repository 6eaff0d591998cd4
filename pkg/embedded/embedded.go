// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data embed.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// ReadFile 读取嵌入文件的内容
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = normalize(path)
	if !strings.HasPrefix(path, "data/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于 embed.FS 中
func Exists(path string) bool {
	if !initialized {
		return false
	}

	path = normalize(path)
	if _, err := fs.Stat(dataFS, path); err != nil {
		return false
	}
	return true
}

// normalize 标准化路径：统一分隔符为正斜杠，移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}
