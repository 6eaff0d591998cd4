package game

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/macsandoval1999/solarsys-expedition/pkg/embedded"
)

// PlanetFact 详情页展示的一条事实（标签 + 取值）
type PlanetFact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Planet 行星目录里的一条记录
//
// 轨道参数只用于在地图上摆放标记（静态布局），不做轨道力学模拟。
type Planet struct {
	// ID 行星标识符，用于详情页路由，必须全局唯一
	ID string `yaml:"id"`
	// Name 显示名称
	Name string `yaml:"name"`
	// OrbitRadius 轨道半径（世界单位，相对太阳）
	OrbitRadius float64 `yaml:"orbitRadius"`
	// OrbitAngleDeg 标记在轨道上的初始角度（度）
	OrbitAngleDeg float64 `yaml:"orbitAngleDeg"`
	// Radius 标记半径（世界单位）
	Radius float64 `yaml:"radius"`
	// Color 十六进制颜色，形如 "#c1440e"
	Color string `yaml:"color"`
	// Blurb 详情页顶部的简介
	Blurb string `yaml:"blurb"`
	// Facts 详情页的事实列表
	Facts []PlanetFact `yaml:"facts"`
}

// PlanetCatalog 行星目录
// 从嵌入的 YAML 加载一次，之后只读；Planets() 的顺序即文件顺序
type PlanetCatalog struct {
	planets []Planet
	byID    map[string]*Planet
}

// ParsePlanetCatalog 从 YAML 字节解析行星目录并校验
func ParsePlanetCatalog(data []byte) (*PlanetCatalog, error) {
	var doc struct {
		Planets []Planet `yaml:"planets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse planet catalog: %w", err)
	}
	if len(doc.Planets) == 0 {
		return nil, fmt.Errorf("planet catalog is empty")
	}

	c := &PlanetCatalog{
		planets: doc.Planets,
		byID:    make(map[string]*Planet, len(doc.Planets)),
	}
	for i := range c.planets {
		p := &c.planets[i]
		if p.ID == "" {
			return nil, fmt.Errorf("planet #%d (%q) has no id", i, p.Name)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate planet id %q", p.ID)
		}
		if p.Radius <= 0 {
			return nil, fmt.Errorf("planet %q has non-positive radius %v", p.ID, p.Radius)
		}
		if p.OrbitRadius <= 0 {
			return nil, fmt.Errorf("planet %q has non-positive orbit radius %v", p.ID, p.OrbitRadius)
		}
		if _, err := ParseHexColor(p.Color); err != nil {
			return nil, fmt.Errorf("planet %q: %w", p.ID, err)
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

// LoadPlanetCatalog 从嵌入资源加载行星目录
//
// 参数：
//   - path: 目录文件路径（如 "data/planets.yaml"）
func LoadPlanetCatalog(path string) (*PlanetCatalog, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read planet catalog %s: %w", path, err)
	}
	return ParsePlanetCatalog(data)
}

// Planets 返回目录中的全部行星（文件顺序）
func (c *PlanetCatalog) Planets() []Planet {
	return c.planets
}

// ByID 按标识符查找行星
func (c *PlanetCatalog) ByID(id string) (*Planet, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// RGBA 返回行星的渲染颜色
// 颜色在加载时已校验过，这里不会失败
func (p *Planet) RGBA() color.RGBA {
	clr, _ := ParseHexColor(p.Color)
	return clr
}

// ParseHexColor 解析 "#rrggbb" 形式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(s) == len(hex) || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q (expected \"#rrggbb\")", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
