// Package camera 实现太阳系地图的相机控制器
//
// 相机状态是一个二维仿射变换（平移 + 等比缩放），由统一的手势状态机
// 驱动：鼠标拖动 / 单指拖动平移，滚轮 / 双指缩放，点击行星标记触发
// 飞入动画并跳转详情页。
//
// 坐标约定（与变换字符串 translate(offset) scale(scale) 对应）：
//
//	screenX = baseX + offsetX + originX + scale*(worldX - originX)
//
// 其中 (baseX, baseY) 是视口中心，(originX, originY) 是世界节点自身的
// 半宽/半高（变换的锚点）。纯数学部分（正反变换、钳制、缓动）独立成
// 函数，便于脱离窗口环境做单元测试。
package camera

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// State 相机状态：作用于世界节点的平移量与等比缩放
//
// 不变量：非飞入状态下 MinScale ≤ Scale ≤ MaxScale（由 Controller 的
// 缩放操作钳制维护）；飞入动画允许 Scale 超出上限到 FlyInScale。
type State struct {
	// OffsetX / OffsetY 平移量（屏幕像素）
	OffsetX float64
	// OffsetY 见 OffsetX
	OffsetY float64
	// Scale 等比缩放系数
	Scale float64
}

// TransformStyle 返回 CSS 风格的 2D 变换字符串
// 纯函数：同一状态多次调用返回完全相同的字符串
func (s State) TransformStyle() string {
	return fmt.Sprintf("translate(%.2fpx, %.2fpx) scale(%.3f)", s.OffsetX, s.OffsetY, s.Scale)
}

// GeoM 返回当前状态对应的 Ebitengine 仿射矩阵
// 世界坐标 (worldX, worldY) 经此矩阵映射到屏幕坐标
func (s State) GeoM(baseX, baseY, originX, originY float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-originX, -originY)
	m.Scale(s.Scale, s.Scale)
	m.Translate(baseX+s.OffsetX+originX, baseY+s.OffsetY+originY)
	return m
}

// ScreenFromWorld 把世界坐标映射到屏幕坐标（GeoM 的标量版本）
func ScreenFromWorld(worldX, worldY float64, st State, baseX, baseY, originX, originY float64) (float64, float64) {
	sx := baseX + st.OffsetX + originX + st.Scale*(worldX-originX)
	sy := baseY + st.OffsetY + originY + st.Scale*(worldY-originY)
	return sx, sy
}

// WorldFromScreen 反解当前变换，求屏幕点对应的未变换世界坐标
//
// 必须使用点击时刻生效的缩放值，而不是飞入目标缩放。
// Scale 由 MinScale 钳制保证不为零。
func WorldFromScreen(screenX, screenY float64, st State, baseX, baseY, originX, originY float64) (float64, float64) {
	wx := originX + (screenX-baseX-st.OffsetX-originX)/st.Scale
	wy := originY + (screenY-baseY-st.OffsetY-originY)/st.Scale
	return wx, wy
}

// FlightTarget 计算飞入动画的终点平移量
//
// 终点状态使世界锚点 (worldX, worldY) 以 targetScale 渲染到视口水平
// 中心、垂直中心上方 verticalOffset 像素处。
func FlightTarget(worldX, worldY, originX, originY, targetScale, verticalOffset float64) (offsetX, offsetY float64) {
	offsetX = -(targetScale*(worldX-originX) + originX)
	offsetY = -(targetScale*(worldY-originY)+originY) - verticalOffset
	return offsetX, offsetY
}

// clampScale 把缩放值钳制到 [minScale, maxScale]
func clampScale(scale, minScale, maxScale float64) float64 {
	if scale < minScale {
		return minScale
	}
	if scale > maxScale {
		return maxScale
	}
	return scale
}

// easeInOutCubic 三次缓动曲线，t ∈ [0, 1]
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// lerpState 在两个相机状态之间线性插值
func lerpState(from, to State, t float64) State {
	return State{
		OffsetX: from.OffsetX + (to.OffsetX-from.OffsetX)*t,
		OffsetY: from.OffsetY + (to.OffsetY-from.OffsetY)*t,
		Scale:   from.Scale + (to.Scale-from.Scale)*t,
	}
}
