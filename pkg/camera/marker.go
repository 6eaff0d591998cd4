package camera

import "math"

// MarkerClickPadding 标记点击区域的额外扩展（屏幕像素）
// 让小行星在缩小视图下仍然容易点中
const MarkerClickPadding = 6.0

// Marker 行星标记：控制器只读取它的几何信息，从不移动它
//
// ID 为空表示该标记不可导航（如太阳），点击它是无操作。
// Targeted 是纯展示性标志，飞入开始前置位，供渲染层绘制选中效果。
type Marker struct {
	// ID 行星标识符，用于构造详情页路由；空字符串表示不可导航
	ID string
	// WorldX / WorldY 标记锚点的世界坐标（未变换）
	WorldX float64
	WorldY float64
	// Radius 标记半径（世界单位），随相机缩放
	Radius float64
	// Targeted 被点击选中后置位
	Targeted bool
}

// hitTest 判断屏幕点 (x, y) 是否落在标记的当前渲染范围内
// 标记的屏幕矩形由当前相机变换推导
func (m *Marker) hitTest(x, y float64, st State, baseX, baseY, originX, originY float64) bool {
	sx, sy := ScreenFromWorld(m.WorldX, m.WorldY, st, baseX, baseY, originX, originY)
	r := m.Radius*st.Scale + MarkerClickPadding
	return math.Hypot(x-sx, y-sy) <= r
}
