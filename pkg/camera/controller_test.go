package camera

import (
	"math"
	"testing"

	"github.com/macsandoval1999/solarsys-expedition/pkg/config"
)

const (
	testViewportW = 960
	testViewportH = 640
	testWorldW    = 2000
	testWorldH    = 2000
)

// newTestController 用默认参数构造控制器，markers 可选
func newTestController(t *testing.T, markers ...*Marker) *Controller {
	t.Helper()
	c := NewController(config.DefaultCameraConfig(), testViewportW, testViewportH, testWorldW, testWorldH, nil)
	if c.Disabled() {
		t.Fatal("controller unexpectedly disabled")
	}
	c.SetMarkers(markers)
	return c
}

// step 推进一帧（60fps）
func step(c *Controller, snap PointerSnapshot) {
	c.Update(snap, 1.0/60.0)
}

// mouseAt 构造鼠标按下/抬起的快照
func mouseAt(down bool, x, y float64) PointerSnapshot {
	return PointerSnapshot{MouseDown: down, MouseX: x, MouseY: y}
}

// centerMarker 返回一个渲染在视口中心的标记
// 默认相机（偏移 -1000/-1000，缩放 1）下，世界原点 (1000, 1000) 即视口中心
func centerMarker(id string) *Marker {
	return &Marker{ID: id, WorldX: 1000, WorldY: 1000, Radius: 40}
}

// TestWheelZoomSaturates 场景：重复滚轮缩放在上限饱和
//
// scale=1，每次滚轮增量 +0.5，重复 10 次，缩放必须停在 3 而不是更高。
func TestWheelZoomSaturates(t *testing.T) {
	c := newTestController(t)

	// 默认滚轮灵敏度 0.1：WheelY=5 相当于 +0.5 缩放
	for i := 0; i < 10; i++ {
		step(c, PointerSnapshot{WheelY: 5})
	}

	if got := c.State().Scale; got != 3.0 {
		t.Errorf("scale after repeated wheel zoom = %v, expected saturation at 3.0", got)
	}
}

// TestClampInvariant 任意滚轮/双指序列后缩放始终在边界内
func TestClampInvariant(t *testing.T) {
	c := newTestController(t)
	cfg := config.DefaultCameraConfig()

	deltas := []float64{0.5, -2, 10, -10, 0.01, 4, -0.7, 100, -100, 0.3}
	for _, d := range deltas {
		c.ZoomBy(d)
		s := c.State().Scale
		if s < cfg.MinScale || s > cfg.MaxScale {
			t.Fatalf("scale %v escaped [%v, %v] after delta %v", s, cfg.MinScale, cfg.MaxScale, d)
		}
	}
}

// TestPanAdditive 平移累加：一次 (dx, dy) 等于任意拆分后的多次
func TestPanAdditive(t *testing.T) {
	whole := newTestController(t)
	split := newTestController(t)

	whole.Pan(37.5, -12.25)
	split.Pan(20, -20)
	split.Pan(17.5, 7.75)

	a, b := whole.State(), split.State()
	if math.Abs(a.OffsetX-b.OffsetX) > floatTolerance || math.Abs(a.OffsetY-b.OffsetY) > floatTolerance {
		t.Errorf("split pan diverged: (%v, %v) vs (%v, %v)", a.OffsetX, a.OffsetY, b.OffsetX, b.OffsetY)
	}
}

// TestDragPans 拖动序列逐帧累加偏移
func TestDragPans(t *testing.T) {
	c := newTestController(t)
	start := c.State()

	step(c, mouseAt(true, 100, 100)) // 空白处按下：进入拖动
	step(c, mouseAt(true, 130, 90))
	step(c, mouseAt(true, 150, 95))
	step(c, mouseAt(false, 150, 95)) // 松开：回到空闲

	got := c.State()
	if got.OffsetX-start.OffsetX != 50 || got.OffsetY-start.OffsetY != -5 {
		t.Errorf("drag delta = (%v, %v), expected (50, -5)",
			got.OffsetX-start.OffsetX, got.OffsetY-start.OffsetY)
	}
	if c.IsFlying() {
		t.Error("drag must not start a flight")
	}

	// 松开后移动鼠标不再平移
	step(c, mouseAt(false, 500, 500))
	if c.State() != got {
		t.Error("camera moved after drag ended")
	}
}

// TestClickEmptySpaceNeverFlies 场景：点击空白处不进入飞入也不改相机
func TestClickEmptySpaceNeverFlies(t *testing.T) {
	c := newTestController(t, centerMarker("mars"))
	start := c.State()

	// 远离标记的位置按下立刻松开
	step(c, mouseAt(true, 50, 50))
	step(c, mouseAt(false, 50, 50))

	if c.IsFlying() {
		t.Fatal("click on empty space must not start a flight")
	}
	if c.State() != start {
		t.Errorf("camera changed by a bare click: %+v vs %+v", c.State(), start)
	}
}

// TestMarkerClickStartsFlight 点击标记触发飞入与延迟跳转
func TestMarkerClickStartsFlight(t *testing.T) {
	m := centerMarker("mars")
	var navigated []string
	c := NewController(config.DefaultCameraConfig(), testViewportW, testViewportH, testWorldW, testWorldH,
		func(planetID string) { navigated = append(navigated, planetID) })
	c.SetMarkers([]*Marker{m})

	// 标记渲染在视口中心 (480, 320)
	step(c, mouseAt(true, 480, 320))
	step(c, mouseAt(false, 480, 320))

	if !c.IsFlying() {
		t.Fatal("click on marker should start a flight")
	}
	if !m.Targeted {
		t.Error("clicked marker should be marked as targeted")
	}
	if len(navigated) != 0 {
		t.Fatal("navigation must not fire before the configured delay")
	}

	// 推进到跳转延迟（2.4s）之后
	for i := 0; i < 150; i++ { // 2.5s
		step(c, PointerSnapshot{})
	}
	if len(navigated) != 1 || navigated[0] != "mars" {
		t.Fatalf("navigated = %v, expected exactly one navigation to mars", navigated)
	}

	// 定时动作只发一次
	for i := 0; i < 120; i++ {
		step(c, PointerSnapshot{})
	}
	if len(navigated) != 1 {
		t.Errorf("navigation fired %d times, expected 1", len(navigated))
	}
}

// TestFlightReachesComputedTarget 飞入动画收敛到计算出的终点状态
func TestFlightReachesComputedTarget(t *testing.T) {
	m := centerMarker("venus")
	c := newTestController(t, m)
	cfg := config.DefaultCameraConfig()

	c.Focus(m)

	// 推进到动画结束之后
	for i := 0; i < 240; i++ { // 4s > 3s
		step(c, PointerSnapshot{})
	}

	end := c.State()
	if math.Abs(end.Scale-cfg.FlyInScale) > floatTolerance {
		t.Errorf("final scale = %v, expected fly-in scale %v", end.Scale, cfg.FlyInScale)
	}

	// 终点状态必须把标记渲染到视口中心上方 VerticalOffset 处
	sx, sy := c.ScreenPos(m)
	if math.Abs(sx-testViewportW/2) > 1e-6 {
		t.Errorf("marker screen x = %v, expected %v", sx, float64(testViewportW)/2)
	}
	if math.Abs(sy-(testViewportH/2-cfg.VerticalOffset)) > 1e-6 {
		t.Errorf("marker screen y = %v, expected %v", sy, testViewportH/2-cfg.VerticalOffset)
	}
}

// TestFlyingFreezesInput 状态互斥：飞入中所有平移/缩放/聚焦都是无操作
func TestFlyingFreezesInput(t *testing.T) {
	m := centerMarker("mars")
	other := &Marker{ID: "jupiter", WorldX: 1600, WorldY: 1000, Radius: 60}
	c := newTestController(t, m, other)

	c.Focus(m)
	if !c.IsFlying() {
		t.Fatal("Focus should enter flying state")
	}

	frozen := c.State()
	c.Pan(100, 100)
	c.ZoomBy(1.5)
	c.Focus(other)

	if c.State() != frozen {
		t.Errorf("camera state changed while flying: %+v vs %+v", c.State(), frozen)
	}
	if other.Targeted {
		t.Error("second focus while flying must be ignored")
	}
}

// TestFocusWithoutIdentifier 没有标识符的标记（如太阳）点击无操作
func TestFocusWithoutIdentifier(t *testing.T) {
	sun := centerMarker("")
	c := newTestController(t, sun)
	start := c.State()

	step(c, mouseAt(true, 480, 320))
	step(c, mouseAt(false, 480, 320))

	if c.IsFlying() {
		t.Fatal("marker without identifier must not start a flight")
	}
	if sun.Targeted {
		t.Error("marker without identifier must not be targeted")
	}
	if c.State() != start {
		t.Error("camera changed by focusing an unidentified marker")
	}

	c.Focus(nil) // nil 标记同样无操作
	if c.IsFlying() {
		t.Error("Focus(nil) must be a no-op")
	}
}

// TestPressOnMarkerDoesNotPan 按在标记上的拖动不平移，移出后松开不点击
func TestPressOnMarkerDoesNotPan(t *testing.T) {
	m := centerMarker("mars")
	c := newTestController(t, m)
	start := c.State()

	step(c, mouseAt(true, 480, 320)) // 按在标记上
	step(c, mouseAt(true, 700, 500)) // 拖离标记
	step(c, mouseAt(false, 700, 500))

	if c.State() != start {
		t.Error("press originating on a marker must not pan the camera")
	}
	if c.IsFlying() {
		t.Error("release off the marker must not count as a click")
	}
}

// TestPinchZoomsAndTracksClamp 双指缩放：钳制期间参考距离持续更新
func TestPinchZoomsAndTracksClamp(t *testing.T) {
	c := newTestController(t)

	twoTouches := func(d float64) PointerSnapshot {
		return PointerSnapshot{Touches: []TouchPoint{
			{ID: 1, X: 100, Y: 100},
			{ID: 2, X: 100 + d, Y: 100},
		}}
	}

	step(c, twoTouches(100)) // 播种参考距离
	// 间距暴涨：1 + 900*0.005 = 5.5，钳制到 3
	step(c, twoTouches(1000))
	if got := c.State().Scale; got != 3.0 {
		t.Fatalf("scale = %v, expected clamp at 3.0", got)
	}

	// 参考距离必须已跟到 1000：缩回 100 像素立即生效，
	// 而不是先消化钳制期间"欠下"的增量
	step(c, twoTouches(900))
	if got := c.State().Scale; math.Abs(got-2.5) > floatTolerance {
		t.Errorf("scale after pinch-in = %v, expected 2.5 (no stuck jump)", got)
	}
}

// TestPinchToSingleTouchReseeds 场景：双指变单指，拖动参考重新播种
func TestPinchToSingleTouchReseeds(t *testing.T) {
	c := newTestController(t)

	step(c, PointerSnapshot{Touches: []TouchPoint{
		{ID: 1, X: 100, Y: 100},
		{ID: 2, X: 200, Y: 100},
	}})
	before := c.State()

	// 抬起一指：剩余触点的当前位置成为新的拖动参考，本帧不平移
	step(c, PointerSnapshot{Touches: []TouchPoint{{ID: 2, X: 150, Y: 120}}})
	if c.State() != before {
		t.Fatal("transition from pinch to drag must not pan by itself")
	}

	// 下一帧的移动按新参考计算增量：没有旧参考导致的跳变
	step(c, PointerSnapshot{Touches: []TouchPoint{{ID: 2, X: 160, Y: 130}}})
	got := c.State()
	if got.OffsetX-before.OffsetX != 10 || got.OffsetY-before.OffsetY != 10 {
		t.Errorf("pan delta = (%v, %v), expected (10, 10)",
			got.OffsetX-before.OffsetX, got.OffsetY-before.OffsetY)
	}
}

// TestSecondTouchCancelsClickCandidate 第二触点出现时清除点击候选
func TestSecondTouchCancelsClickCandidate(t *testing.T) {
	m := centerMarker("mars")
	c := newTestController(t, m)

	// 单指按在标记上
	step(c, PointerSnapshot{Touches: []TouchPoint{{ID: 1, X: 480, Y: 320}}})
	// 第二指落下：双指优先
	step(c, PointerSnapshot{Touches: []TouchPoint{
		{ID: 1, X: 480, Y: 320},
		{ID: 2, X: 520, Y: 320},
	}})
	// 全部抬起
	step(c, PointerSnapshot{})
	step(c, PointerSnapshot{})

	if c.IsFlying() {
		t.Error("click candidate must be cleared when a pinch starts")
	}
}

// TestDisabledController 配置错误（尺寸非法）时所有操作无效
func TestDisabledController(t *testing.T) {
	m := centerMarker("mars")
	c := NewController(config.DefaultCameraConfig(), 0, 0, testWorldW, testWorldH, nil)
	if !c.Disabled() {
		t.Fatal("controller with zero viewport should be disabled")
	}
	c.SetMarkers([]*Marker{m})
	start := c.State()

	c.Pan(10, 10)
	c.ZoomBy(1)
	c.Focus(m)
	step(c, mouseAt(true, 100, 100))
	step(c, mouseAt(true, 200, 200))

	if c.State() != start {
		t.Error("disabled controller must ignore every operation")
	}
	if c.IsFlying() || m.Targeted {
		t.Error("disabled controller must not start a flight")
	}
}

// TestMarkerAt 命中检测考虑缩放后的半径
func TestMarkerAt(t *testing.T) {
	m := centerMarker("mars")
	c := newTestController(t, m)

	if c.MarkerAt(480, 320) != m {
		t.Error("marker should be hit at its screen anchor")
	}
	// 半径 40 + 点击扩展 6：47 像素外不命中
	if c.MarkerAt(480+47.5, 320) != nil {
		t.Error("hit test should miss outside the scaled radius")
	}

	// 缩小一半后命中半径等比缩小
	c.ZoomBy(-0.5)
	if c.MarkerAt(480, 320) != m {
		t.Error("marker should still be hit at its anchor after zoom out")
	}
}
