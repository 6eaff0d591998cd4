package camera

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/macsandoval1999/solarsys-expedition/pkg/config"
)

// gestureState 手势状态机的状态
// 同一时刻只有一个状态生效，消除了布尔标志组合出的非法状态
// （比如"同时拖动和双指缩放"）
type gestureState int

const (
	// stateIdle 空闲：没有进行中的手势
	stateIdle gestureState = iota
	// statePanning 单指/鼠标拖动平移中
	statePanning
	// statePinching 双指缩放中
	statePinching
	// stateFlying 飞入动画中：所有输入被忽略，唯一出口是页面跳转
	stateFlying
)

// TouchPoint 一个活动触摸点的当前位置
type TouchPoint struct {
	ID int
	X  float64
	Y  float64
}

// PointerSnapshot 一帧的指针输入快照
//
// 控制器只消费快照，不直接轮询窗口系统，这样手势状态机可以在没有
// 窗口环境的单元测试里驱动。快照由 utils.ReadPointer() 每帧构造。
type PointerSnapshot struct {
	// MouseDown 鼠标主键是否按下
	MouseDown bool
	// MouseX / MouseY 鼠标光标位置
	MouseX float64
	MouseY float64
	// WheelY 本帧滚轮增量（向上为正）
	WheelY float64
	// Touches 当前所有活动触摸点
	Touches []TouchPoint
}

// NavigateFunc 飞入延迟结束后执行的跳转动作
// 参数是被点击标记的行星标识符
type NavigateFunc func(planetID string)

// flight 飞入动画的进度记录
type flight struct {
	marker    *Marker
	from      State
	to        State
	elapsed   float64
	navigated bool
}

// Controller 相机控制器
//
// 持有相机状态并集中维护它的不变量：缩放钳制在每次更新时执行，
// 飞入状态互斥地冻结其余输入。渲染层只通过 GeoM()/TransformStyle()
// 读取变换，不直接改字段。
type Controller struct {
	cfg      config.CameraConfig
	cam      State
	state    gestureState
	disabled bool

	// baseX / baseY 视口中心，originX / originY 世界节点半宽/半高
	baseX, baseY     float64
	originX, originY float64

	markers []*Marker

	// 拖动参考点（正在进行的拖动的上一帧指针位置）
	lastX, lastY float64
	// 双指参考距离。无论缩放是否被钳制都持续更新，
	// 避免缩放回到边界内时出现跳变
	lastDist float64
	// 按下时落在标记上的候选点击（松开仍在同一标记上才触发飞入）
	pressMarker *Marker

	// 上一帧的主指针状态，用于检测按下/松开边沿
	prevDown bool
	prevX    float64
	prevY    float64

	flight   flight
	navigate NavigateFunc
}

// NewController 创建相机控制器
//
// viewportW/viewportH 是视口（容器）尺寸，worldW/worldH 是世界节点的
// 未变换尺寸。任一尺寸非正视为配置错误：记录警告并禁用控制器，
// 之后所有操作都是无操作，不抛出异常。
func NewController(cfg config.CameraConfig, viewportW, viewportH, worldW, worldH float64, navigate NavigateFunc) *Controller {
	c := &Controller{
		cfg: cfg,
		cam: State{
			OffsetX: cfg.InitialOffsetX,
			OffsetY: cfg.InitialOffsetY,
			Scale:   cfg.InitialScale,
		},
		state:    stateIdle,
		baseX:    viewportW / 2,
		baseY:    viewportH / 2,
		originX:  worldW / 2,
		originY:  worldH / 2,
		navigate: navigate,
	}

	if viewportW <= 0 || viewportH <= 0 || worldW <= 0 || worldH <= 0 {
		log.Printf("[CameraController] Warning: invalid viewport (%vx%v) or world (%vx%v) size, controller disabled",
			viewportW, viewportH, worldW, worldH)
		c.disabled = true
	}

	return c
}

// SetMarkers 设置可点击的行星标记集合
// 控制器只读取标记几何，不修改它们的位置
func (c *Controller) SetMarkers(markers []*Marker) {
	c.markers = markers
}

// State 返回当前相机状态
func (c *Controller) State() State {
	return c.cam
}

// IsFlying 返回飞入动画是否进行中
// 渲染层用它切换"飞行中"的展示效果
func (c *Controller) IsFlying() bool {
	return c.state == stateFlying
}

// Disabled 返回控制器是否因配置错误被禁用
func (c *Controller) Disabled() bool {
	return c.disabled
}

// GeoM 返回应用到世界节点的仿射矩阵
func (c *Controller) GeoM() ebiten.GeoM {
	return c.cam.GeoM(c.baseX, c.baseY, c.originX, c.originY)
}

// TransformStyle 返回当前变换的字符串形式（调试 HUD 用）
func (c *Controller) TransformStyle() string {
	return c.cam.TransformStyle()
}

// ScreenPos 返回标记锚点的当前屏幕坐标
func (c *Controller) ScreenPos(m *Marker) (float64, float64) {
	return ScreenFromWorld(m.WorldX, m.WorldY, c.cam, c.baseX, c.baseY, c.originX, c.originY)
}

// MarkerAt 返回屏幕点 (x, y) 命中的标记，没有命中返回 nil
// 多个标记重叠时返回先注册的那个
func (c *Controller) MarkerAt(x, y float64) *Marker {
	for _, m := range c.markers {
		if m.hitTest(x, y, c.cam, c.baseX, c.baseY, c.originX, c.originY) {
			return m
		}
	}
	return nil
}

// Pan 平移相机（像素增量）
// 累加式：长距离拖动不会丢失精度。飞入中或禁用时无操作
func (c *Controller) Pan(dx, dy float64) {
	if c.disabled || c.state == stateFlying {
		return
	}
	c.cam.OffsetX += dx
	c.cam.OffsetY += dy
}

// ZoomBy 调整缩放（增量），每次更新都钳制到 [MinScale, MaxScale]
// 飞入中或禁用时无操作
func (c *Controller) ZoomBy(delta float64) {
	if c.disabled || c.state == stateFlying {
		return
	}
	c.cam.Scale = clampScale(c.cam.Scale+delta, c.cfg.MinScale, c.cfg.MaxScale)
}

// Focus 启动对标记的飞入动画
//
// 反解当前变换得到标记的世界锚点，再计算目标缩放下使锚点居中
// （垂直方向上移 VerticalOffset）的终点平移量。飞入开始后输入被
// 冻结，NavigationDelaySeconds 后执行一次跳转。
//
// 没有标识符的标记、已在飞入中、控制器被禁用：都是无操作。
func (c *Controller) Focus(m *Marker) {
	if c.disabled || c.state == stateFlying {
		return
	}
	if m == nil || m.ID == "" {
		return
	}

	// 读取标记当前的屏幕位置，用点击时刻的缩放反解世界锚点
	screenX, screenY := c.ScreenPos(m)
	worldX, worldY := WorldFromScreen(screenX, screenY, c.cam, c.baseX, c.baseY, c.originX, c.originY)

	offsetX, offsetY := FlightTarget(worldX, worldY, c.originX, c.originY, c.cfg.FlyInScale, c.cfg.VerticalOffset)

	// 展示性标志在变换改变之前切换，渲染层可以立即响应
	m.Targeted = true
	c.state = stateFlying
	c.pressMarker = nil
	c.flight = flight{
		marker: m,
		from:   c.cam,
		to:     State{OffsetX: offsetX, OffsetY: offsetY, Scale: c.cfg.FlyInScale},
	}

	log.Printf("[CameraController] Focus on %q: world anchor (%.1f, %.1f), flying to %s",
		m.ID, worldX, worldY, c.flight.to.TransformStyle())
}

// Update 处理一帧输入并推进飞入动画
// dt 是自上一帧经过的秒数
func (c *Controller) Update(snap PointerSnapshot, dt float64) {
	if c.disabled {
		return
	}

	if c.state == stateFlying {
		c.advanceFlight(dt)
		return
	}

	switch c.state {
	case stateIdle:
		c.updateIdle(snap)
	case statePanning:
		c.updatePanning(snap)
	case statePinching:
		c.updatePinching(snap)
	}

	// 滚轮缩放对所有非飞入状态生效
	if snap.WheelY != 0 {
		c.ZoomBy(snap.WheelY * c.cfg.WheelSensitivity)
	}

	c.rememberPrimary(snap)
}

// updateIdle 空闲状态：检测拖动开始、双指开始和标记点击
func (c *Controller) updateIdle(snap PointerSnapshot) {
	if len(snap.Touches) >= 2 {
		c.enterPinching(snap)
		return
	}

	down, x, y := primaryPointer(snap)

	// 按下边沿
	if down && !c.prevDown {
		if m := c.MarkerAt(x, y); m != nil {
			// 按在标记上：保留为点击候选，不进入拖动
			c.pressMarker = m
		} else {
			c.state = statePanning
			c.lastX, c.lastY = x, y
		}
		return
	}

	// 松开边沿：在同一标记上松开才算点击
	if !down && c.prevDown && c.pressMarker != nil {
		if c.MarkerAt(c.prevX, c.prevY) == c.pressMarker {
			c.Focus(c.pressMarker)
		}
		c.pressMarker = nil
	}
}

// updatePanning 拖动状态：累加增量，检测双指接入和拖动结束
func (c *Controller) updatePanning(snap PointerSnapshot) {
	if len(snap.Touches) >= 2 {
		// 第二个触摸点出现：双指缩放优先，清除拖动参考
		c.enterPinching(snap)
		return
	}

	down, x, y := primaryPointer(snap)
	if !down {
		c.state = stateIdle
		return
	}

	c.Pan(x-c.lastX, y-c.lastY)
	c.lastX, c.lastY = x, y
}

// updatePinching 双指状态：按间距变化缩放，处理触点减少
func (c *Controller) updatePinching(snap PointerSnapshot) {
	switch len(snap.Touches) {
	case 0:
		c.state = stateIdle
	case 1:
		// 双指变单指：用剩下触点的当前位置重新播种拖动参考，
		// 不做额外的连续性处理（轻微跳动可以接受）
		c.state = statePanning
		c.lastX, c.lastY = snap.Touches[0].X, snap.Touches[0].Y
	default:
		d := touchDistance(snap.Touches[0], snap.Touches[1])
		c.ZoomBy((d - c.lastDist) * c.cfg.PinchSensitivity)
		// 参考距离无条件更新：即使缩放被钳制也持续跟踪，
		// 防止回到边界内时突跳
		c.lastDist = d
	}
}

// enterPinching 进入双指状态，清除单指拖动与点击候选
func (c *Controller) enterPinching(snap PointerSnapshot) {
	c.state = statePinching
	c.pressMarker = nil
	c.lastDist = touchDistance(snap.Touches[0], snap.Touches[1])
}

// advanceFlight 推进飞入动画并在延迟到达后跳转
func (c *Controller) advanceFlight(dt float64) {
	c.flight.elapsed += dt

	t := c.flight.elapsed / c.cfg.TransitionSeconds
	if t > 1 {
		t = 1
	}
	c.cam = lerpState(c.flight.from, c.flight.to, easeInOutCubic(t))

	// 一次性定时动作：到点必发，不可取消，也不会重入
	// （飞入状态阻止新的 Focus，跳转会销毁本场景）
	if !c.flight.navigated && c.flight.elapsed >= c.cfg.NavigationDelaySeconds {
		c.flight.navigated = true
		log.Printf("[CameraController] Navigating to planet %q", c.flight.marker.ID)
		if c.navigate != nil {
			c.navigate(c.flight.marker.ID)
		}
	}
}

// rememberPrimary 记录本帧主指针状态，供下一帧做边沿检测
func (c *Controller) rememberPrimary(snap PointerSnapshot) {
	down, x, y := primaryPointer(snap)
	c.prevDown = down
	if down {
		c.prevX, c.prevY = x, y
	}
}

// primaryPointer 解析快照的主指针：有触摸时取第一个触点，否则取鼠标
func primaryPointer(snap PointerSnapshot) (down bool, x, y float64) {
	if len(snap.Touches) > 0 {
		return true, snap.Touches[0].X, snap.Touches[0].Y
	}
	return snap.MouseDown, snap.MouseX, snap.MouseY
}

// touchDistance 两个触点之间的欧氏距离
func touchDistance(a, b TouchPoint) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
