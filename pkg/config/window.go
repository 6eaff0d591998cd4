package config

// 窗口与世界尺寸常量
// 逻辑窗口尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放

const (
	// WindowWidth is the logical width of the game window in pixels.
	WindowWidth = 960
	// WindowHeight is the logical height of the game window in pixels.
	WindowHeight = 640
)

const (
	// WorldWidth 世界节点（太阳系地图）的未变换宽度（像素）
	WorldWidth = 2000.0
	// WorldHeight 世界节点的未变换高度（像素）
	WorldHeight = 2000.0
)
