// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/macsandoval1999/solarsys-expedition/pkg/camera"
)

// ReadPointer 采集当前帧的指针输入快照
// 统一鼠标和多点触摸：相机控制器只消费快照，不直接轮询 Ebitengine
func ReadPointer() camera.PointerSnapshot {
	snap := camera.PointerSnapshot{}

	mx, my := ebiten.CursorPosition()
	snap.MouseX, snap.MouseY = float64(mx), float64(my)
	snap.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	_, wheelY := ebiten.Wheel()
	snap.WheelY = wheelY

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		snap.Touches = append(snap.Touches, camera.TouchPoint{
			ID: int(id),
			X:  float64(x),
			Y:  float64(y),
		})
	}

	return snap
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置（详情页按钮等一次性点击用）
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
