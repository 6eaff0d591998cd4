package scenes

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
)

// fontFace 返回指定字号的内置字体
// 字体源从 gofont 的字节数据延迟构造一次，各场景共享
func fontFace(size float64) *text.GoTextFace {
	fontSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// 内置字体解析失败只可能是字体数据损坏，记录后降级为 nil
			// （text.Draw 对 nil face 是无操作）
			log.Printf("[Scenes] Warning: failed to parse bundled font: %v", err)
			return
		}
		fontSource = src
	})

	if fontSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}

// textWidth 返回字符串以给定字体渲染的像素宽度
func textWidth(s string, face *text.GoTextFace) float64 {
	if face == nil {
		return 0
	}
	return text.Advance(s, face)
}
