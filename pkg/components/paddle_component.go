package components

import (
	"github.com/decker502/pong/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// PaddleComponent 球拍
//
// 球拍只能沿垂直方向移动，X 坐标在创建时固定。
// 不变量：0 <= Y <= 屏幕高度 - Height。移动前检查边界，越界的一步被截断到边缘，不做事后回退。
type PaddleComponent struct {
	Side config.PaddleSide

	Width  float64
	Height float64

	// Speed 每次移动的距离（像素）
	Speed float64

	// UpKey/DownKey 控制该球拍的两个按键
	UpKey   ebiten.Key
	DownKey ebiten.Key
}
