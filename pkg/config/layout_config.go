package config

// 布局计算
// 所有坐标为屏幕坐标，原点在左上角，y 轴向下

// PaddleSide 球拍位于哪一侧
type PaddleSide int

const (
	// SideLeft 左侧球拍
	SideLeft PaddleSide = iota
	// SideRight 右侧球拍
	SideRight
)

// String 返回侧别名称，用于日志
func (s PaddleSide) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Rect 轴对齐矩形，(X, Y) 为左上角
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内
// 左、上边界属于矩形，右、下边界不属于
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PaddleX 返回球拍的固定 X 坐标
func (c *GameConfig) PaddleX(side PaddleSide, screenWidth float64) float64 {
	if side == SideLeft {
		return c.Paddle.Margin
	}
	return screenWidth - c.Paddle.Margin - c.Paddle.Width
}

// PaddleStartY 返回球拍的初始 Y 坐标（垂直居中）
func (c *GameConfig) PaddleStartY(screenHeight float64) float64 {
	return screenHeight/2 - c.Paddle.Height/2
}

// CloseButtonRect 返回关闭按钮的点击区域
// 叉号锚定在右上角，与其他元素无关
func (c *GameConfig) CloseButtonRect(screenWidth float64) Rect {
	size := c.CloseButton.Size
	return Rect{
		X: screenWidth - size - c.CloseButton.Margin,
		Y: c.CloseButton.Margin,
		W: size,
		H: size,
	}
}

// ScoreTextX 返回比分文字的 X 坐标，使文字水平居中
func ScoreTextX(screenWidth, textWidth float64) float64 {
	return screenWidth/2 - textWidth/2
}
