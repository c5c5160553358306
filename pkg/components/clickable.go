package components

// ClickableComponent 标记实体可以被鼠标点击
//
// 点击区域以 PositionComponent 为左上角。
// 对关闭按钮而言，渲染系统每次绘制时都会刷新位置和尺寸，
// 点击检测总是使用最近一次绘制的区域。
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击
}
