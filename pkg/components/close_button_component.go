package components

// CloseButtonComponent 右上角的叉号关闭按钮
// 不是系统窗口的标题栏按钮，而是画在画面上的两条对角线
type CloseButtonComponent struct {
	Size      float64 // 叉号边长
	Margin    float64 // 距右边缘和上边缘的距离
	Thickness float64 // 线宽
}
