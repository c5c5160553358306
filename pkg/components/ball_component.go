package components

// BallComponent 球的运动状态
//
// 球是一个正方形，位置由 PositionComponent 给出（左上角）。
// 对局期间 |SpeedX| 和 |SpeedY| 始终等于初始值，只有符号会在反弹或重新发球时翻转，
// 不随回合加速。
type BallComponent struct {
	// SpeedX 水平速度（像素/帧），正值向右
	SpeedX float64

	// SpeedY 垂直速度（像素/帧），正值向下
	SpeedY float64

	// Size 正方形边长（像素）
	Size float64
}
