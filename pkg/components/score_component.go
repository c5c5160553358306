package components

// ScoreComponent 计分板
// 两个非负计数器，只会因得分事件递增
type ScoreComponent struct {
	Left  int
	Right int
}
