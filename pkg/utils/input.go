// Package utils 提供平台层的输入适配
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind 平台事件类型
type EventKind int

const (
	// EventQuit 退出信号（窗口关闭请求）
	EventQuit EventKind = iota
	// EventPointerDown 指针按下（任意鼠标按键或触摸）
	EventPointerDown
)

// String 返回事件类型名称，用于日志
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventPointerDown:
		return "pointer-down"
	default:
		return "unknown"
	}
}

// Event 一帧内发生的平台事件
// X, Y 只对 EventPointerDown 有意义，是按下时的指针位置
type Event struct {
	Kind EventKind
	X, Y int
}

// InputSource 帧循环所需的输入能力
//
// PollEvents 返回本帧的有限事件批次（不是流），
// 同一帧内多次调用不会重复返回已经取走的事件。
type InputSource interface {
	PollEvents() []Event
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenInput 基于 ebiten 的 InputSource 实现
//
// 退出信号依赖 ebiten.SetWindowClosingHandled(true)，由 app 在启动时设置。
type EbitenInput struct{}

// NewEbitenInput 创建 ebiten 输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// PollEvents 收集本帧的全部事件
//
// 每个刚按下的鼠标按键和每个新的触摸都会产生一个独立的 EventPointerDown，
// 调用方需要逐个检查，而不是只看最后一个事件。
func (in *EbitenInput) PollEvents() []Event {
	events := make([]Event, 0, 2)

	if ebiten.IsWindowBeingClosed() {
		events = append(events, Event{Kind: EventQuit})
	}

	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			events = append(events, Event{Kind: EventPointerDown, X: x, Y: y})
		}
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, Event{Kind: EventPointerDown, X: x, Y: y})
	}

	return events
}

// IsKeyPressed 返回按键当前是否按住
func (in *EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// FakeInput 测试和无窗口运行使用的输入源
//
// Queue 中的事件在下一次 PollEvents 时一次性返回。
type FakeInput struct {
	Queue   []Event
	Pressed map[ebiten.Key]bool
}

// NewFakeInput 创建空的 FakeInput
func NewFakeInput() *FakeInput {
	return &FakeInput{Pressed: make(map[ebiten.Key]bool)}
}

// PollEvents 返回并清空事件队列
func (f *FakeInput) PollEvents() []Event {
	events := f.Queue
	f.Queue = nil
	return events
}

// IsKeyPressed 返回按键是否被标记为按住
func (f *FakeInput) IsKeyPressed(key ebiten.Key) bool {
	return f.Pressed[key]
}

// Press 标记按键为按住
func (f *FakeInput) Press(keys ...ebiten.Key) {
	for _, k := range keys {
		f.Pressed[k] = true
	}
}

// Release 释放按键
func (f *FakeInput) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(f.Pressed, k)
	}
}

// Click 追加一个指针按下事件
func (f *FakeInput) Click(x, y int) {
	f.Queue = append(f.Queue, Event{Kind: EventPointerDown, X: x, Y: y})
}

// Quit 追加一个退出事件
func (f *FakeInput) Quit() {
	f.Queue = append(f.Queue, Event{Kind: EventQuit})
}
