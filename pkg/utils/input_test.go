package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// 编译期检查两种实现都满足 InputSource
var (
	_ InputSource = (*EbitenInput)(nil)
	_ InputSource = (*FakeInput)(nil)
)

func TestFakeInputPollEventsDrains(t *testing.T) {
	f := NewFakeInput()
	f.Click(10, 20)
	f.Quit()

	events := f.PollEvents()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Kind != EventPointerDown || events[0].X != 10 || events[0].Y != 20 {
		t.Errorf("Unexpected first event: %+v", events[0])
	}
	if events[1].Kind != EventQuit {
		t.Errorf("Unexpected second event: %+v", events[1])
	}

	// 批次是有限的：第二次调用不会返回同样的事件
	if again := f.PollEvents(); len(again) != 0 {
		t.Errorf("Expected empty batch after drain, got %d events", len(again))
	}
}

func TestFakeInputKeys(t *testing.T) {
	f := NewFakeInput()

	if f.IsKeyPressed(ebiten.KeyW) {
		t.Error("KeyW should not be pressed initially")
	}

	f.Press(ebiten.KeyW, ebiten.KeyArrowDown)
	if !f.IsKeyPressed(ebiten.KeyW) || !f.IsKeyPressed(ebiten.KeyArrowDown) {
		t.Error("Pressed keys should report true")
	}

	f.Release(ebiten.KeyW)
	if f.IsKeyPressed(ebiten.KeyW) {
		t.Error("Released key should report false")
	}
}

func TestFakeInputPointer(t *testing.T) {
	f := NewFakeInput()
	f.Click(300, 400)
	f.Click(10, 20)

	// 同一帧的多次点击各自保留坐标
	events := f.PollEvents()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].X != 300 || events[0].Y != 400 || events[1].X != 10 || events[1].Y != 20 {
		t.Errorf("Unexpected pointer events: %+v", events)
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventQuit, "quit"},
		{EventPointerDown, "pointer-down"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}
