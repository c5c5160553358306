package systems

import (
	"testing"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/entities"
)

func TestScoringBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		ballX     float64
		wantLeft  int
		wantRight int
		wantReset bool
	}{
		{"越过左边界右方得分", -3, 0, 1, true},
		{"恰好在左边界右方得分", 0, 0, 1, true},
		{"离左边界一像素不得分", 1, 0, 0, false},
		{"右边缘恰好等于屏幕宽度左方得分", testScreenWidth - 20, 1, 0, true},
		{"越过右边界左方得分", testScreenWidth, 1, 0, true},
		{"离右边界一像素不得分", testScreenWidth - 21, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			ballSystem := NewBallSystem(w.em, w.session)
			system := NewScoringSystem(w.em, w.session, ballSystem)
			ball, pos := w.ballState(t)
			pos.X, pos.Y = tt.ballX, 300
			ball.SpeedX = 9

			system.Update(1.0 / 60)

			left, right := system.Score()
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("score = %d - %d, want %d - %d", left, right, tt.wantLeft, tt.wantRight)
			}
			if tt.wantReset {
				if pos.X != testScreenWidth/2 || pos.Y != testScreenHeight/2 {
					t.Errorf("ball not reset to center, got (%v, %v)", pos.X, pos.Y)
				}
				if ball.SpeedX != -9 {
					t.Errorf("reset should flip SpeedX, got %v", ball.SpeedX)
				}
			} else if pos.X != tt.ballX {
				t.Errorf("ball moved without scoring, X = %v", pos.X)
			}
		})
	}
}

func TestScoringIsMonotonic(t *testing.T) {
	w := newTestWorld(t)
	ballSystem := NewBallSystem(w.em, w.session)
	system := NewScoringSystem(w.em, w.session, ballSystem)
	_, pos := w.ballState(t)

	for i := 1; i <= 5; i++ {
		pos.X = 0
		system.Update(1.0 / 60)
		if got := w.score(t).Right; got != i {
			t.Fatalf("after %d points right score = %d", i, got)
		}
	}
	if got := w.score(t).Left; got != 0 {
		t.Errorf("left score = %d, want 0", got)
	}
}

func TestScoringWithoutScoreboard(t *testing.T) {
	// 只有球和球拍，没有计分板实体
	em := ecs.NewEntityManager()
	session := newTestSession(t)
	ballID := entities.NewBallEntity(em, session)
	entities.NewPaddleEntity(em, session, config.SideLeft)
	entities.NewPaddleEntity(em, session, config.SideRight)
	ballSystem := NewBallSystem(em, session)
	system := NewScoringSystem(em, session, ballSystem)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ballID)
	pos.X = 0

	system.Update(1.0 / 60)

	if left, right := system.Score(); left != 0 || right != 0 {
		t.Errorf("score = %d - %d, want 0 - 0", left, right)
	}
}
