package systems

import (
	"testing"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/game"
)

const (
	testScreenWidth  = 1280
	testScreenHeight = 720
)

// newTestSession 使用默认配置和固定屏幕尺寸创建对局上下文
func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	return game.NewSession(config.DefaultGameConfig(), testScreenWidth, testScreenHeight)
}

// testWorld 一局完整的实体集合
type testWorld struct {
	em          *ecs.EntityManager
	session     *game.Session
	ball        ecs.EntityID
	leftPaddle  ecs.EntityID
	rightPaddle ecs.EntityID
	closeButton ecs.EntityID
	scoreboard  ecs.EntityID
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()
	session := newTestSession(t)
	return &testWorld{
		em:          em,
		session:     session,
		ball:        entities.NewBallEntity(em, session),
		leftPaddle:  entities.NewPaddleEntity(em, session, config.SideLeft),
		rightPaddle: entities.NewPaddleEntity(em, session, config.SideRight),
		closeButton: entities.NewCloseButtonEntity(em, session),
		scoreboard:  entities.NewScoreboardEntity(em),
	}
}

func (w *testWorld) ballState(t *testing.T) (*components.BallComponent, *components.PositionComponent) {
	t.Helper()
	ball, ok := ecs.GetComponent[*components.BallComponent](w.em, w.ball)
	if !ok {
		t.Fatal("ball entity has no BallComponent")
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, w.ball)
	if !ok {
		t.Fatal("ball entity has no PositionComponent")
	}
	return ball, pos
}

func (w *testWorld) paddlePos(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		t.Fatal("paddle entity has no PositionComponent")
	}
	return pos
}

func (w *testWorld) score(t *testing.T) *components.ScoreComponent {
	t.Helper()
	score, ok := ecs.GetComponent[*components.ScoreComponent](w.em, w.scoreboard)
	if !ok {
		t.Fatal("scoreboard entity has no ScoreComponent")
	}
	return score
}
