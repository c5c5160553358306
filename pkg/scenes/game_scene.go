package scenes

import (
	"log"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/systems"
	"github.com/decker502/pong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LoopState 对局循环状态
// 只有 RUNNING → TERMINATED 一种转换，没有暂停和重开
type LoopState int

const (
	StateRunning LoopState = iota
	StateTerminated
)

// String 返回状态名称，用于日志
func (s LoopState) String() string {
	if s == StateTerminated {
		return "TERMINATED"
	}
	return "RUNNING"
}

// GameScene represents the single Pong match.
// It owns the ECS world (ball, two paddles, close button, scoreboard)
// and runs the systems in a fixed order every frame.
type GameScene struct {
	session       *game.Session
	input         utils.InputSource
	entityManager *ecs.EntityManager

	ballSystem        *systems.BallSystem
	paddleInputSystem *systems.PaddleInputSystem
	collisionSystem   *systems.CollisionSystem
	scoringSystem     *systems.ScoringSystem
	closeButtonSystem *systems.CloseButtonSystem
	renderSystem      *systems.RenderSystem

	ballID        ecs.EntityID
	leftPaddleID  ecs.EntityID
	rightPaddleID ecs.EntityID

	state LoopState
}

// NewGameScene creates the match scene.
// 参数:
//   - session: 对局上下文（配置、屏幕尺寸）
//   - scoreFont: 比分字体，nil 时不绘制比分
//   - input: 输入源，窗口运行时为 utils.EbitenInput，测试时为 utils.FakeInput
func NewGameScene(session *game.Session, scoreFont *text.GoTextFace, input utils.InputSource) *GameScene {
	em := ecs.NewEntityManager()

	scene := &GameScene{
		session:       session,
		input:         input,
		entityManager: em,
		state:         StateRunning,
	}

	// 左拍先于右拍创建，碰撞检测按实体ID顺序也是先左后右
	scene.ballID = entities.NewBallEntity(em, session)
	scene.leftPaddleID = entities.NewPaddleEntity(em, session, config.SideLeft)
	scene.rightPaddleID = entities.NewPaddleEntity(em, session, config.SideRight)
	entities.NewCloseButtonEntity(em, session)
	entities.NewScoreboardEntity(em)

	scene.ballSystem = systems.NewBallSystem(em, session)
	scene.paddleInputSystem = systems.NewPaddleInputSystem(em, session, input)
	scene.collisionSystem = systems.NewCollisionSystem(em)
	scene.scoringSystem = systems.NewScoringSystem(em, session, scene.ballSystem)
	scene.closeButtonSystem = systems.NewCloseButtonSystem(em)
	scene.renderSystem = systems.NewRenderSystem(em, session, scoreFont)

	log.Printf("[GameScene] Match started (session %s)", session.ID)
	return scene
}

// Update runs the logic half of one frame.
//
// 顺序固定：
//  1. 取出本帧全部事件，遇到退出信号立即终止，跳过本帧其余步骤
//  2. 球移动
//  3. 根据按键移动球拍
//  4. 球拍碰撞
//  5. 得分判定
//  6. 用本帧事件检查关闭按钮（区域来自上一次 Draw）
//
// 进入 TERMINATED 后返回 ebiten.Termination，之后的调用也一样。
func (s *GameScene) Update(deltaTime float64) error {
	if s.state == StateTerminated {
		return ebiten.Termination
	}

	events := s.input.PollEvents()
	for _, ev := range events {
		if ev.Kind == utils.EventQuit {
			return s.terminate("quit signal")
		}
	}

	s.ballSystem.Update(deltaTime)
	s.paddleInputSystem.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
	s.scoringSystem.Update(deltaTime)

	if s.closeButtonSystem.CheckClick(events) {
		return s.terminate("close button")
	}

	return nil
}

// Draw renders the frame: background, paddles, ball, close button and score.
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

func (s *GameScene) terminate(cause string) error {
	s.state = StateTerminated
	left, right := s.scoringSystem.Score()
	log.Printf("[GameScene] Terminated by %s, final score %d - %d, played %s",
		cause, left, right, s.session.Since())
	return ebiten.Termination
}

// State 返回当前循环状态
func (s *GameScene) State() LoopState {
	return s.state
}

// Score 返回当前比分（左, 右）
func (s *GameScene) Score() (int, int) {
	return s.scoringSystem.Score()
}

// Ball 返回球的运动状态和位置
func (s *GameScene) Ball() (*components.BallComponent, *components.PositionComponent) {
	ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, s.ballID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.ballID)
	return ball, pos
}

// Paddle 返回指定一侧球拍的位置
func (s *GameScene) Paddle(side config.PaddleSide) *components.PositionComponent {
	id := s.leftPaddleID
	if side == config.SideRight {
		id = s.rightPaddleID
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	return pos
}
