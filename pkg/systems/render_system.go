package systems

import (
	"fmt"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 绘制一帧画面
//
// 绘制顺序：背景 → 球拍 → 球 → 关闭按钮 → 比分。
// 所有图形都是纯色矩形和线段，颜色取自配置。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	scoreFont     *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
// 参数:
//   - em: EntityManager 实例
//   - session: 对局上下文（颜色、屏幕尺寸、比分位置）
//   - scoreFont: 比分字体，为 nil 时不绘制比分
func NewRenderSystem(em *ecs.EntityManager, session *game.Session, scoreFont *text.GoTextFace) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		session:       session,
		scoreFont:     scoreFont,
	}
}

// Draw 绘制整帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.session.Config.Colors.Background.RGBA)

	s.drawPaddles(screen)
	s.drawBalls(screen)
	s.drawCloseButtons(screen)
	s.drawScore(screen)
}

func (s *RenderSystem) drawPaddles(screen *ebiten.Image) {
	fg := s.session.Config.Colors.Foreground.RGBA
	for _, id := range ecs.GetEntitiesWith2[*components.PaddleComponent, *components.PositionComponent](s.entityManager) {
		paddle, _ := ecs.GetComponent[*components.PaddleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vector.FillRect(screen, float32(pos.X), float32(pos.Y), float32(paddle.Width), float32(paddle.Height), fg, false)
	}
}

func (s *RenderSystem) drawBalls(screen *ebiten.Image) {
	fg := s.session.Config.Colors.Foreground.RGBA
	for _, id := range ecs.GetEntitiesWith2[*components.BallComponent, *components.PositionComponent](s.entityManager) {
		ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vector.FillRect(screen, float32(pos.X), float32(pos.Y), float32(ball.Size), float32(ball.Size), fg, false)
	}
}

// drawCloseButtons 画叉号，并把本次绘制的区域写回点击组件
func (s *RenderSystem) drawCloseButtons(screen *ebiten.Image) {
	fg := s.session.Config.Colors.Foreground.RGBA
	for _, id := range ecs.GetEntitiesWith1[*components.CloseButtonComponent](s.entityManager) {
		x, y, size, thickness, ok := s.LayoutCloseButton(id)
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(x), float32(y), float32(x+size), float32(y+size), float32(thickness), fg, true)
		vector.StrokeLine(screen, float32(x), float32(y+size), float32(x+size), float32(y), float32(thickness), fg, true)
	}
}

// LayoutCloseButton 计算关闭按钮在当前屏幕上的位置，并刷新它的位置和点击区域
//
// 返回: 叉号左上角坐标、边长、线宽，实体缺少按钮组件时 ok 为 false
func (s *RenderSystem) LayoutCloseButton(id ecs.EntityID) (x, y, size, thickness float64, ok bool) {
	button, ok := ecs.GetComponent[*components.CloseButtonComponent](s.entityManager, id)
	if !ok {
		return 0, 0, 0, 0, false
	}

	x = s.session.Width - button.Size - button.Margin
	y = button.Margin

	if pos, found := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); found {
		pos.X, pos.Y = x, y
	}
	if clickable, found := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); found {
		clickable.Width = button.Size
		clickable.Height = button.Size
	}

	return x, y, button.Size, button.Thickness, true
}

func (s *RenderSystem) drawScore(screen *ebiten.Image) {
	if s.scoreFont == nil {
		return
	}
	ids := ecs.GetEntitiesWith1[*components.ScoreComponent](s.entityManager)
	if len(ids) == 0 {
		return
	}
	score, _ := ecs.GetComponent[*components.ScoreComponent](s.entityManager, ids[0])

	str := ScoreText(score.Left, score.Right)
	width, _ := text.Measure(str, s.scoreFont, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScoreTextX(s.session.Width, width), s.session.Config.Score.OffsetY)
	op.ColorScale.ScaleWithColor(s.session.Config.Colors.Foreground.RGBA)
	text.Draw(screen, str, s.scoreFont, op)
}

// ScoreText 比分文字，格式 "左 - 右"
func ScoreText(left, right int) string {
	return fmt.Sprintf("%d - %d", left, right)
}
