// verify_match 无窗口运行一局 Pong 并检查不变量
//
// 用脚本化的按键驱动两块球拍，逐帧检查：
//   - 球拍 Y 始终在 [0, 屏幕高度 - 球拍高度] 内
//   - 球速的绝对值始终等于初始值
//   - 比分只增不减
//
// 用法:
//
//	go run ./cmd/verify_match -frames 10000 -verbose
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/pong/pkg/app"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/scenes"
	"github.com/decker502/pong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	frames     = flag.Int("frames", 3600, "运行的帧数")
	width      = flag.Int("width", 1280, "屏幕宽度")
	height     = flag.Int("height", 720, "屏幕高度")
	configPath = flag.String("config", "", "配置文件路径（默认使用内置默认值）")
	clickAt    = flag.Int("click-at", -1, "在第 N 帧点击关闭按钮（-1 表示不点击）")
)

// keyScript 每 45 帧切换一次按键组合
var keyScript = [][]ebiten.Key{
	{ebiten.KeyW, ebiten.KeyArrowDown},
	{},
	{ebiten.KeyS, ebiten.KeyArrowUp},
	{ebiten.KeyW, ebiten.KeyS, ebiten.KeyArrowUp},
	{ebiten.KeyS, ebiten.KeyArrowDown},
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := app.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	session := game.NewSession(cfg, *width, *height)
	input := utils.NewFakeInput()
	scene := scenes.NewGameScene(session, nil, input)

	if err := run(scene, input, session); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
}

func run(scene *scenes.GameScene, input *utils.FakeInput, session *game.Session) error {
	ball, _ := scene.Ball()
	speedX, speedY := math.Abs(ball.SpeedX), math.Abs(ball.SpeedY)
	maxY := session.Height - session.Config.Paddle.Height
	button := session.Config.CloseButtonRect(session.Width)
	lastLeft, lastRight := 0, 0

	for frame := 0; frame < *frames; frame++ {
		input.Release(ebiten.KeyW, ebiten.KeyS, ebiten.KeyArrowUp, ebiten.KeyArrowDown)
		input.Press(keyScript[(frame/45)%len(keyScript)]...)
		if frame == *clickAt {
			input.Click(int(button.X+button.W/2), int(button.Y+button.H/2))
		}

		err := scene.Update(1.0 / float64(session.Config.Window.TPS))
		if errors.Is(err, ebiten.Termination) {
			fmt.Printf("terminated at frame %d (%s)\n", frame, scene.State())
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		if math.Abs(ball.SpeedX) != speedX || math.Abs(ball.SpeedY) != speedY {
			return fmt.Errorf("frame %d: ball speed changed to (%.1f, %.1f)", frame, ball.SpeedX, ball.SpeedY)
		}
		for _, side := range []config.PaddleSide{config.SideLeft, config.SideRight} {
			if y := scene.Paddle(side).Y; y < 0 || y > maxY {
				return fmt.Errorf("frame %d: %s paddle y=%.1f outside [0, %.1f]", frame, side, y, maxY)
			}
		}
		left, right := scene.Score()
		if left < lastLeft || right < lastRight {
			return fmt.Errorf("frame %d: score went from %d - %d to %d - %d", frame, lastLeft, lastRight, left, right)
		}
		lastLeft, lastRight = left, right
	}

	left, right := scene.Score()
	w, h := session.ScreenSize()
	fmt.Printf("OK: session %s, %dx%d, final score %d - %d\n", session.ID, w, h, left, right)
	return nil
}
