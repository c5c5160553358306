package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/pong/pkg/app"
	"github.com/decker502/pong/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "外部配置文件路径（默认使用内置的 data/pong.yaml）")
	windowed   = flag.Bool("windowed", false, "以窗口模式启动")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Windowed:   *windowed,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出被丢弃，错误直接写到 stderr
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	// 对局结束时 Update 返回 ebiten.Termination，RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", err)
		os.Exit(1)
	}
}
