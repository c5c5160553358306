// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/embedded"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/scenes"
	"github.com/decker502/pong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// storageAppName gdata 存储目录名
const storageAppName = "pong"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的 data/pong.yaml
	ConfigPath string
	// Windowed 以窗口模式启动（调试用），忽略保存的全屏设置
	Windowed bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	session         *game.Session
	settingsManager *game.SettingsManager
	mobile          bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 注册嵌入的默认配置；
// 未初始化时使用编译进程序的默认值。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 屏幕尺寸取自显示器，整局不变
	width, height := 0, 0
	if monitor := ebiten.Monitor(); monitor != nil {
		width, height = monitor.Size()
	}
	session := game.NewSession(gameConfig, width, height)

	settingsManager := game.NewSettingsManager(
		game.OpenStorage(storageAppName),
		game.DefaultSettings(gameConfig.Window.Fullscreen),
	)

	// 字体加载失败时改用内置字体，只有内置字体也不可用才是致命错误
	resourceManager := game.NewResourceManager()
	scoreFont, err := resourceManager.LoadFontOrDefault(gameConfig.Score.FontPath, gameConfig.Score.FontSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(session, scoreFont, utils.NewEbitenInput()))

	mobile := utils.IsMobile()
	if mobile {
		// 移动端没有窗口，只需要设置帧率
		ebiten.SetTPS(gameConfig.Window.TPS)
	} else {
		fullscreen := settingsManager.GetSettings().Fullscreen && !cfg.Windowed
		configureWindow(gameConfig, fullscreen)
	}

	return &App{
		sceneManager:    sceneManager,
		session:         session,
		settingsManager: settingsManager,
		mobile:          mobile,
	}, nil
}

// LoadGameConfig 按优先级加载对局配置
//
// 外部文件 > 嵌入的 data/pong.yaml > 编译进程序的默认值
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not initialized, using built-in defaults")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(config.DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置解析失败: %w", err)
	}
	log.Printf("[Config] Loaded embedded %s", config.DefaultGameConfigPath)
	return cfg, nil
}

// configureWindow 设置窗口标题、帧率、关闭请求处理和全屏
func configureWindow(cfg *config.GameConfig, fullscreen bool) {
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.FallbackWidth, cfg.Window.FallbackHeight)
	ebiten.SetTPS(cfg.Window.TPS)
	// 关闭窗口作为退出事件交给对局循环处理
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(fullscreen)
	log.Printf("[App] Window %q, %d TPS, fullscreen=%v", cfg.Window.Title, cfg.Window.TPS, fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次），对局结束时返回 ebiten.Termination
func (a *App) Update() error {
	// F11 切换全屏，并记住选择
	if !a.mobile && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		log.Printf("[App] Fullscreen toggled: %v", fullscreen)
	}

	deltaTime := 1.0 / float64(a.session.Config.Window.TPS)
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 窗口比例与显示器不同时，letterbox 区域使用背景色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(a.session.Config.Colors.Background.RGBA)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 固定为启动时的显示器尺寸，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.session.ScreenSize()
}
