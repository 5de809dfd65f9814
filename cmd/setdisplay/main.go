package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"setdisplay/internal/cli"
	"setdisplay/internal/cliargs"
	"setdisplay/internal/clipboard"
	"setdisplay/internal/config"
	"setdisplay/internal/display"
	"setdisplay/internal/hotkey"
	"setdisplay/internal/notify"
	"setdisplay/internal/tray"
)

func main() {
	app := cli.DefaultApp()
	app.RunTray = runTray
	os.Exit(cli.Execute(app, os.Args[1:]))
}

// trayApp 托盘模式的运行状态
type trayApp struct {
	cfg          *config.Config
	configurator *display.Configurator
	clip         clipboard.Clipboard
	notifier     notify.Notifier
	hkMgr        *hotkey.Manager

	// 托盘菜单和热键可能同时触发
	applyMu sync.Mutex
}

func runTray(cfg *config.Config, configurator *display.Configurator) {
	a := &trayApp{
		cfg:          cfg,
		configurator: configurator,
		clip:         clipboard.NewClipboard(),
		notifier:     notify.NewNotifier(),
		hkMgr:        hotkey.NewManager(),
	}
	// 热键需要在主线程注册
	hotkey.Run(a.run)
}

func (a *trayApp) run() {
	t := tray.NewTray()
	for i := range a.cfg.Presets {
		p := &a.cfg.Presets[i]
		apply := func() { a.applyPreset(p) }

		title := p.Name
		if hk := p.HotkeyString(); hk != "" {
			if err := a.hkMgr.Register(p.Name, p.Hotkey.Modifiers, p.Hotkey.Key, apply); err != nil {
				fmt.Fprintln(os.Stderr, "注册热键失败:", err)
			} else {
				title += " (" + hk + ")"
			}
		}
		t.AddPreset(title, p.Summary(), apply)
	}
	a.hkMgr.ListenAsync()
	defer a.hkMgr.Unregister()

	t.SetOnCopyCurrent(a.copyCurrent)
	t.SetOnOpenConfig(openConfigFile)
	t.SetOnQuit(func() {
		a.hkMgr.Unregister()
	})

	fmt.Printf("SetDisplay v%s 托盘模式已启动\n", cli.Version)
	fmt.Printf("已加载 %d 个预设, %d 个快捷键\n", len(a.cfg.Presets), a.hkMgr.Len())
	fmt.Println("配置文件:", config.GetConfigPath())

	t.Run()
}

func (a *trayApp) applyPreset(p *config.Preset) {
	a.applyMu.Lock()
	defer a.applyMu.Unlock()

	cli.DebugLog("应用预设: %s", p.Name)
	err := a.configurator.Apply(p.Request())

	if a.cfg.Behavior.ShowNotification {
		a.notifier.Result(p.Name, p.Summary(), err)
	}
}

func (a *trayApp) copyCurrent() {
	current := a.configurator.Current()
	line := "setdisplay " + strings.Join(cliargs.CommandLine(current), " ")

	if err := a.clip.SetText(line); err != nil {
		a.notifier.Show("复制失败", err.Error())
		return
	}
	if a.cfg.Behavior.ShowNotification {
		a.notifier.Show("已复制当前设置", line)
	}
}

func openConfigFile() {
	path := config.GetConfigPath()

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("notepad.exe", path)
	case "darwin":
		cmd = exec.Command("open", "-t", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "打开配置文件失败:", err)
	}
}
