package tray

import (
	"github.com/getlantern/systray"

	"setdisplay/internal/trayicon"
)

// Item 托盘菜单中的一个预设
type Item struct {
	Title   string
	Tooltip string
	OnClick func()
}

// Tray 系统托盘
type Tray struct {
	presets       []Item
	onCopyCurrent func()
	onOpenConfig  func()
	onQuit        func()
}

// NewTray 创建系统托盘
func NewTray() *Tray {
	return &Tray{}
}

// AddPreset 添加预设菜单项
func (t *Tray) AddPreset(title, tooltip string, fn func()) {
	t.presets = append(t.presets, Item{Title: title, Tooltip: tooltip, OnClick: fn})
}

// SetOnCopyCurrent 设置复制当前设置回调
func (t *Tray) SetOnCopyCurrent(fn func()) {
	t.onCopyCurrent = fn
}

// SetOnOpenConfig 设置打开配置文件回调
func (t *Tray) SetOnOpenConfig(fn func()) {
	t.onOpenConfig = fn
}

// SetOnQuit 设置退出回调
func (t *Tray) SetOnQuit(fn func()) {
	t.onQuit = fn
}

// Run 运行系统托盘（阻塞）
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(trayicon.Data())
	systray.SetTitle("SetDisplay")
	systray.SetTooltip("SetDisplay - 显示设置切换")

	for _, item := range t.presets {
		m := systray.AddMenuItem(item.Title, item.Tooltip)
		go listen(m, item.OnClick)
	}
	if len(t.presets) > 0 {
		systray.AddSeparator()
	}

	mCopy := systray.AddMenuItem("复制当前设置", "把当前显示设置复制为命令行参数")
	go listen(mCopy, t.onCopyCurrent)

	mConfig := systray.AddMenuItem("打开配置文件", "编辑预设和快捷键")
	go listen(mConfig, t.onOpenConfig)

	systray.AddSeparator()

	mQuit := systray.AddMenuItem("退出", "退出程序")
	go func() {
		<-mQuit.ClickedCh
		if t.onQuit != nil {
			t.onQuit()
		}
		systray.Quit()
	}()
}

func listen(m *systray.MenuItem, fn func()) {
	for range m.ClickedCh {
		if fn != nil {
			fn()
		}
	}
}

func (t *Tray) onExit() {}
