package hotkey

import (
	"fmt"
	"strings"
	"sync"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"setdisplay/internal/config"
)

type binding struct {
	name     string
	hk       *hotkey.Hotkey
	callback func()
}

// Manager 热键管理器，每个预设一个热键
type Manager struct {
	mu       sync.Mutex
	bindings []*binding
}

// NewManager 创建热键管理器
func NewManager() *Manager {
	return &Manager{}
}

// parseModifiers 解析修饰键
func parseModifiers(mods []string) []hotkey.Modifier {
	var result []hotkey.Modifier
	for _, mod := range mods {
		switch strings.ToLower(mod) {
		case "ctrl", "control":
			result = append(result, hotkey.ModCtrl)
		case "alt", "option":
			result = append(result, hotkey.ModAlt)
		case "shift":
			result = append(result, hotkey.ModShift)
		case "win", "cmd", "command", "super":
			result = append(result, hotkey.ModWin)
		}
	}
	return result
}

var functionKeys = []hotkey.Key{
	hotkey.KeyF1, hotkey.KeyF2, hotkey.KeyF3, hotkey.KeyF4,
	hotkey.KeyF5, hotkey.KeyF6, hotkey.KeyF7, hotkey.KeyF8,
	hotkey.KeyF9, hotkey.KeyF10, hotkey.KeyF11, hotkey.KeyF12,
}

// parseKey 把已校验的主键映射为虚拟键码
func parseKey(key string) (hotkey.Key, error) {
	if !config.IsValidKey(strings.ToLower(key)) {
		return 0, fmt.Errorf("不支持的主键: %s", key)
	}
	key = strings.ToUpper(key)

	// 字母和数字的虚拟键码就是 ASCII
	if len(key) == 1 && ((key[0] >= 'A' && key[0] <= 'Z') || (key[0] >= '0' && key[0] <= '9')) {
		return hotkey.Key(key[0]), nil
	}

	var n int
	if _, err := fmt.Sscanf(key, "F%d", &n); err == nil {
		return functionKeys[n-1], nil
	}

	switch key {
	case "SPACE":
		return hotkey.KeySpace, nil
	case "RETURN", "ENTER":
		return hotkey.KeyReturn, nil
	case "ESCAPE", "ESC":
		return hotkey.KeyEscape, nil
	case "TAB":
		return hotkey.KeyTab, nil
	case "DELETE", "DEL":
		return hotkey.KeyDelete, nil
	case "UP":
		return hotkey.KeyUp, nil
	case "DOWN":
		return hotkey.KeyDown, nil
	case "LEFT":
		return hotkey.KeyLeft, nil
	case "RIGHT":
		return hotkey.KeyRight, nil
	}

	return 0, fmt.Errorf("不支持的主键: %s", key)
}

// Register 注册一个热键
func (m *Manager) Register(name string, modifiers []string, key string, callback func()) error {
	k, err := parseKey(key)
	if err != nil {
		return err
	}

	hk := hotkey.New(parseModifiers(modifiers), k)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("无法注册热键 %s (%s+%s): %w", name, strings.Join(modifiers, "+"), key, err)
	}

	m.mu.Lock()
	m.bindings = append(m.bindings, &binding{name: name, hk: hk, callback: callback})
	m.mu.Unlock()
	return nil
}

// Unregister 注销全部热键
func (m *Manager) Unregister() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for _, b := range m.bindings {
		if err := b.hk.Unregister(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.bindings = nil
	return firstErr
}

// Len 已注册的热键数量
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bindings)
}

// ListenAsync 为每个热键启动监听
func (m *Manager) ListenAsync() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bindings {
		go func(b *binding) {
			for range b.hk.Keydown() {
				if b.callback != nil {
					b.callback()
				}
			}
		}(b)
	}
}

// Run 在主线程中运行（某些平台需要）
func Run(fn func()) {
	mainthread.Init(fn)
}
