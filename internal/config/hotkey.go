package config

import (
	"fmt"
	"strings"
)

// 修饰键别名
var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"shift":   "shift",
	"win":     "win",
	"cmd":     "win",
	"command": "win",
	"super":   "win",
}

// 支持的非字母数字主键
var namedKeys = map[string]bool{
	"space": true, "enter": true, "return": true, "esc": true, "escape": true,
	"tab": true, "delete": true, "del": true,
	"up": true, "down": true, "left": true, "right": true,
}

// ParseHotkey 解析快捷键字符串，如 "ctrl+alt+1"
func ParseHotkey(s string) (Hotkey, error) {
	parts := []string{}
	for _, part := range strings.Split(s, "+") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) < 2 {
		return Hotkey{}, fmt.Errorf("无效的快捷键格式: %q，需要至少一个修饰键和一个主键", s)
	}

	mods, key, err := NormalizeHotkey(parts[:len(parts)-1], parts[len(parts)-1])
	if err != nil {
		return Hotkey{}, err
	}
	return Hotkey{Modifiers: mods, Key: key}, nil
}

// NormalizeHotkey 统一修饰键名称并校验主键
func NormalizeHotkey(modifiers []string, key string) ([]string, string, error) {
	mods := []string{}
	seen := map[string]bool{}
	for _, m := range modifiers {
		name, ok := modifierAliases[strings.ToLower(strings.TrimSpace(m))]
		if !ok {
			return nil, "", fmt.Errorf("未知的修饰键: %s", m)
		}
		if !seen[name] {
			seen[name] = true
			mods = append(mods, name)
		}
	}
	if len(mods) == 0 {
		return nil, "", fmt.Errorf("需要至少一个修饰键 (ctrl/alt/shift/win)")
	}

	key = strings.ToLower(strings.TrimSpace(key))
	if !IsValidKey(key) {
		return nil, "", fmt.Errorf("无效的主键: %s (支持 a-z, 0-9, f1-f12)", key)
	}
	return mods, key, nil
}

// IsValidKey 主键是否受支持，key 需为小写
// 托盘热键注册也以此为准
func IsValidKey(key string) bool {
	if len(key) == 1 {
		c := key[0]
		return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
	}
	if namedKeys[key] {
		return true
	}
	if strings.HasPrefix(key, "f") {
		var n int
		if _, err := fmt.Sscanf(key, "f%d", &n); err == nil && fmt.Sprintf("f%d", n) == key {
			return n >= 1 && n <= 12
		}
	}
	return false
}
