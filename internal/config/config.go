package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"setdisplay/internal/display"
)

// Hotkey 快捷键配置
type Hotkey struct {
	Modifiers []string `yaml:"modifiers,omitempty"` // ctrl, alt, shift, win
	Key       string   `yaml:"key,omitempty"`       // 主键，如 1, a, f1
}

// Preset 一组显示设置，值原样传给系统，不做范围检查
type Preset struct {
	Name        string `yaml:"name"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	BitDepth    int    `yaml:"bitDepth"`
	RefreshRate int    `yaml:"refreshRate"`
	DPIScale    int    `yaml:"dpiScale"`
	// ScalingMode 为空时不修改缩放模式
	ScalingMode *int   `yaml:"scalingMode,omitempty"`
	Hotkey      Hotkey `yaml:"hotkey,omitempty"`
}

// Behavior 行为配置
type Behavior struct {
	ShowNotification bool `yaml:"showNotification"` // 托盘模式应用预设后显示通知
	DebugLog         bool `yaml:"debugLog"`         // 写调试日志
}

// Config 主配置结构
type Config struct {
	Behavior Behavior `yaml:"behavior"`
	Presets  []Preset `yaml:"presets"`
}

// ErrPresetNotFound 找不到指定名称的预设
var ErrPresetNotFound = errors.New("预设不存在")

func intPtr(v int) *int { return &v }

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Behavior: Behavior{
			ShowNotification: true,
			DebugLog:         false,
		},
		Presets: []Preset{
			{
				Name:        "1080p 100%",
				Width:       1920,
				Height:      1080,
				BitDepth:    32,
				RefreshRate: 60,
				DPIScale:    100,
				ScalingMode: intPtr(0),
				Hotkey:      Hotkey{Modifiers: []string{"ctrl", "alt"}, Key: "1"},
			},
			{
				Name:        "1080p 150%",
				Width:       1920,
				Height:      1080,
				BitDepth:    32,
				RefreshRate: 60,
				DPIScale:    150,
				ScalingMode: intPtr(0),
				Hotkey:      Hotkey{Modifiers: []string{"ctrl", "alt"}, Key: "2"},
			},
		},
	}
}

// GetConfigPath 获取配置文件路径
func GetConfigPath() string {
	var configDir string

	if runtime.GOOS == "windows" {
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, "AppData", "Roaming")
		}
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "setdisplay", "config.yaml")
}

// Load 加载配置，文件不存在时写入默认配置
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom 从指定路径加载配置
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		_ = cfg.SaveTo(path)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("读取配置失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("解析配置失败 %s: %w", path, err)
	}

	cfg.Validate()

	return &cfg, nil
}

// Validate 修正预设名称和快捷键
// 显示参数本身不校验，交给系统处理
func (c *Config) Validate() {
	// 生成的名称不能和后面预设的原名冲突
	original := map[string]bool{}
	for i := range c.Presets {
		c.Presets[i].Name = strings.TrimSpace(c.Presets[i].Name)
		original[strings.ToLower(c.Presets[i].Name)] = true
	}

	seen := map[string]bool{}
	for i := range c.Presets {
		p := &c.Presets[i]

		if p.Name == "" || seen[strings.ToLower(p.Name)] {
			for n := i + 1; ; n++ {
				name := fmt.Sprintf("预设%d", n)
				if !seen[name] && !original[name] {
					p.Name = name
					break
				}
			}
		}
		seen[strings.ToLower(p.Name)] = true

		if p.Hotkey.Key == "" {
			p.Hotkey = Hotkey{}
			continue
		}
		mods, key, err := NormalizeHotkey(p.Hotkey.Modifiers, p.Hotkey.Key)
		if err != nil {
			// 无效的快捷键直接丢弃，预设仍可从托盘菜单使用
			p.Hotkey = Hotkey{}
			continue
		}
		p.Hotkey = Hotkey{Modifiers: mods, Key: key}
	}
}

// Save 保存配置
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo 保存配置到指定路径
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Find 按名称查找预设，不区分大小写
func (c *Config) Find(name string) (*Preset, error) {
	for i := range c.Presets {
		if strings.EqualFold(c.Presets[i].Name, strings.TrimSpace(name)) {
			return &c.Presets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
}

// Request 转换为显示设置请求
func (p *Preset) Request() display.Request {
	req := display.Request{
		Mode: display.Mode{
			Width:       p.Width,
			Height:      p.Height,
			BitDepth:    p.BitDepth,
			RefreshRate: p.RefreshRate,
		},
		DPIScale: p.DPIScale,
	}
	if p.ScalingMode != nil {
		req.ScalingMode = *p.ScalingMode
		req.HasScaling = true
	}
	return req
}

// Summary 预设的显示参数摘要，用于托盘菜单、列表和通知
func (p *Preset) Summary() string {
	s := fmt.Sprintf("%dx%d %dbit %dHz, DPI %d%%", p.Width, p.Height, p.BitDepth, p.RefreshRate, p.DPIScale)
	if p.ScalingMode != nil {
		s += ", " + display.ScalingFromSelector(*p.ScalingMode).String()
	}
	return s
}

// HotkeyString 快捷键的字符串表示，未设置时为空
func (p *Preset) HotkeyString() string {
	if p.Hotkey.Key == "" {
		return ""
	}
	return strings.Join(append(append([]string{}, p.Hotkey.Modifiers...), p.Hotkey.Key), "+")
}
