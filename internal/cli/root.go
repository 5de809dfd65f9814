package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"setdisplay/internal/cliargs"
	"setdisplay/internal/config"
	"setdisplay/internal/display"
)

// Version 程序版本
const Version = "1.1.0"

// App 命令运行所需的外部依赖
type App struct {
	Backend display.Backend
	Stdout  io.Writer
	Stderr  io.Writer

	// LoadConfig 为空时使用 config.Load
	LoadConfig func() (*config.Config, error)

	// RunTray 托盘模式入口，阻塞到退出
	RunTray func(cfg *config.Config, c *display.Configurator)
}

type options struct {
	preset     string
	setHotkey  string
	list       bool
	tray       bool
	showConfig bool
	debug      bool
}

// Execute 解析参数并执行，返回进程退出码
// 显示设置本身的失败只写到错误输出，退出码仍为 0
func Execute(app *App, args []string) int {
	cmd := NewRootCmd(app)
	// 第一个参数是数字时整行都按位置参数处理，负数不会被当成短参数
	if len(args) > 0 && cliargs.IsNumeric(args[0]) {
		cmd.DisableFlagParsing = true
	}
	// nil 时 cobra 会改读 os.Args
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(app.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd 创建根命令
func NewRootCmd(app *App) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "setdisplay " + cliargs.Usage,
		Short: "修改显示分辨率、色深、刷新率、DPI 缩放和缩放模式",
		Long: `setdisplay 依次设置显示模式、DPI 缩放比例和缩放模式。

缩放模式: 0=保持宽高比 1=拉伸 2=居中，其他值按 0 处理。
DPI 缩放比例: 100 125 150 175 200 225 250 300 350，其他值按 100 处理。`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return validateArgs(opts, cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(app, opts, args)
		},
	}
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	f := cmd.Flags()
	// 第一个位置参数之后不再解析参数，"-100" 之类按原样传入
	f.SetInterspersed(false)
	f.StringVarP(&opts.preset, "preset", "p", "", "应用配置文件中的预设")
	f.StringVar(&opts.setHotkey, "set-hotkey", "", "设置预设快捷键，格式：预设名=ctrl+alt+1")
	f.BoolVarP(&opts.list, "list", "l", false, "列出配置文件中的预设")
	f.BoolVar(&opts.tray, "tray", false, "以托盘模式运行，通过菜单或快捷键切换预设")
	f.BoolVar(&opts.showConfig, "config", false, "显示配置文件路径")
	f.BoolVar(&opts.debug, "debug", false, "在程序目录写入调试日志")

	return cmd
}

func validateArgs(opts *options, cmd *cobra.Command, args []string) error {
	if opts.preset != "" || opts.setHotkey != "" || opts.list || opts.tray || opts.showConfig {
		return cobra.NoArgs(cmd, args)
	}
	if len(args) != 5 && len(args) != 6 {
		return fmt.Errorf("需要 5 或 6 个参数，实际 %d 个\n用法: setdisplay %s", len(args), cliargs.Usage)
	}
	return nil
}

func run(app *App, opts *options, args []string) error {
	if opts.showConfig {
		fmt.Fprintln(app.Stdout, "配置文件路径:", config.GetConfigPath())
		return nil
	}

	if opts.setHotkey != "" {
		if err := updateHotkey(app, opts.setHotkey); err != nil {
			return fmt.Errorf("设置快捷键失败: %w", err)
		}
		fmt.Fprintln(app.Stdout, "快捷键已设置:", opts.setHotkey)
		return nil
	}

	// 直接传参时不读写配置文件
	var cfg *config.Config
	if opts.preset != "" || opts.list || opts.tray {
		cfg = loadConfig(app)
	}

	if opts.debug || (cfg != nil && cfg.Behavior.DebugLog) {
		initDebugLog()
		defer closeDebugLog()
	}

	configurator := display.NewConfigurator(app.Backend, app.Stderr)
	configurator.SetLogger(DebugLog)
	logDisplayInfo(app.Backend, configurator)

	switch {
	case opts.list:
		listPresets(app.Stdout, cfg)
		return nil

	case opts.tray:
		if app.RunTray == nil {
			return fmt.Errorf("当前构建不支持托盘模式")
		}
		app.RunTray(cfg, configurator)
		return nil

	case opts.preset != "":
		p, err := cfg.Find(opts.preset)
		if err != nil {
			return err
		}
		// 失败已经写到错误输出，退出码保持 0
		_ = configurator.Apply(p.Request())
		return nil
	}

	req, err := cliargs.ParseRequest(args)
	if err != nil {
		return err
	}
	_ = configurator.Apply(req)
	return nil
}

func loadConfig(app *App) *config.Config {
	load := app.LoadConfig
	if load == nil {
		load = config.Load
	}
	cfg, err := load()
	if err != nil {
		fmt.Fprintln(app.Stderr, "加载配置失败:", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

func listPresets(w io.Writer, cfg *config.Config) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "名称\t设置\t快捷键")
	for i := range cfg.Presets {
		p := &cfg.Presets[i]
		hk := p.HotkeyString()
		if hk == "" {
			hk = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Summary(), hk)
	}
	tw.Flush()
}

// updateHotkey 解析 "预设名=ctrl+alt+1" 并写回配置文件
func updateHotkey(app *App, arg string) error {
	i := strings.LastIndex(arg, "=")
	if i <= 0 {
		return fmt.Errorf("格式应为 预设名=快捷键: %q", arg)
	}
	name, combo := arg[:i], arg[i+1:]

	hk, err := config.ParseHotkey(combo)
	if err != nil {
		return err
	}

	load := app.LoadConfig
	if load == nil {
		load = config.Load
	}
	// 配置读取失败时不能写回，否则会覆盖用户的文件
	c, err := load()
	if err != nil {
		return err
	}
	p, err := c.Find(name)
	if err != nil {
		return err
	}
	p.Hotkey = hk
	return c.Save()
}

// DefaultApp 使用系统后端和标准输出
func DefaultApp() *App {
	return &App{
		Backend: display.NewBackend(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}
