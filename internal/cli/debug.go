package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"setdisplay/internal/cliargs"
	"setdisplay/internal/display"
)

var debugLogFile *os.File

func initDebugLog() {
	exePath, err := os.Executable()
	if err != nil {
		return
	}
	logPath := filepath.Join(filepath.Dir(exePath), "setdisplay_debug.log")
	debugLogFile, _ = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func closeDebugLog() {
	if debugLogFile != nil {
		debugLogFile.Close()
		debugLogFile = nil
	}
}

// DebugLog 写一行调试日志，未启用时忽略
func DebugLog(format string, args ...interface{}) {
	if debugLogFile == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("[%s] %s\n", ts, fmt.Sprintf(format, args...))
	debugLogFile.WriteString(line)
	debugLogFile.Sync()
}

// logDisplayInfo 记录修改前的显示设置
// DPI 原始值直接从后端读取，失败只进调试日志，不写错误输出
func logDisplayInfo(backend display.Backend, configurator *display.Configurator) {
	if debugLogFile == nil {
		return
	}

	current := configurator.Current()
	DebugLog("=== 当前显示设置 ===")
	DebugLog("模式: %dx%d %dbit %dHz", current.Mode.Width, current.Mode.Height, current.Mode.BitDepth, current.Mode.RefreshRate)
	if raw, err := backend.LogicalDPIOverride(); err != nil {
		DebugLog("系统 DPI 缩放: %d%%, 默认索引读取失败: %v", current.DPIScale, err)
	} else {
		DebugLog("系统 DPI 缩放: %d%%, 默认索引: %d (原始值 %d)", current.DPIScale, display.DefaultIndexFromRaw(raw), raw)
	}
	if current.HasScaling {
		DebugLog("首条路径缩放模式: %d", current.ScalingMode)
	}
	DebugLog("等效命令: setdisplay %s", strings.Join(cliargs.CommandLine(current), " "))
}
