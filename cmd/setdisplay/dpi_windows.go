//go:build windows

package main

import "golang.org/x/sys/windows"

// DPI_AWARENESS_CONTEXT 取值是负数句柄
const (
	dpiAwarenessContextPerMonitorAwareV2 = ^uintptr(3) // -4
	dpiAwarenessContextPerMonitorAware   = ^uintptr(2) // -3
	processPerMonitorDPIAware            = 2
)

func init() {
	// 进程需要 DPI 感知，否则 EnumDisplaySettings / GetDpiForSystem 返回虚拟化后的值
	// 必须在任何 Win32 调用之前设置
	user32 := windows.NewLazySystemDLL("user32.dll")

	ctx := user32.NewProc("SetProcessDpiAwarenessContext")
	if ctx.Find() == nil {
		for _, c := range []uintptr{dpiAwarenessContextPerMonitorAwareV2, dpiAwarenessContextPerMonitorAware} {
			if r, _, _ := ctx.Call(c); r != 0 {
				return
			}
		}
	}

	// Windows 8.1
	shcore := windows.NewLazySystemDLL("shcore.dll")
	awareness := shcore.NewProc("SetProcessDpiAwareness")
	if awareness.Find() == nil {
		awareness.Call(processPerMonitorDPIAware)
		return
	}

	// Vista
	user32.NewProc("SetProcessDPIAware").Call()
}
