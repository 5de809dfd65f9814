//go:build windows

package display

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procChangeDisplaySettingsW      = user32.NewProc("ChangeDisplaySettingsW")
	procEnumDisplaySettingsW        = user32.NewProc("EnumDisplaySettingsW")
	procSystemParametersInfoW       = user32.NewProc("SystemParametersInfoW")
	procGetDisplayConfigBufferSizes = user32.NewProc("GetDisplayConfigBufferSizes")
	procQueryDisplayConfig          = user32.NewProc("QueryDisplayConfig")
	procSetDisplayConfig            = user32.NewProc("SetDisplayConfig")
	procGetDpiForSystem             = user32.NewProc("GetDpiForSystem")
)

// ENUM_CURRENT_SETTINGS EnumDisplaySettings 读取当前模式
const ENUM_CURRENT_SETTINGS = 0xFFFFFFFF

// WindowsBackend user32 实现
type WindowsBackend struct{}

// NewBackend 创建系统后端
func NewBackend() Backend {
	return &WindowsBackend{}
}

// ChangeDisplaySettings 调用 ChangeDisplaySettingsW
func (b *WindowsBackend) ChangeDisplaySettings(dm *DevMode, flags uint32) int32 {
	r, _, _ := procChangeDisplaySettingsW.Call(uintptr(unsafe.Pointer(dm)), uintptr(flags))
	return int32(r)
}

// LogicalDPIOverride 读取 SPI_GETLOGICALDPIOVERRIDE
func (b *WindowsBackend) LogicalDPIOverride() (int32, error) {
	var value int32
	r, _, errno := procSystemParametersInfoW.Call(
		SPI_GETLOGICALDPIOVERRIDE,
		0,
		uintptr(unsafe.Pointer(&value)),
		0,
	)
	if r == 0 {
		return 0, &StatusError{Op: OpGetDPIOverride, Code: errnoCode(errno)}
	}
	return value, nil
}

// SetLogicalDPIOverride 写入 SPI_SETLOGICALDPIOVERRIDE，相对索引可以为负
func (b *WindowsBackend) SetLogicalDPIOverride(relative int32) error {
	r, _, errno := procSystemParametersInfoW.Call(
		SPI_SETLOGICALDPIOVERRIDE,
		uintptr(uint32(relative)),
		0,
		SPIF_UPDATEINIFILE,
	)
	if r == 0 {
		return &StatusError{Op: OpSetDPIOverride, Code: errnoCode(errno)}
	}
	return nil
}

// DisplayConfigBufferSizes 调用 GetDisplayConfigBufferSizes
func (b *WindowsBackend) DisplayConfigBufferSizes(flags uint32) (uint32, uint32, int32) {
	var numPaths, numModes uint32
	r, _, _ := procGetDisplayConfigBufferSizes.Call(
		uintptr(flags),
		uintptr(unsafe.Pointer(&numPaths)),
		uintptr(unsafe.Pointer(&numModes)),
	)
	return numPaths, numModes, int32(r)
}

// QueryDisplayConfig 调用 QueryDisplayConfig
// QDC_DATABASE_CURRENT 要求传入拓扑 ID 指针
func (b *WindowsBackend) QueryDisplayConfig(flags uint32, paths []PathInfo, modes []ModeInfo) (uint32, uint32, int32) {
	numPaths := uint32(len(paths))
	numModes := uint32(len(modes))
	var topology uint32

	r, _, _ := procQueryDisplayConfig.Call(
		uintptr(flags),
		uintptr(unsafe.Pointer(&numPaths)),
		uintptr(unsafe.Pointer(firstPath(paths))),
		uintptr(unsafe.Pointer(&numModes)),
		uintptr(unsafe.Pointer(firstMode(modes))),
		uintptr(unsafe.Pointer(&topology)),
	)
	return numPaths, numModes, int32(r)
}

// SetDisplayConfig 调用 SetDisplayConfig
func (b *WindowsBackend) SetDisplayConfig(paths []PathInfo, modes []ModeInfo, flags uint32) int32 {
	r, _, _ := procSetDisplayConfig.Call(
		uintptr(len(paths)),
		uintptr(unsafe.Pointer(firstPath(paths))),
		uintptr(len(modes)),
		uintptr(unsafe.Pointer(firstMode(modes))),
		uintptr(flags),
	)
	return int32(r)
}

// CurrentSettings 读取主显示器当前模式
func (b *WindowsBackend) CurrentSettings() (DevMode, bool) {
	var dm DevMode
	dm.Size = DevModeSize
	r, _, _ := procEnumDisplaySettingsW.Call(0, ENUM_CURRENT_SETTINGS, uintptr(unsafe.Pointer(&dm)))
	return dm, r != 0
}

// SystemDPI 调用 GetDpiForSystem（Windows 10 1607+），不可用时返回 0
func (b *WindowsBackend) SystemDPI() uint32 {
	if procGetDpiForSystem.Find() != nil {
		return 0
	}
	r, _, _ := procGetDpiForSystem.Call()
	return uint32(r)
}

func firstPath(paths []PathInfo) *PathInfo {
	if len(paths) == 0 {
		return nil
	}
	return &paths[0]
}

func firstMode(modes []ModeInfo) *ModeInfo {
	if len(modes) == 0 {
		return nil
	}
	return &modes[0]
}

func errnoCode(err error) int32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int32(errno)
	}
	return -1
}
