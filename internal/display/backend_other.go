//go:build !windows

package display

// statusNotSupported ERROR_NOT_SUPPORTED
const statusNotSupported = 50

// UnsupportedBackend 非 Windows 平台，所有调用都返回失败状态
type UnsupportedBackend struct{}

// NewBackend 创建系统后端
func NewBackend() Backend {
	return &UnsupportedBackend{}
}

func (b *UnsupportedBackend) ChangeDisplaySettings(*DevMode, uint32) int32 {
	return -1 // DISP_CHANGE_FAILED
}

func (b *UnsupportedBackend) LogicalDPIOverride() (int32, error) {
	return 0, &StatusError{Op: OpGetDPIOverride, Code: statusNotSupported}
}

func (b *UnsupportedBackend) SetLogicalDPIOverride(int32) error {
	return &StatusError{Op: OpSetDPIOverride, Code: statusNotSupported}
}

func (b *UnsupportedBackend) DisplayConfigBufferSizes(uint32) (uint32, uint32, int32) {
	return 0, 0, statusNotSupported
}

func (b *UnsupportedBackend) QueryDisplayConfig(uint32, []PathInfo, []ModeInfo) (uint32, uint32, int32) {
	return 0, 0, statusNotSupported
}

func (b *UnsupportedBackend) SetDisplayConfig([]PathInfo, []ModeInfo, uint32) int32 {
	return statusNotSupported
}

func (b *UnsupportedBackend) CurrentSettings() (DevMode, bool) {
	return DevMode{}, false
}

func (b *UnsupportedBackend) SystemDPI() uint32 {
	return 0
}
