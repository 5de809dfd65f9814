package display

import "fmt"

// Backend 显示配置系统调用接口
type Backend interface {
	// ChangeDisplaySettings 提交显示模式请求，返回 DISP_CHANGE_* 状态码
	ChangeDisplaySettings(dm *DevMode, flags uint32) int32

	// LogicalDPIOverride 读取 SPI_GETLOGICALDPIOVERRIDE 的原始值（系统返回负数索引）
	LogicalDPIOverride() (int32, error)

	// SetLogicalDPIOverride 以相对索引设置 DPI 缩放
	SetLogicalDPIOverride(relative int32) error

	// DisplayConfigBufferSizes 获取查询显示配置所需的缓冲区大小
	DisplayConfigBufferSizes(flags uint32) (numPaths, numModes uint32, status int32)

	// QueryDisplayConfig 查询显示配置，返回实际写入的路径数和模式数
	QueryDisplayConfig(flags uint32, paths []PathInfo, modes []ModeInfo) (numPaths, numModes uint32, status int32)

	// SetDisplayConfig 提交完整的路径和模式数组
	SetDisplayConfig(paths []PathInfo, modes []ModeInfo, flags uint32) int32

	// CurrentSettings 读取主显示器当前模式
	CurrentSettings() (DevMode, bool)

	// SystemDPI 获取系统 DPI（96 = 100%）
	SystemDPI() uint32
}

// StatusError 系统调用返回非成功状态
type StatusError struct {
	Op   string
	Code int32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s失败! 错误码: %d", e.Op, e.Code)
}

// 操作名称，用于错误信息
const (
	OpSetMode        = "设置显示模式"
	OpGetDPIOverride = "获取默认 DPI 缩放索引"
	OpSetDPIOverride = "设置 DPI 缩放比例"
	OpBufferSizes    = "获取显示配置缓冲区大小"
	OpQueryConfig    = "查询显示配置"
	OpSetConfig      = "设置显示配置"
)

// Request 一次完整的显示设置请求
type Request struct {
	Mode        Mode
	DPIScale    int
	ScalingMode int
	// HasScaling 为 false 时跳过缩放模式设置（五参数形式）
	HasScaling bool
}
