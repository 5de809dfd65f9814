package display

// Scaling 对应 DISPLAYCONFIG_SCALING
type Scaling uint32

const (
	ScalingIdentity               Scaling = 1
	ScalingCentered               Scaling = 2
	ScalingStretched              Scaling = 3
	ScalingAspectRatioCenteredMax Scaling = 4
	ScalingCustom                 Scaling = 5
	ScalingPreferred              Scaling = 128
)

func (s Scaling) String() string {
	switch s {
	case ScalingIdentity:
		return "identity"
	case ScalingCentered:
		return "centered"
	case ScalingStretched:
		return "stretched"
	case ScalingAspectRatioCenteredMax:
		return "aspect-ratio"
	case ScalingCustom:
		return "custom"
	case ScalingPreferred:
		return "preferred"
	}
	return "unknown"
}

// QueryDisplayConfig / SetDisplayConfig 标志
const (
	QDC_DATABASE_CURRENT = 0x00000004

	SDC_USE_SUPPLIED_DISPLAY_CONFIG = 0x00000020
	SDC_APPLY                       = 0x00000080
	SDC_SAVE_TO_DATABASE            = 0x00000200

	// ApplyFlags 立即应用、使用提供的配置、写入配置数据库
	ApplyFlags = SDC_APPLY | SDC_USE_SUPPLIED_DISPLAY_CONFIG | SDC_SAVE_TO_DATABASE
)

// ERROR_SUCCESS 显示配置 API 的成功返回值
const ERROR_SUCCESS = 0

// ScalingFromSelector 命令行选择值映射到缩放策略
// 0=保持宽高比 1=拉伸 2=居中，其他值（含负数）都按保持宽高比处理
func ScalingFromSelector(selector int) Scaling {
	switch selector {
	case 0:
		return ScalingAspectRatioCenteredMax
	case 1:
		return ScalingStretched
	case 2:
		return ScalingCentered
	default:
		return ScalingAspectRatioCenteredMax
	}
}

// SelectorFromScaling ScalingFromSelector 的反向映射，无法表示的策略返回 0
func SelectorFromScaling(s Scaling) int {
	switch s {
	case ScalingStretched:
		return 1
	case ScalingCentered:
		return 2
	default:
		return 0
	}
}

// LUID 适配器标识
type LUID struct {
	LowPart  uint32
	HighPart int32
}

// Rational DISPLAYCONFIG_RATIONAL
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// PathSourceInfo DISPLAYCONFIG_PATH_SOURCE_INFO
type PathSourceInfo struct {
	AdapterID   LUID
	ID          uint32
	ModeInfoIdx uint32
	StatusFlags uint32
}

// PathTargetInfo DISPLAYCONFIG_PATH_TARGET_INFO
type PathTargetInfo struct {
	AdapterID        LUID
	ID               uint32
	ModeInfoIdx      uint32
	OutputTechnology uint32
	Rotation         uint32
	Scaling          Scaling
	RefreshRate      Rational
	ScanLineOrdering uint32
	TargetAvailable  int32
	StatusFlags      uint32
}

// PathInfo DISPLAYCONFIG_PATH_INFO
type PathInfo struct {
	SourceInfo PathSourceInfo
	TargetInfo PathTargetInfo
	Flags      uint32
}

// ModeInfo DISPLAYCONFIG_MODE_INFO，联合体部分不解析
type ModeInfo struct {
	InfoType  uint32
	ID        uint32
	AdapterID LUID
	Info      [6]uint64
}

// ApplyScaling 把缩放策略写到每一条路径上
func ApplyScaling(paths []PathInfo, scaling Scaling) {
	for i := range paths {
		paths[i].TargetInfo.Scaling = scaling
	}
}
