package display

import "unsafe"

// DEVMODE 字段标志
const (
	DM_BITSPERPEL       = 0x00040000
	DM_PELSWIDTH        = 0x00080000
	DM_PELSHEIGHT       = 0x00100000
	DM_DISPLAYFREQUENCY = 0x00400000

	// ModeFields 显示模式请求只携带这四个字段
	ModeFields = DM_PELSWIDTH | DM_PELSHEIGHT | DM_BITSPERPEL | DM_DISPLAYFREQUENCY
)

// ChangeDisplaySettings 标志与返回值
const (
	CDS_UPDATEREGISTRY     = 0x00000001
	DISP_CHANGE_SUCCESSFUL = 0
)

// Mode 显示模式：分辨率、色深、刷新率
type Mode struct {
	Width       int
	Height      int
	BitDepth    int
	RefreshRate int
}

// DevMode 与 DEVMODEW 内存布局一致（显示器版本的联合体）
type DevMode struct {
	DeviceName    [32]uint16
	SpecVersion   uint16
	DriverVersion uint16
	Size          uint16
	DriverExtra   uint16
	Fields        uint32

	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32

	Color         int16
	Duplex        int16
	YResolution   int16
	TTOption      int16
	Collate       int16
	FormName      [32]uint16
	LogPixels     uint16
	BitsPerPel    uint32
	PelsWidth     uint32
	PelsHeight    uint32
	DisplayFlags  uint32
	DisplayFreq   uint32
	ICMMethod     uint32
	ICMIntent     uint32
	MediaType     uint32
	DitherType    uint32
	Reserved1     uint32
	Reserved2     uint32
	PanningWidth  uint32
	PanningHeight uint32
}

// DevModeSize DEVMODEW 结构大小
const DevModeSize = uint16(unsafe.Sizeof(DevMode{}))

// NewDevMode 构造显示模式请求，只填充四个字段，其余全部置零
// 数值不做校验，负数按位原样传递
func NewDevMode(m Mode) DevMode {
	var dm DevMode
	dm.Size = DevModeSize
	dm.DriverExtra = 0
	dm.PelsWidth = uint32(m.Width)
	dm.PelsHeight = uint32(m.Height)
	dm.BitsPerPel = uint32(m.BitDepth)
	dm.DisplayFreq = uint32(m.RefreshRate)
	dm.Fields = ModeFields
	return dm
}

// ModeFromDevMode 从系统返回的 DEVMODE 中取出显示模式
func ModeFromDevMode(dm DevMode) Mode {
	return Mode{
		Width:       int(int32(dm.PelsWidth)),
		Height:      int(int32(dm.PelsHeight)),
		BitDepth:    int(int32(dm.BitsPerPel)),
		RefreshRate: int(int32(dm.DisplayFreq)),
	}
}
