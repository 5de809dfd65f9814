package display

// SystemParametersInfo 动作与标志
const (
	SPI_GETLOGICALDPIOVERRIDE = 0x009E
	SPI_SETLOGICALDPIOVERRIDE = 0x009F
	SPIF_UPDATEINIFILE        = 0x0001
)

// scalePercentages Windows 10/11 允许的 DPI 缩放比例，顺序即系统索引
var scalePercentages = [...]int{100, 125, 150, 175, 200, 225, 250, 300, 350}

// ScalePercentages 返回缩放比例表的副本
func ScalePercentages() []int {
	out := make([]int, len(scalePercentages))
	copy(out, scalePercentages[:])
	return out
}

// ScaleIndex 查找缩放比例在表中的索引
// 不在表中的值静默返回 0（即 100%），不报错
func ScaleIndex(percentage int) int {
	index := 0
	for i, p := range scalePercentages {
		if p == percentage {
			index = i
		}
	}
	return index
}

// ScalePercentage 按索引取缩放比例，越界返回 0
func ScalePercentage(index int) int {
	if index < 0 || index >= len(scalePercentages) {
		return 0
	}
	return scalePercentages[index]
}

// DefaultIndexFromRaw 系统返回的是负数索引，取绝对值
func DefaultIndexFromRaw(raw int32) int {
	if raw < 0 {
		return int(-int64(raw))
	}
	return int(raw)
}

// RelativeIndex 计算目标比例相对系统默认索引的偏移
func RelativeIndex(percentage, defaultIndex int) int {
	return ScaleIndex(percentage) - defaultIndex
}

// PercentageFromDPI 把 DPI 值换算成百分比（96 DPI = 100%）
func PercentageFromDPI(dpi uint32) int {
	return int(dpi) * 100 / 96
}
