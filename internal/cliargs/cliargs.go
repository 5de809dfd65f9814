package cliargs

import (
	"fmt"
	"strconv"
	"strings"

	"setdisplay/internal/display"
)

// Usage 位置参数说明
const Usage = "<宽度> <高度> <色深> <刷新率> <DPI缩放比例> [缩放模式]"

// Atoi 与 C 的 atoi 行为一致：跳过前导空白，可选正负号，读取前导数字
// 非数字输入返回 0，不做范围检查（超出 int32 时按 32 位截断）
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	negative := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
		// 只保留低 32 位
		n %= 1 << 32
	}
	if negative {
		n = -n
	}
	return int(int32(n))
}

// IsNumeric 判断参数是否以数字开头（允许前导空白和正负号）
// 用来区分 "-100" 这样的位置参数和命令行选项
func IsNumeric(s string) bool {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// ParseRequest 解析五个或六个位置参数
// 五个参数时不设置缩放模式
func ParseRequest(args []string) (display.Request, error) {
	if len(args) != 5 && len(args) != 6 {
		return display.Request{}, fmt.Errorf("需要 5 或 6 个参数，实际 %d 个: %s", len(args), Usage)
	}

	req := display.Request{
		Mode: display.Mode{
			Width:       Atoi(args[0]),
			Height:      Atoi(args[1]),
			BitDepth:    Atoi(args[2]),
			RefreshRate: Atoi(args[3]),
		},
		DPIScale: Atoi(args[4]),
	}
	if len(args) == 6 {
		req.ScalingMode = Atoi(args[5])
		req.HasScaling = true
	}
	return req, nil
}

// CommandLine 把请求还原成位置参数
func CommandLine(req display.Request) []string {
	args := []string{
		strconv.Itoa(req.Mode.Width),
		strconv.Itoa(req.Mode.Height),
		strconv.Itoa(req.Mode.BitDepth),
		strconv.Itoa(req.Mode.RefreshRate),
		strconv.Itoa(req.DPIScale),
	}
	if req.HasScaling {
		args = append(args, strconv.Itoa(req.ScalingMode))
	}
	return args
}
