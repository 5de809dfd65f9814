package notify

// Notifier 通知接口
type Notifier interface {
	Show(title, message string) error
	// Result 通知预设的应用结果，部分失败时通知停留更久
	Result(preset, summary string, err error) error
}

// Title 根据应用结果生成通知标题
func Title(preset string, err error) string {
	if err != nil {
		return "显示设置部分失败: " + preset
	}
	return "已应用显示设置: " + preset
}

// Message 成功时为预设摘要，失败时附上每一步的错误（errors.Join 按行分隔）
func Message(summary string, err error) string {
	if err == nil {
		return summary
	}
	return "目标: " + summary + "\n" + err.Error()
}
