//go:build windows

package notify

import (
	"github.com/go-toast/toast"
)

const appID = "SetDisplay"

// ToastNotifier Windows 操作中心通知
type ToastNotifier struct{}

// NewNotifier 创建通知器
func NewNotifier() Notifier {
	return &ToastNotifier{}
}

// Show 显示普通通知
func (n *ToastNotifier) Show(title, message string) error {
	push(toast.Notification{AppID: appID, Title: title, Message: message})
	return nil
}

// Result 成功时短暂提示，失败时保留较长时间并播放提示音
func (n *ToastNotifier) Result(preset, summary string, err error) error {
	notification := toast.Notification{
		AppID:    appID,
		Title:    Title(preset, err),
		Message:  Message(summary, err),
		Duration: toast.Short,
		Audio:    toast.Silent,
	}
	if err != nil {
		notification.Duration = toast.Long
		notification.Audio = toast.Default
	}
	push(notification)
	return nil
}

// push 异步推送，PowerShell 启动较慢，不能阻塞热键和托盘回调
func push(notification toast.Notification) {
	go notification.Push()
}
