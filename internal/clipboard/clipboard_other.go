//go:build !windows

package clipboard

import "errors"

// ErrUnsupported 当前平台不支持
var ErrUnsupported = errors.New("当前平台不支持剪贴板")

type unsupportedClipboard struct{}

// NewClipboard 创建剪贴板实例
func NewClipboard() Clipboard {
	return unsupportedClipboard{}
}

func (unsupportedClipboard) SetText(string) error {
	return ErrUnsupported
}
