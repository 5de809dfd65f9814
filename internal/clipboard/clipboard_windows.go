//go:build windows

package clipboard

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	openClipboard    = user32.NewProc("OpenClipboard")
	closeClipboard   = user32.NewProc("CloseClipboard")
	emptyClipboard   = user32.NewProc("EmptyClipboard")
	setClipboardData = user32.NewProc("SetClipboardData")

	globalAlloc  = kernel32.NewProc("GlobalAlloc")
	globalFree   = kernel32.NewProc("GlobalFree")
	globalLock   = kernel32.NewProc("GlobalLock")
	globalUnlock = kernel32.NewProc("GlobalUnlock")
)

const (
	CF_UNICODETEXT = 13
	GMEM_MOVEABLE  = 0x0002
)

// WindowsClipboard Windows剪贴板实现
type WindowsClipboard struct{}

// NewClipboard 创建剪贴板实例
func NewClipboard() Clipboard {
	return &WindowsClipboard{}
}

// SetText 设置剪贴板文本
func (c *WindowsClipboard) SetText(text string) error {
	utf16, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}
	size := len(utf16) * 2

	ret, _, errno := openClipboard.Call(0)
	if ret == 0 {
		return errno
	}
	defer closeClipboard.Call()

	emptyClipboard.Call()

	hMem, _, errno := globalAlloc.Call(GMEM_MOVEABLE, uintptr(size))
	if hMem == 0 {
		return errno
	}

	ptr, _, errno := globalLock.Call(hMem)
	if ptr == 0 {
		globalFree.Call(hMem)
		return errno
	}

	copy(unsafe.Slice((*uint16)(unsafe.Pointer(ptr)), len(utf16)), utf16)

	globalUnlock.Call(hMem)

	// 成功后内存归系统所有
	ret, _, errno = setClipboardData.Call(CF_UNICODETEXT, hMem)
	if ret == 0 {
		globalFree.Call(hMem)
		return errno
	}

	return nil
}
