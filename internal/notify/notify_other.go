//go:build !windows

package notify

import (
	"fmt"
	"io"
	"os"
)

// ConsoleNotifier 非 Windows 平台输出到终端
type ConsoleNotifier struct {
	out io.Writer
}

// NewNotifier 创建通知器
func NewNotifier() Notifier {
	return &ConsoleNotifier{out: os.Stderr}
}

func (n *ConsoleNotifier) Show(title, message string) error {
	_, err := fmt.Fprintf(n.out, "%s: %s\n", title, message)
	return err
}

func (n *ConsoleNotifier) Result(preset, summary string, err error) error {
	return n.Show(Title(preset, err), Message(summary, err))
}
