package display

import (
	"errors"
	"fmt"
	"io"
)

// Configurator 依次执行三个显示设置操作
// 每个操作的失败都只写到错误输出，不影响后续操作
type Configurator struct {
	backend Backend
	errOut  io.Writer
	logf    func(format string, args ...interface{})
}

// NewConfigurator 创建配置器，errOut 通常是 os.Stderr
func NewConfigurator(backend Backend, errOut io.Writer) *Configurator {
	return &Configurator{
		backend: backend,
		errOut:  errOut,
		logf:    func(string, ...interface{}) {},
	}
}

// SetLogger 设置调试日志输出
func (c *Configurator) SetLogger(logf func(format string, args ...interface{})) {
	if logf != nil {
		c.logf = logf
	}
}

func (c *Configurator) report(err error) error {
	fmt.Fprintln(c.errOut, err)
	c.logf("错误: %v", err)
	return err
}

// Apply 按固定顺序执行：显示模式 -> DPI 缩放 -> 缩放模式
// 返回所有失败的汇总，已经全部写到错误输出
func (c *Configurator) Apply(req Request) error {
	var errs []error

	if err := c.SetDisplayMode(req.Mode); err != nil {
		errs = append(errs, err)
	}
	if err := c.SetDPIScalePercentage(req.DPIScale); err != nil {
		errs = append(errs, err)
	}
	if req.HasScaling {
		if err := c.SetDisplayScalingMode(req.ScalingMode); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SetDisplayMode 更新注册表中的显示模式
func (c *Configurator) SetDisplayMode(m Mode) error {
	dm := NewDevMode(m)
	c.logf("设置显示模式: %dx%d %dbit %dHz", m.Width, m.Height, m.BitDepth, m.RefreshRate)

	if status := c.backend.ChangeDisplaySettings(&dm, CDS_UPDATEREGISTRY); status != DISP_CHANGE_SUCCESSFUL {
		return c.report(&StatusError{Op: OpSetMode, Code: status})
	}
	return nil
}

// DefaultDPIScaleIndex 获取系统默认 DPI 缩放索引（总是非负）
// 查询失败时报告错误并返回 0
func (c *Configurator) DefaultDPIScaleIndex() int {
	raw, err := c.backend.LogicalDPIOverride()
	if err != nil {
		c.report(err)
		return 0
	}
	return DefaultIndexFromRaw(raw)
}

// SetDPIScalePercentage 设置 DPI 缩放比例
// 不在比例表中的值按 100% 计算偏移
func (c *Configurator) SetDPIScalePercentage(percentage int) error {
	defaultIndex := c.DefaultDPIScaleIndex()
	relative := RelativeIndex(percentage, defaultIndex)
	c.logf("设置 DPI 缩放: %d%% (索引 %d, 默认索引 %d, 相对 %d)",
		percentage, ScaleIndex(percentage), defaultIndex, relative)

	if err := c.backend.SetLogicalDPIOverride(int32(relative)); err != nil {
		return c.report(err)
	}
	return nil
}

// SetDisplayScalingMode 查询当前显示配置，改写所有路径的缩放策略后重新提交
// 读取缓冲区大小或查询失败时只报告错误，不调用 SetDisplayConfig
func (c *Configurator) SetDisplayScalingMode(selector int) error {
	scaling := ScalingFromSelector(selector)
	c.logf("设置缩放模式: %d -> %s", selector, scaling)

	numPaths, numModes, status := c.backend.DisplayConfigBufferSizes(QDC_DATABASE_CURRENT)
	if status != ERROR_SUCCESS {
		return c.report(&StatusError{Op: OpBufferSizes, Code: status})
	}

	// 缓冲区只在本次调用内有效
	paths := make([]PathInfo, numPaths)
	modes := make([]ModeInfo, numModes)

	numPaths, numModes, status = c.backend.QueryDisplayConfig(QDC_DATABASE_CURRENT, paths, modes)
	if status != ERROR_SUCCESS {
		// 查询失败时缓冲区内容不可信，不再提交
		return c.report(&StatusError{Op: OpQueryConfig, Code: status})
	}
	paths = paths[:min(int(numPaths), len(paths))]
	modes = modes[:min(int(numModes), len(modes))]
	c.logf("查询到 %d 条路径, %d 个模式", len(paths), len(modes))

	ApplyScaling(paths, scaling)

	if status := c.backend.SetDisplayConfig(paths, modes, ApplyFlags); status != ERROR_SUCCESS {
		return c.report(&StatusError{Op: OpSetConfig, Code: status})
	}
	return nil
}

// Current 读取当前显示设置，读不到的部分保持零值
func (c *Configurator) Current() Request {
	var req Request

	if dm, ok := c.backend.CurrentSettings(); ok {
		req.Mode = ModeFromDevMode(dm)
	}
	if dpi := c.backend.SystemDPI(); dpi != 0 {
		req.DPIScale = PercentageFromDPI(dpi)
	}

	numPaths, numModes, status := c.backend.DisplayConfigBufferSizes(QDC_DATABASE_CURRENT)
	if status != ERROR_SUCCESS || numPaths == 0 {
		return req
	}
	paths := make([]PathInfo, numPaths)
	modes := make([]ModeInfo, numModes)
	numPaths, _, status = c.backend.QueryDisplayConfig(QDC_DATABASE_CURRENT, paths, modes)
	if status != ERROR_SUCCESS || numPaths == 0 {
		return req
	}

	req.ScalingMode = SelectorFromScaling(paths[0].TargetInfo.Scaling)
	req.HasScaling = true
	return req
}
