package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unsafe"
)

type fakeBackend struct {
	changeStatus int32
	gotDevMode   *DevMode
	gotCDSFlags  uint32

	dpiRaw      int32
	dpiGetErr   error
	dpiSetErr   error
	gotRelSet   bool
	gotRelative int32

	sizesStatus int32
	queryStatus int32
	setStatus   int32
	paths       []PathInfo
	numModes    uint32
	setCalled   bool
	gotPaths    []PathInfo
	gotModes    []ModeInfo
	gotSDCFlags uint32

	current    DevMode
	hasCurrent bool
	dpi        uint32

	calls []string
}

func (f *fakeBackend) ChangeDisplaySettings(dm *DevMode, flags uint32) int32 {
	f.calls = append(f.calls, "mode")
	copied := *dm
	f.gotDevMode = &copied
	f.gotCDSFlags = flags
	return f.changeStatus
}

func (f *fakeBackend) LogicalDPIOverride() (int32, error) {
	f.calls = append(f.calls, "getdpi")
	return f.dpiRaw, f.dpiGetErr
}

func (f *fakeBackend) SetLogicalDPIOverride(relative int32) error {
	f.calls = append(f.calls, "setdpi")
	f.gotRelSet = true
	f.gotRelative = relative
	return f.dpiSetErr
}

func (f *fakeBackend) DisplayConfigBufferSizes(uint32) (uint32, uint32, int32) {
	f.calls = append(f.calls, "sizes")
	return uint32(len(f.paths)), f.numModes, f.sizesStatus
}

func (f *fakeBackend) QueryDisplayConfig(_ uint32, paths []PathInfo, modes []ModeInfo) (uint32, uint32, int32) {
	f.calls = append(f.calls, "query")
	if f.queryStatus != ERROR_SUCCESS {
		return 0, 0, f.queryStatus
	}
	n := copy(paths, f.paths)
	return uint32(n), uint32(len(modes)), ERROR_SUCCESS
}

func (f *fakeBackend) SetDisplayConfig(paths []PathInfo, modes []ModeInfo, flags uint32) int32 {
	f.calls = append(f.calls, "setconfig")
	f.setCalled = true
	f.gotPaths = append([]PathInfo(nil), paths...)
	f.gotModes = modes
	f.gotSDCFlags = flags
	return f.setStatus
}

func (f *fakeBackend) CurrentSettings() (DevMode, bool) {
	return f.current, f.hasCurrent
}

func (f *fakeBackend) SystemDPI() uint32 {
	return f.dpi
}

func twoPaths() []PathInfo {
	return []PathInfo{
		{TargetInfo: PathTargetInfo{ID: 1, Scaling: ScalingIdentity}},
		{TargetInfo: PathTargetInfo{ID: 2, Scaling: ScalingIdentity}},
	}
}

func TestStructLayouts(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"DEVMODEW", unsafe.Sizeof(DevMode{}), 220},
		{"DISPLAYCONFIG_PATH_INFO", unsafe.Sizeof(PathInfo{}), 72},
		{"DISPLAYCONFIG_MODE_INFO", unsafe.Sizeof(ModeInfo{}), 64},
		{"dmBitsPerPel offset", unsafe.Offsetof(DevMode{}.BitsPerPel), 168},
		{"dmDisplayFrequency offset", unsafe.Offsetof(DevMode{}.DisplayFreq), 184},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestNewDevModeSetsOnlyModeFields(t *testing.T) {
	dm := NewDevMode(Mode{Width: 1920, Height: 1080, BitDepth: 32, RefreshRate: 60})

	want := DevMode{
		Size:        DevModeSize,
		Fields:      DM_PELSWIDTH | DM_PELSHEIGHT | DM_BITSPERPEL | DM_DISPLAYFREQUENCY,
		PelsWidth:   1920,
		PelsHeight:  1080,
		BitsPerPel:  32,
		DisplayFreq: 60,
	}
	if dm != want {
		t.Fatalf("NewDevMode() = %+v, want %+v", dm, want)
	}
	if dm.DriverExtra != 0 {
		t.Errorf("DriverExtra = %d, want 0", dm.DriverExtra)
	}
}

func TestNewDevModePassesNegativeValuesThrough(t *testing.T) {
	dm := NewDevMode(Mode{Width: -1, Height: 0, BitDepth: 0, RefreshRate: -60})
	got := ModeFromDevMode(dm)
	want := Mode{Width: -1, Height: 0, BitDepth: 0, RefreshRate: -60}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestRelativeIndexForEveryTableValue(t *testing.T) {
	for defaultIndex := 0; defaultIndex < len(scalePercentages); defaultIndex++ {
		for i, pct := range ScalePercentages() {
			if got, want := RelativeIndex(pct, defaultIndex), i-defaultIndex; got != want {
				t.Errorf("RelativeIndex(%d, %d) = %d, want %d", pct, defaultIndex, got, want)
			}
		}
		// 与默认值相同时偏移为 0
		if got := RelativeIndex(ScalePercentage(defaultIndex), defaultIndex); got != 0 {
			t.Errorf("RelativeIndex(default %d) = %d, want 0", defaultIndex, got)
		}
	}
}

// 不在表中的比例静默按 100% 处理
func TestRelativeIndexOutOfTableFallsBackTo100(t *testing.T) {
	for _, pct := range []int{999, 0, -150, 101, 400} {
		for defaultIndex := 0; defaultIndex < 4; defaultIndex++ {
			if got, want := RelativeIndex(pct, defaultIndex), RelativeIndex(100, defaultIndex); got != want {
				t.Errorf("RelativeIndex(%d, %d) = %d, want %d", pct, defaultIndex, got, want)
			}
		}
	}
}

func TestDefaultIndexFromRawIsNonNegative(t *testing.T) {
	tests := []struct {
		raw  int32
		want int
	}{
		{0, 0},
		{-1, 1},
		{-2, 2},
		{3, 3},
		{-120, 120},
	}
	for _, tt := range tests {
		if got := DefaultIndexFromRaw(tt.raw); got != tt.want || got < 0 {
			t.Errorf("DefaultIndexFromRaw(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestScalingFromSelector(t *testing.T) {
	tests := []struct {
		selector int
		want     Scaling
	}{
		{0, ScalingAspectRatioCenteredMax},
		{1, ScalingStretched},
		{2, ScalingCentered},
		{3, ScalingAspectRatioCenteredMax},
		{7, ScalingAspectRatioCenteredMax},
		{-1, ScalingAspectRatioCenteredMax},
	}
	for _, tt := range tests {
		if got := ScalingFromSelector(tt.selector); got != tt.want {
			t.Errorf("ScalingFromSelector(%d) = %s, want %s", tt.selector, got, tt.want)
		}
	}
}

func TestApplyScalingTouchesEveryPath(t *testing.T) {
	paths := twoPaths()
	ApplyScaling(paths, ScalingCentered)
	for i, p := range paths {
		if p.TargetInfo.Scaling != ScalingCentered {
			t.Errorf("path %d scaling = %s, want centered", i, p.TargetInfo.Scaling)
		}
	}
}

func TestApplyScenario(t *testing.T) {
	fb := &fakeBackend{dpiRaw: -1, paths: twoPaths(), numModes: 3}
	var errOut bytes.Buffer
	c := NewConfigurator(fb, &errOut)

	err := c.Apply(Request{
		Mode:        Mode{Width: 1920, Height: 1080, BitDepth: 32, RefreshRate: 60},
		DPIScale:    150,
		ScalingMode: 1,
		HasScaling:  true,
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected error output: %q", errOut.String())
	}

	wantCalls := []string{"mode", "getdpi", "setdpi", "sizes", "query", "setconfig"}
	if strings.Join(fb.calls, ",") != strings.Join(wantCalls, ",") {
		t.Errorf("calls = %v, want %v", fb.calls, wantCalls)
	}

	dm := fb.gotDevMode
	if dm.PelsWidth != 1920 || dm.PelsHeight != 1080 || dm.BitsPerPel != 32 || dm.DisplayFreq != 60 {
		t.Errorf("devmode = %+v", dm)
	}
	if fb.gotCDSFlags != CDS_UPDATEREGISTRY {
		t.Errorf("CDS flags = %#x, want CDS_UPDATEREGISTRY", fb.gotCDSFlags)
	}

	// 150% 在表中索引为 2，默认索引 1
	if fb.gotRelative != 1 {
		t.Errorf("relative index = %d, want 1", fb.gotRelative)
	}

	if fb.gotSDCFlags != SDC_APPLY|SDC_USE_SUPPLIED_DISPLAY_CONFIG|SDC_SAVE_TO_DATABASE {
		t.Errorf("SDC flags = %#x", fb.gotSDCFlags)
	}
	if len(fb.gotPaths) != 2 || len(fb.gotModes) != 3 {
		t.Fatalf("submitted %d paths, %d modes", len(fb.gotPaths), len(fb.gotModes))
	}
	for i, p := range fb.gotPaths {
		if p.TargetInfo.Scaling != ScalingStretched {
			t.Errorf("path %d scaling = %s, want stretched", i, p.TargetInfo.Scaling)
		}
	}
}

func TestSetDPIScalePercentageNotInTable(t *testing.T) {
	fb := &fakeBackend{dpiRaw: -2}
	c := NewConfigurator(fb, &bytes.Buffer{})

	if err := c.SetDPIScalePercentage(999); err != nil {
		t.Fatalf("SetDPIScalePercentage() error = %v", err)
	}
	if fb.gotRelative != -2 {
		t.Errorf("relative index = %d, want -2 (same as 100%%)", fb.gotRelative)
	}
}

func TestDefaultDPIScaleIndexReportsFailure(t *testing.T) {
	fb := &fakeBackend{dpiRaw: -3, dpiGetErr: &StatusError{Op: OpGetDPIOverride, Code: 5}}
	var errOut bytes.Buffer
	c := NewConfigurator(fb, &errOut)

	if got := c.DefaultDPIScaleIndex(); got != 0 {
		t.Errorf("DefaultDPIScaleIndex() = %d, want 0", got)
	}
	if !strings.Contains(errOut.String(), "错误码: 5") {
		t.Errorf("error output = %q", errOut.String())
	}
}

func TestScalingQueryFailureSkipsApply(t *testing.T) {
	fb := &fakeBackend{paths: twoPaths(), queryStatus: 87}
	var errOut bytes.Buffer
	c := NewConfigurator(fb, &errOut)

	err := c.SetDisplayScalingMode(2)
	var se *StatusError
	if !errors.As(err, &se) || se.Op != OpQueryConfig || se.Code != 87 {
		t.Fatalf("SetDisplayScalingMode() error = %v", err)
	}
	if fb.setCalled {
		t.Error("SetDisplayConfig called after failed query")
	}
	if !strings.Contains(errOut.String(), "87") {
		t.Errorf("error output = %q", errOut.String())
	}
}

func TestScalingBufferSizeFailure(t *testing.T) {
	fb := &fakeBackend{sizesStatus: 31}
	c := NewConfigurator(fb, &bytes.Buffer{})

	err := c.SetDisplayScalingMode(0)
	var se *StatusError
	if !errors.As(err, &se) || se.Op != OpBufferSizes {
		t.Fatalf("SetDisplayScalingMode() error = %v", err)
	}
	if strings.Contains(strings.Join(fb.calls, ","), "query") {
		t.Error("QueryDisplayConfig called after failed size query")
	}
}

func TestApplyContinuesAfterEveryFailure(t *testing.T) {
	fb := &fakeBackend{
		changeStatus: -2,
		dpiGetErr:    &StatusError{Op: OpGetDPIOverride, Code: 1},
		dpiSetErr:    &StatusError{Op: OpSetDPIOverride, Code: 2},
		paths:        twoPaths(),
		setStatus:    87,
	}
	var errOut bytes.Buffer
	c := NewConfigurator(fb, &errOut)

	err := c.Apply(Request{DPIScale: 100, ScalingMode: 0, HasScaling: true})
	if err == nil {
		t.Fatal("Apply() error = nil, want joined failures")
	}

	wantCalls := []string{"mode", "getdpi", "setdpi", "sizes", "query", "setconfig"}
	if strings.Join(fb.calls, ",") != strings.Join(wantCalls, ",") {
		t.Errorf("calls = %v, want %v", fb.calls, wantCalls)
	}

	out := errOut.String()
	for _, want := range []string{OpSetMode, OpGetDPIOverride, OpSetDPIOverride, OpSetConfig, "-2", "87"} {
		if !strings.Contains(out, want) {
			t.Errorf("error output missing %q: %q", want, out)
		}
	}
}

func TestApplyWithoutScaling(t *testing.T) {
	fb := &fakeBackend{paths: twoPaths()}
	c := NewConfigurator(fb, &bytes.Buffer{})

	if err := c.Apply(Request{DPIScale: 125}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if fb.setCalled {
		t.Error("scaling mode applied for five-argument request")
	}
}

func TestCurrent(t *testing.T) {
	paths := twoPaths()
	paths[0].TargetInfo.Scaling = ScalingStretched
	fb := &fakeBackend{
		current:    NewDevMode(Mode{Width: 2560, Height: 1440, BitDepth: 32, RefreshRate: 144}),
		hasCurrent: true,
		dpi:        144,
		paths:      paths,
	}
	c := NewConfigurator(fb, &bytes.Buffer{})

	got := c.Current()
	want := Request{
		Mode:        Mode{Width: 2560, Height: 1440, BitDepth: 32, RefreshRate: 144},
		DPIScale:    150,
		ScalingMode: 1,
		HasScaling:  true,
	}
	if got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}
