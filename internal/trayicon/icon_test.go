package trayicon

import (
	"encoding/binary"
	"testing"
)

func TestData(t *testing.T) {
	icon := Data()

	wantLen := 6 + 16 + 40 + iconSize*iconSize*4 + iconSize*4
	if len(icon) != wantLen {
		t.Fatalf("len(icon) = %d, want %d", len(icon), wantLen)
	}
	if typ := binary.LittleEndian.Uint16(icon[2:]); typ != 1 {
		t.Errorf("icon type = %d, want 1", typ)
	}
	if size := binary.LittleEndian.Uint32(icon[14:]); int(size) != wantLen-22 {
		t.Errorf("image size = %d, want %d", size, wantLen-22)
	}
	if offset := binary.LittleEndian.Uint32(icon[18:]); offset != 22 {
		t.Errorf("image offset = %d, want 22", offset)
	}
	if hdr := binary.LittleEndian.Uint32(icon[22:]); hdr != 40 {
		t.Errorf("BITMAPINFOHEADER size = %d, want 40", hdr)
	}
}

func TestIconPixel(t *testing.T) {
	if _, _, _, a := iconPixel(0, 0); a != 0 {
		t.Error("corner should be transparent")
	}
	if b, g, r, a := iconPixel(7, 6); b != 0xD4 || g != 0x78 || r != 0 || a != 0xFF {
		t.Errorf("screen pixel = %x %x %x %x", b, g, r, a)
	}
}
