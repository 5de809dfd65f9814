package trayicon

import (
	"bytes"
	"encoding/binary"
)

const iconSize = 16

// Data 生成 16x16 32 位显示器图标 (ICO 格式)
func Data() []byte {
	pixels := make([]byte, iconSize*iconSize*4)
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			b, g, r, a := iconPixel(x, y)
			idx := ((iconSize-1-y)*iconSize + x) * 4 // ICO 位图从下往上存储
			pixels[idx+0] = b
			pixels[idx+1] = g
			pixels[idx+2] = r
			pixels[idx+3] = a
		}
	}
	// AND 掩码全 0，透明度由 alpha 通道决定，每行按 4 字节对齐
	mask := make([]byte, iconSize*4)

	imageSize := 40 + len(pixels) + len(mask)

	var buf bytes.Buffer
	w := func(v interface{}) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	// ICONDIR
	w(uint16(0))
	w(uint16(1)) // 1 = ICO
	w(uint16(1))

	// ICONDIRENTRY
	w(uint8(iconSize))
	w(uint8(iconSize))
	w(uint8(0))
	w(uint8(0))
	w(uint16(1))
	w(uint16(32))
	w(uint32(imageSize))
	w(uint32(6 + 16))

	// BITMAPINFOHEADER，高度包含掩码所以翻倍
	w(uint32(40))
	w(int32(iconSize))
	w(int32(iconSize * 2))
	w(uint16(1))
	w(uint16(32))
	w([6]uint32{})

	buf.Write(pixels)
	buf.Write(mask)
	return buf.Bytes()
}

// iconPixel 蓝色屏幕、深灰边框和底座
func iconPixel(x, y int) (b, g, r, a byte) {
	switch {
	case y >= 2 && y <= 11 && x >= 1 && x <= 14:
		if y == 2 || y == 11 || x == 1 || x == 14 {
			return 0x40, 0x40, 0x40, 0xFF // 边框
		}
		return 0xD4, 0x78, 0x00, 0xFF // 屏幕 #0078D4
	case y >= 12 && y <= 13 && x >= 7 && x <= 8:
		return 0x40, 0x40, 0x40, 0xFF // 支架
	case y == 14 && x >= 4 && x <= 11:
		return 0x40, 0x40, 0x40, 0xFF // 底座
	}
	return 0, 0, 0, 0
}
