package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, len(cells)*4)
	FillPaletteRGBA(buf, cells, palette)

	want := []byte{
		1, 2, 3, 255,
		10, 20, 30, 255,
		10, 20, 30, 255, // clamps to the last entry
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d]=%d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPaletteRGBA(buf, []uint8{1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d]=%d, want 0", i, b)
		}
	}
}

func TestFillPaletteRGBAShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	FillPaletteRGBA(buf, []uint8{0, 0, 0}, []color.RGBA{{R: 5, A: 255}})
	if buf[0] != 5 || buf[3] != 255 {
		t.Fatalf("first pixel not written: %v", buf)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillBinaryRGBA(buf, []uint8{0, 3}, color.White, color.Black)
	if buf[0] != 0 || buf[3] != 255 {
		t.Fatalf("off pixel = %v", buf[:4])
	}
	if buf[4] != 255 || buf[5] != 255 || buf[6] != 255 || buf[7] != 255 {
		t.Fatalf("on pixel = %v", buf[4:])
	}
}
