package render

import "testing"

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []uint32{0xff102030, 0x80aabbcc})
	want := []byte{0x10, 0x20, 0x30, 0xff, 0xaa, 0xbb, 0xcc, 0x80}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestFillRGBAShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	FillRGBA(buf, []uint32{0xff010203, 0xff040506})
	if buf[0] != 1 || buf[3] != 0xff {
		t.Fatalf("first pixel = %v", buf)
	}
}

func TestFillMask(t *testing.T) {
	buf := make([]byte, 12)
	for i := range buf {
		buf[i] = 0x55
	}
	FillMask(buf, 3, 0xc0ff0000, func(i int) bool { return i == 1 })
	if buf[3] != 0 || buf[11] != 0 {
		t.Fatal("unmasked cells should be transparent")
	}
	if buf[4] != 0xff || buf[5] != 0 || buf[7] != 0xc0 {
		t.Fatalf("masked cell = %v", buf[4:8])
	}
}
