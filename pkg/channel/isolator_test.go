package channel

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func fillImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestBlackChannelOnGrayIsIdentity(t *testing.T) {
	// Pure gray has c=m=y=0 already, so keeping only black changes nothing
	iso := New(0)
	gray := fillImage(16, 12, color.NRGBA{128, 128, 128, 255})

	out := iso.Isolate(gray, Black)

	if !bytes.Equal(out.Pix, gray.Pix) {
		t.Error("black-channel isolation of a pure gray image should be identity")
	}
}

func TestBlackChannelOnRedIsWhite(t *testing.T) {
	// Pure red has k=0; zeroing c, m and y leaves a fully white pixel
	iso := New(0)
	red := fillImage(8, 8, color.NRGBA{255, 0, 0, 255})

	out := iso.Isolate(red, Black)

	got := out.NRGBAAt(3, 3)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("black channel of pure red = (%d,%d,%d), expected (255,255,255)",
			got.R, got.G, got.B)
	}
}

func TestCyanChannelOfCyan(t *testing.T) {
	iso := New(0)
	cyanImg := fillImage(4, 4, color.NRGBA{0, 255, 255, 255})

	out := iso.Isolate(cyanImg, Cyan)

	got := out.NRGBAAt(0, 0)
	if got.R != 0 || got.G != 255 || got.B != 255 {
		t.Errorf("cyan channel of pure cyan = (%d,%d,%d), expected (0,255,255)",
			got.R, got.G, got.B)
	}
}

func TestIsolateIdempotent(t *testing.T) {
	iso := New(0)
	img := image.NewNRGBA(image.Rect(0, 0, 20, 15))
	for y := 0; y < 15; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 12), uint8(y * 17), uint8((x + y) * 7), 255})
		}
	}

	for _, ch := range Channels {
		once := iso.Isolate(img, ch)
		twice := iso.Isolate(once, ch)
		if !bytes.Equal(once.Pix, twice.Pix) {
			t.Errorf("channel %s: isolation is not idempotent", ch)
		}
	}
}

func TestIsolateDoesNotMutateInput(t *testing.T) {
	iso := New(0)
	img := fillImage(6, 6, color.NRGBA{10, 200, 90, 255})
	before := append([]byte(nil), img.Pix...)

	iso.Isolate(img, Magenta)

	if !bytes.Equal(img.Pix, before) {
		t.Error("Isolate mutated its input buffer")
	}
}

func TestIsolatePreservesDimensions(t *testing.T) {
	iso := New(3)
	img := fillImage(31, 17, color.NRGBA{100, 150, 200, 255})

	out := iso.Isolate(img, Yellow)
	bounds := out.Bounds()
	if bounds.Dx() != 31 || bounds.Dy() != 17 {
		t.Errorf("output is %dx%d, expected 31x17", bounds.Dx(), bounds.Dy())
	}
}

func TestWorkerCountsAgree(t *testing.T) {
	// The split across workers must not change the result
	img := image.NewNRGBA(image.Rect(0, 0, 37, 23))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 31)
	}
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			c := img.NRGBAAt(x, y)
			c.A = 255
			img.SetNRGBA(x, y, c)
		}
	}

	serial := New(1).Isolate(img, Magenta)
	parallel := New(8).Isolate(img, Magenta)

	if !bytes.Equal(serial.Pix, parallel.Pix) {
		t.Error("serial and parallel isolation produced different buffers")
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		input    string
		expected Channel
		wantErr  bool
	}{
		{"cyan", Cyan, false},
		{"MAGENTA", Magenta, false},
		{" yellow ", Yellow, false},
		{"k", Black, false},
		{"c", Cyan, false},
		{"orange", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		got, err := ParseChannel(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseChannel(%q): expected error", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChannel(%q) failed: %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseChannel(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestChannelString(t *testing.T) {
	names := map[Channel]string{Cyan: "cyan", Magenta: "magenta", Yellow: "yellow", Black: "black"}
	for ch, name := range names {
		if ch.String() != name {
			t.Errorf("Channel(%d).String() = %s, expected %s", int(ch), ch.String(), name)
		}
	}
}

func BenchmarkIsolate(b *testing.B) {
	iso := New(0)
	img := fillImage(1000, 500, color.NRGBA{120, 80, 40, 255})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iso.Isolate(img, Cyan)
	}
}
