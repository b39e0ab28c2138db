package raster

import (
	"image/color"
	"testing"
)

func TestApplyFilterNoneIsIdentity(t *testing.T) {
	src := gradient(20, 20)
	out, err := ApplyFilter(src, FilterNone)
	if err != nil {
		t.Fatalf("ApplyFilter returned error: %v", err)
	}
	if out != src {
		t.Fatal("FilterNone must return the input image unchanged")
	}
}

func TestApplyFilterBW(t *testing.T) {
	src := gradient(4, 4)
	src.SetRGBA(0, 0, color.RGBA{R: 100, G: 150, B: 200, A: 255})

	out, err := ApplyFilter(src, FilterBW)
	if err != nil {
		t.Fatalf("ApplyFilter returned error: %v", err)
	}
	r, g, b, _ := out.At(0, 0).RGBA()
	gray := clampChannel(100*0.299 + 150*0.587 + 200*0.114)
	for name, ch := range map[string]uint8{"r": uint8(r >> 8), "g": uint8(g >> 8), "b": uint8(b >> 8)} {
		if ch != gray {
			t.Fatalf("bw channel %s = %d, want %d", name, ch, gray)
		}
	}
}

func TestApplyFilterClampsChannels(t *testing.T) {
	src := gradient(1, 1)
	src.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	out, err := ApplyFilter(src, FilterSepia)
	if err != nil {
		t.Fatalf("ApplyFilter returned error: %v", err)
	}
	r, _, _, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 255 {
		t.Fatalf("sepia red channel should clamp at 255, got %d", uint8(r>>8))
	}
}

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    FilterKind
		wantErr bool
	}{
		{"none", FilterNone, false},
		{"", FilterNone, false},
		{" Sepia ", FilterSepia, false},
		{"BW", FilterBW, false},
		{"glitch", FilterNone, true},
	}
	for _, tc := range tests {
		got, err := NormalizeFilter(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeFilter(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeFilter(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeFilter(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	img := gradient(8, 8)
	url, err := PNGDataURL(img)
	if err != nil {
		t.Fatalf("PNGDataURL returned error: %v", err)
	}
	decoded, err := DecodeImage(url)
	if err != nil {
		t.Fatalf("DecodeImage returned error: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("bounds mismatch after round trip: %v vs %v", decoded.Bounds(), img.Bounds())
	}

	if _, _, err := ParseDataURL("not-a-data-url"); err == nil {
		t.Fatal("ParseDataURL should reject plain strings")
	}
}
