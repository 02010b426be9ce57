package color

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		t    float32
		want Color
	}{
		{"t=0 returns a", Black, White, 0, Black},
		{"t=1 returns b", Black, White, 1, White},
		{"midpoint", Black, White, 0.5, Color{128, 128, 128, 255}},
		{"clamps below 0", Black, White, -1, Black},
		{"clamps above 1", Black, White, 2, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Lerp(tt.b, tt.t); got != tt.want {
				t.Errorf("Lerp(%+v, %+v, %v) = %+v, want %+v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestRGBIsOpaque(t *testing.T) {
	if got := RGB(10, 20, 30); got.A != 255 {
		t.Errorf("RGB(10,20,30).A = %d, want 255", got.A)
	}
}

// Mortel palette values are part of the engine's public contract: demos and
// tests reference them by name, so a regression here is a silent behavior
// change for every caller.
func TestMortelPalette(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"MortelBlack", MortelBlack, Color{0x1e, 0x1e, 0x1e, 255}},
		{"MortelWhite", MortelWhite, Color{0xe1, 0xe1, 0xe1, 255}},
		{"MortelRed", MortelRed, Color{0xe1, 0x1e, 0x1e, 255}},
		{"MortelGreen", MortelGreen, Color{0x1e, 0xe1, 0x1e, 255}},
		{"MortelBlue", MortelBlue, Color{0x1e, 0x1e, 0xe1, 255}},
		{"MortelMagenta", MortelMagenta, Color{0xe1, 0x1e, 0xe1, 255}},
		{"MortelCyan", MortelCyan, Color{0x1e, 0xe1, 0xe1, 255}},
		{"MortelYellow", MortelYellow, Color{0xe1, 0xe1, 0x1e, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestToF32FromF32RoundTrip(t *testing.T) {
	c := Color{200, 100, 50, 255}
	r, g, b, a := c.ToF32()
	got := FromF32(r, g, b, a)
	if got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestFromF32Clamps(t *testing.T) {
	got := FromF32(-1, 2, 0.5, 1)
	want := Color{0, 255, 128, 255}
	if got != want {
		t.Errorf("FromF32(-1,2,0.5,1) = %+v, want %+v", got, want)
	}
}

func TestSRGBLinearRoundTrip(t *testing.T) {
	for _, s := range []float32{0, 0.01, 0.2, 0.5, 0.9, 1} {
		l := SRGBToLinear(s)
		back := LinearToSRGB(l)
		if diff := back - s; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("SRGBToLinear/LinearToSRGB(%v) round trip = %v, want ~%v", s, back, s)
		}
	}
}
