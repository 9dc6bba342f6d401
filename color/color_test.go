package color

import "testing"

func TestFromHex(t *testing.T) {
	cases := []struct {
		hex  uint32
		want RGB
	}{
		{0x0000ff, RGB{0, 0, 255}},
		{0xffffff, RGB{255, 255, 255}},
		{0xffa000, RGB{255, 160, 0}},
		{0x000000, RGB{0, 0, 0}},
	}

	for i, tc := range cases {
		if got := FromHex(tc.hex); got != tc.want {
			t.Errorf("%d: FromHex(%06x) = %+v, want %+v", i, tc.hex, got, tc.want)
		}
		if got := tc.want.Hex(); got != tc.hex {
			t.Errorf("%d: Hex() round trip = %06x, want %06x", i, got, tc.hex)
		}
	}
}

func TestBuildPaletteClosure(t *testing.T) {
	c1 := FromHex(0x0000ff)
	c2 := FromHex(0xffffff)
	c3 := FromHex(0xffa000)
	p := BuildPalette(c1, c2, c3)

	if p[0] != c1 {
		t.Errorf("p[0] = %+v, want %+v", p[0], c1)
	}
	if p[20] != c2 {
		t.Errorf("p[20] = %+v, want %+v", p[20], c2)
	}
	if p[40] != c3 {
		t.Errorf("p[40] = %+v, want %+v", p[40], c3)
	}
	// t = 19/20: R = 0.05*255 = 12.75 truncates to 12.
	want59 := RGB{12, 8, 242}
	if p[59] != want59 {
		t.Errorf("p[59] = %+v, want %+v", p[59], want59)
	}
}

func TestBuildPaletteConstant(t *testing.T) {
	c := FromHex(0x336699)
	p := BuildPalette(c, c, c)
	for i, got := range p {
		if got != c {
			t.Errorf("p[%d] = %+v, want constant %+v", i, got, c)
		}
	}
}

func TestBuildPaletteMonotonicChannels(t *testing.T) {
	p := BuildPalette(FromHex(0x000000), FromHex(0xffffff), FromHex(0x808080))
	segments := [][2]int{{0, 20}, {20, 40}, {40, 60}}
	channel := func(c RGB, idx int) uint8 {
		switch idx {
		case 0:
			return c.R
		case 1:
			return c.G
		default:
			return c.B
		}
	}
	for _, seg := range segments {
		for ch := 0; ch < 3; ch++ {
			increasing := channel(p[seg[0]+1], ch) >= channel(p[seg[0]], ch)
			for i := seg[0] + 1; i < seg[1]; i++ {
				prev, cur := channel(p[i-1], ch), channel(p[i], ch)
				if increasing && cur < prev {
					t.Errorf("channel %d not monotonic increasing at index %d in segment %v", ch, i, seg)
				}
				if !increasing && cur > prev {
					t.Errorf("channel %d not monotonic decreasing at index %d in segment %v", ch, i, seg)
				}
			}
		}
	}
}

func TestNudgePrimaryCycle(t *testing.T) {
	got := Nudge(FromHex(0x0000ff))
	want := FromHex(0x0005ff)
	if got != want {
		t.Errorf("Nudge(0x0000ff) = %06x, want %06x", got.Hex(), want.Hex())
	}

	got = Nudge(got)
	want = FromHex(0x000aff)
	if got != want {
		t.Errorf("Nudge(0x0005ff) = %06x, want %06x", got.Hex(), want.Hex())
	}
}

func TestNudgeReturnsToPrimary(t *testing.T) {
	c := FromHex(0x0000ff)
	for i := 0; i < 51; i++ {
		c = Nudge(c)
	}
	isPrimaryEdge := (c.R == 255 && c.G == 0) || (c.G == 0 && c.B == 255) ||
		(c.R == 0 && c.B == 255) || (c.R == 0 && c.G == 255) ||
		(c.G == 255 && c.B == 0) || (c.R == 255 && c.B == 0)
	if !isPrimaryEdge {
		t.Errorf("after 51 nudges, %+v is not back on a primary edge", c)
	}
}

func TestAverage(t *testing.T) {
	got := Average(RGB{10, 20, 30}, RGB{20, 40, 70})
	want := RGB{15, 30, 50}
	if got != want {
		t.Errorf("Average = %+v, want %+v", got, want)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	cases := []RGB{
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{128, 64, 200},
		{10, 10, 10},
	}
	for _, c := range cases {
		h, s, l := c.HSL()
		got := FromHSL(h, s, l)
		const tol = 2
		diff := func(a, b uint8) int {
			if a > b {
				return int(a - b)
			}
			return int(b - a)
		}
		if diff(got.R, c.R) > tol || diff(got.G, c.G) > tol || diff(got.B, c.B) > tol {
			t.Errorf("HSL round trip of %+v = %+v (h=%.2f s=%.2f l=%.2f)", c, got, h, s, l)
		}
	}
}

func TestBrightenIdentityAboveThreshold(t *testing.T) {
	// A pixel already at L==1 (pure white) brightened again should stay white.
	c := RGB{255, 255, 255}
	_, s, l := c.HSL()
	if l < 0.9 {
		t.Fatalf("fixture lightness %.2f unexpectedly below threshold", l)
	}
	got := FromHSL(0, s, 1)
	if got != c {
		t.Errorf("brighten-identity fixture = %+v, want %+v", got, c)
	}
}
