package colorconv

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComplementary(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want RGB
	}{
		{"black", RGB{0, 0, 0}, RGB{255, 255, 255}},
		{"white", RGB{255, 255, 255}, RGB{0, 0, 0}},
		{"red", RGB{255, 0, 0}, RGB{0, 255, 255}},
		{"green", RGB{0, 255, 0}, RGB{255, 0, 255}},
		{"blue", RGB{0, 0, 255}, RGB{255, 255, 0}},
		{"gray stays gray", RGB{128, 128, 128}, RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Complementary(tt.in)); diff != "" {
				t.Errorf("Complementary(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTriadic(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want [2]RGB
	}{
		{"red", RGB{255, 0, 0}, [2]RGB{{0, 255, 0}, {0, 0, 255}}},
		{"green", RGB{0, 255, 0}, [2]RGB{{0, 0, 255}, {255, 0, 0}}},
		// no black/white shortcut here
		{"black", RGB{0, 0, 0}, [2]RGB{{0, 0, 0}, {0, 0, 0}}},
		{"white", RGB{255, 255, 255}, [2]RGB{{255, 255, 255}, {255, 255, 255}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Triadic(tt.in)); diff != "" {
				t.Errorf("Triadic(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTetradic(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want [3]RGB
	}{
		{"red", RGB{255, 0, 0}, [3]RGB{{128, 255, 0}, {0, 255, 255}, {128, 0, 255}}},
		{"black", RGB{0, 0, 0}, [3]RGB{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Tetradic(tt.in)); diff != "" {
				t.Errorf("Tetradic(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestWheel_HuesAreRotated(t *testing.T) {
	// hues 0, 11, 55 and 305; the last wraps past 360 to 35
	for _, in := range []RGB{{255, 1, 0}, {200, 60, 30}, {255, 234, 0}, {255, 0, 234}} {
		base := RGBToHSL(in)
		for i, c := range Tetradic(in) {
			want := math.Mod(base.H+90*float64(i+1), 360)
			got := RGBToHSL(c).H
			// re-deriving the hue from rounded channels may move it by a degree
			if d := hueDistance(got, want); d > 1 {
				t.Errorf("%v tetrad %d: hue %v, want ~%v", in, i, got, want)
			}
		}
	}
}

// hueDistance is the angle between two hues going the short way round.
func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}

func TestHueDistance(t *testing.T) {
	for _, tt := range []struct{ a, b, want float64 }{
		{359, 0, 1},
		{0, 359, 1},
		{90, 270, 180},
		{120, 120, 0},
	} {
		if got := hueDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("hueDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
