package colour

import (
	"errors"
	"math"
	"testing"
)

type testSwatch struct {
	id  string
	rgb RGB
}

func (s testSwatch) SwatchID() string { return s.id }
func (s testSwatch) SwatchRGB() RGB   { return s.rgb }

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want float64
	}{
		{name: "identity", a: RGB{R: 12, G: 34, B: 56}, b: RGB{R: 12, G: 34, B: 56}, want: 0},
		{name: "single channel", a: RGB{}, b: RGB{R: 3}, want: 3},
		{name: "pythagorean", a: RGB{}, b: RGB{R: 3, G: 4}, want: 5},
		{name: "black to white", a: RGB{}, b: RGB{R: 255, G: 255, B: 255}, want: MaxDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if rev := Distance(tt.b, tt.a); rev != got {
				t.Errorf("Distance not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	catalog := []testSwatch{
		{id: "white", rgb: RGB{R: 255, G: 255, B: 255}},
		{id: "red", rgb: RGB{R: 255}},
		{id: "dark-red", rgb: RGB{R: 128}},
		{id: "blue", rgb: RGB{B: 255}},
		{id: "red-twin", rgb: RGB{R: 255}},
	}

	got, err := Nearest(RGB{R: 250}, catalog, 3)
	if err != nil {
		t.Fatalf("Nearest() error: %v", err)
	}

	wantIDs := []string{"red", "red-twin", "dark-red"}
	if len(got) != len(wantIDs) {
		t.Fatalf("Nearest() returned %d matches, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].Item.id != id {
			t.Errorf("match %d = %q, want %q", i, got[i].Item.id, id)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Errorf("distances not ascending at %d: %v < %v", i, got[i].Distance, got[i-1].Distance)
		}
	}
}

func TestNearestLimit(t *testing.T) {
	catalog := []testSwatch{
		{id: "a", rgb: RGB{R: 1}},
		{id: "b", rgb: RGB{R: 2}},
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "limit below size", limit: 1, want: 1},
		{name: "limit equals size", limit: 2, want: 2},
		{name: "limit above size", limit: 10, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nearest(RGB{}, catalog, tt.limit)
			if err != nil {
				t.Fatalf("Nearest() error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}

	for _, limit := range []int{0, -1} {
		if _, err := Nearest(RGB{}, catalog, limit); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Nearest(limit=%d) error = %v, want ErrInvalidArgument", limit, err)
		}
	}
}

func TestNearestExcluding(t *testing.T) {
	catalog := []testSwatch{
		{id: "a", rgb: RGB{R: 255}},
		{id: "b", rgb: RGB{G: 255}},
	}

	got, err := NearestExcluding(RGB{R: 255}, catalog, 5, map[string]struct{}{"a": {}})
	if err != nil {
		t.Fatalf("NearestExcluding() error: %v", err)
	}
	if len(got) != 1 || got[0].Item.id != "b" {
		t.Errorf("NearestExcluding() = %+v, want only b", got)
	}
}
