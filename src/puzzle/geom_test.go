package puzzle

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{15, 25}, true},
		{"top-left corner", Point{10, 20}, true},
		{"right edge exclusive", Point{40, 25}, false},
		{"bottom edge exclusive", Point{15, 60}, false},
		{"left of rect", Point{9, 25}, false},
		{"above rect", Point{15, 19}, false},
		{"far outside", Point{-100, -100}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestRectOrigin(t *testing.T) {
	r := NewRect(3, 7, 1, 1)
	if o := r.Origin(); o.X != 3 || o.Y != 7 {
		t.Errorf("Origin() = %v, want {3 7}", o)
	}
}
