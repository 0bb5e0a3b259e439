package gconf

import "testing"

func TestCorrectableConfig(t *testing.T) {
	cases := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero value gets all defaults",
			in:   Config{},
			want: defaultConfig(),
		},
		{
			name: "bad theme reset",
			in:   Config{Theme: "neon", Image: "m.png", Cols: 4, Rows: 4, WindowW: 960, WindowH: 640},
			want: Config{Theme: "light", Image: "m.png", Cols: 4, Rows: 4, WindowW: 960, WindowH: 640},
		},
		{
			name: "grid out of range reset",
			in:   Config{Theme: "dark", Image: "m.png", Cols: 1, Rows: 99, WindowW: 960, WindowH: 640},
			want: Config{Theme: "dark", Image: "m.png", Cols: 3, Rows: 3, WindowW: 960, WindowH: 640},
		},
		{
			name: "undersized window reset",
			in:   Config{Theme: "dark", Image: "m.png", Cols: 3, Rows: 3, WindowW: 100, WindowH: 5000},
			want: Config{Theme: "dark", Image: "m.png", Cols: 3, Rows: 3, WindowW: 960, WindowH: 640},
		},
	}
	for _, tc := range cases {
		c := tc.in
		CorrectableConfig(&c)
		if c != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, c, tc.want)
		}
	}
}
