package hex

import (
	"errors"
	"testing"
)

var allPairs = [][2]Axis{
	{AxisH, AxisI}, {AxisI, AxisH},
	{AxisH, AxisJ}, {AxisJ, AxisH},
	{AxisI, AxisJ}, {AxisJ, AxisI},
}

func TestNewLayout(t *testing.T) {
	tests := []struct {
		layers   int
		diameter int
		size     int
		center   int
	}{
		{layers: 1, diameter: 1, size: 1, center: 0},
		{layers: 2, diameter: 3, size: 7, center: 3},
		{layers: 3, diameter: 5, size: 19, center: 9},
		{layers: 5, diameter: 9, size: 61, center: 30},
	}

	for _, tt := range tests {
		l, err := New(tt.layers)
		if err != nil {
			t.Fatalf("New(%d) failed: %v", tt.layers, err)
		}
		if l.Diameter() != tt.diameter {
			t.Errorf("New(%d).Diameter() = %d, want %d", tt.layers, l.Diameter(), tt.diameter)
		}
		if l.Size() != tt.size {
			t.Errorf("New(%d).Size() = %d, want %d", tt.layers, l.Size(), tt.size)
		}
		if l.Center() != tt.center {
			t.Errorf("New(%d).Center() = %d, want %d", tt.layers, l.Center(), tt.center)
		}
	}
}

func TestNewLayoutRejectsEmptyBoard(t *testing.T) {
	for _, layers := range []int{0, -1, -7} {
		if _, err := New(layers); !errors.Is(err, ErrInvalidLayers) {
			t.Errorf("New(%d) error = %v, want ErrInvalidLayers", layers, err)
		}
	}
}

func TestKRoundTrip(t *testing.T) {
	for layers := 1; layers <= 8; layers++ {
		l := MustNew(layers)
		for k := 0; k < l.Size(); k++ {
			c, err := l.FromK(k)
			if err != nil {
				t.Fatalf("layers=%d FromK(%d) failed: %v", layers, k, err)
			}
			got, err := l.ToK(c)
			if err != nil {
				t.Fatalf("layers=%d ToK(%v) failed: %v", layers, c, err)
			}
			if got != k {
				t.Errorf("layers=%d ToK(FromK(%d)) = %d", layers, k, got)
			}
		}
	}
}

func TestFromKMatchesScan(t *testing.T) {
	for layers := 1; layers <= 30; layers++ {
		l := MustNew(layers)
		for k := 0; k < l.Size(); k++ {
			closed, _ := l.FromK(k)
			scanned := l.fromKScan(k)
			if closed != scanned {
				t.Fatalf("layers=%d k=%d: closed form %v, scan %v", layers, k, closed, scanned)
			}
		}
	}
}

func TestRowCoverage(t *testing.T) {
	for layers := 1; layers <= 8; layers++ {
		l := MustNew(layers)
		for _, pair := range allPairs {
			seen := make(map[int]bool, l.Size())
			for row := 0; row < l.Diameter(); row++ {
				min, max := l.RowBounds(row, pair[0], pair[1])
				for col := min; col <= max; col++ {
					k, err := l.ToK(On(pair[0], row, pair[1], col))
					if err != nil {
						t.Fatalf("layers=%d %v: ToK failed: %v", layers, pair, err)
					}
					if seen[k] {
						t.Fatalf("layers=%d %v: cell k=%d visited twice", layers, pair, k)
					}
					seen[k] = true
				}
			}
			if len(seen) != l.Size() {
				t.Errorf("layers=%d %v: visited %d cells, want %d", layers, pair, len(seen), l.Size())
			}
		}
	}
}

func TestRowMajorOrderOnHI(t *testing.T) {
	l := MustNew(5)
	k := 0
	for h := 0; h < l.Diameter(); h++ {
		min, max := l.RowBounds(h, AxisH, AxisI)
		for i := min; i <= max; i++ {
			got, err := l.ToK(HI(h, i))
			if err != nil {
				t.Fatalf("ToK(%d, %d) failed: %v", h, i, err)
			}
			if got != k {
				t.Errorf("ToK(%d, %d) = %d, want %d", h, i, got, k)
			}
			k++
		}
	}
}

func TestRowBoundsWidths(t *testing.T) {
	l := MustNew(3)
	// Rows shrink by one toward either pole: 3 4 5 4 3.
	want := []int{3, 4, 5, 4, 3}
	for _, pair := range allPairs {
		for row, w := range want {
			min, max := l.RowBounds(row, pair[0], pair[1])
			if max-min+1 != w {
				t.Errorf("%v row %d width = %d, want %d", pair, row, max-min+1, w)
			}
		}
	}

	if min, max := l.RowBounds(5, AxisH, AxisI); min <= max {
		t.Errorf("RowBounds(out of range) = (%d, %d), want empty range", min, max)
	}
}

func TestAxisSymmetry(t *testing.T) {
	for layers := 1; layers <= 6; layers++ {
		l := MustNew(layers)
		for k := 0; k < l.Size(); k++ {
			c, _ := l.FromK(k)
			for _, pair := range allPairs {
				conv, err := l.Convert(c, pair[0], pair[1])
				if err != nil {
					t.Fatalf("Convert(%v, %v) failed: %v", c, pair, err)
				}
				if got, _ := l.ToK(conv); got != k {
					t.Errorf("layers=%d k=%d via %v = %d", layers, k, pair, got)
				}
				back, err := l.Canonical(conv)
				if err != nil {
					t.Fatalf("Canonical(%v) failed: %v", conv, err)
				}
				if back != c {
					t.Errorf("Canonical(%v) = %v, want %v", conv, back, c)
				}
			}
		}
	}
}

func TestThirdAxisIdentity(t *testing.T) {
	l := MustNew(4)
	for k := 0; k < l.Size(); k++ {
		hi, _ := l.FromK(k)
		h, i := hi.A, hi.B
		j := l.Third(hi)
		if j != i-h+l.Layers()-1 {
			t.Errorf("Third(%v) = %d, want %d", hi, j, i-h+l.Layers()-1)
		}
		if got := l.Third(On(AxisI, i, AxisJ, j)); got != h {
			t.Errorf("Third(I=%d, J=%d) = %d, want H=%d", i, j, got, h)
		}
		if got := l.Third(On(AxisJ, j, AxisH, h)); got != i {
			t.Errorf("Third(J=%d, H=%d) = %d, want I=%d", j, h, got, i)
		}
		if j < 0 || j >= l.Diameter() {
			t.Errorf("Third(%v) = %d outside [0, %d)", hi, j, l.Diameter())
		}
	}
}

func TestOutOfRange(t *testing.T) {
	l := MustNew(2)

	tests := []struct {
		name string
		c    Coord
		want error
	}{
		{name: "row below zero", c: HI(-1, 0), want: ErrIndexOutOfRange},
		{name: "row past diameter", c: HI(3, 1), want: ErrIndexOutOfRange},
		{name: "cut corner", c: HI(0, 2), want: ErrIndexOutOfRange},
		{name: "cut corner bottom", c: HI(2, 0), want: ErrIndexOutOfRange},
		{name: "same axis twice", c: On(AxisI, 0, AxisI, 1), want: ErrInvalidAxes},
		{name: "unknown axis", c: On(Axis(7), 0, AxisI, 1), want: ErrInvalidAxes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.ToK(tt.c); !errors.Is(err, tt.want) {
				t.Errorf("ToK(%v) error = %v, want %v", tt.c, err, tt.want)
			}
		})
	}

	for _, k := range []int{-1, 7, 100} {
		if _, err := l.FromK(k); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("FromK(%d) error = %v, want ErrIndexOutOfRange", k, err)
		}
	}
}

func TestSingleCellBoard(t *testing.T) {
	l := MustNew(1)
	c, err := l.FromK(0)
	if err != nil {
		t.Fatalf("FromK(0) failed: %v", err)
	}
	if c != HI(0, 0) {
		t.Errorf("FromK(0) = %v, want (H: 0, I: 0)", c)
	}
	for _, pair := range allPairs {
		min, max := l.RowBounds(0, pair[0], pair[1])
		if min != 0 || max != 0 {
			t.Errorf("%v RowBounds(0) = (%d, %d), want (0, 0)", pair, min, max)
		}
	}
	if l.Third(c) != 0 {
		t.Errorf("Third(centre) = %d, want 0", l.Third(c))
	}
}

func TestDistance(t *testing.T) {
	l := MustNew(3)
	a := HI(2, 0)
	b := HI(2, 4)
	if got := l.Distance(a, b); got != 0.8 {
		t.Errorf("Distance(%v, %v) = %v, want 0.8", a, b, got)
	}
	if got := l.Distance(a, a); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
	bOnIH, _ := l.Convert(b, AxisI, AxisH)
	if got := l.Distance(a, bOnIH); got != 0.8 {
		t.Errorf("Distance across axis pairs = %v, want 0.8", got)
	}
}

func TestPositionCentresBoard(t *testing.T) {
	l := MustNew(3)
	center, _ := l.FromK(l.Center())
	x, _, err := l.Position(center)
	if err != nil {
		t.Fatalf("Position(centre) failed: %v", err)
	}
	left, _, _ := l.Position(HI(2, 0))
	right, _, _ := l.Position(HI(2, 4))
	if x-left != right-x {
		t.Errorf("centre x = %v not midway between %v and %v", x, left, right)
	}
	top, _, _ := l.Position(HI(0, 0))
	if top != 1 {
		t.Errorf("top-left x = %v, want 1", top)
	}
}

func TestIsqrt(t *testing.T) {
	for n := 0; n < 5000; n++ {
		r := isqrt(n)
		if r*r > n || (r+1)*(r+1) <= n {
			t.Fatalf("isqrt(%d) = %d", n, r)
		}
	}
}
