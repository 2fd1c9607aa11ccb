// Package hex implements addressing for a hexagon-shaped board of hexagonal cells.
//
// Every cell can be named in two ways. The one-dimensional K index enumerates the
// cells row by row, starting at the top left and ending at the bottom right.
// Alternatively any two of the three skew axes H, I and J identify a cell; the
// value on the third axis is derived from the other two.
package hex

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidLayers is returned when a board is built with fewer than one layer.
	ErrInvalidLayers = errors.New("hex: layers out of range")

	// ErrIndexOutOfRange is returned for a K index or coordinate outside the board.
	ErrIndexOutOfRange = errors.New("hex: index out of range")

	// ErrInvalidAxes is returned when a coordinate names an unknown axis or the same axis twice.
	ErrInvalidAxes = errors.New("hex: invalid axis pair")
)

// Layout holds the derived constants of a board with a fixed number of layers.
// It is immutable and safe to share.
type Layout struct {
	layers        int // rings including the centre; the radius
	diameter      int // rows along any axis
	size          int // total cells
	missingCorner int // cells one corner would need to square off the top half
}

// New creates the layout of a board with the given number of layers.
// One layer is the single-cell board; zero or fewer layers is an error.
func New(layers int) (*Layout, error) {
	if layers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayers, layers)
	}
	return &Layout{
		layers:        layers,
		diameter:      2*layers - 1,
		size:          3*layers*(layers-1) + 1,
		missingCorner: layers * (layers - 1) / 2,
	}, nil
}

// MustNew is like New but panics on an invalid layer count.
func MustNew(layers int) *Layout {
	l, err := New(layers)
	if err != nil {
		panic(err)
	}
	return l
}

// Layers returns the radius of the board, centre included.
func (l *Layout) Layers() int { return l.layers }

// Diameter returns the number of rows along any axis.
func (l *Layout) Diameter() int { return l.diameter }

// Size returns the number of cells.
func (l *Layout) Size() int { return l.size }

// Center returns the K index of the centre cell.
func (l *Layout) Center() int { return l.size / 2 }

// RowBounds returns the inclusive range of values the column axis can take on
// the given row. Rows near the middle are full width and shrink by one cell per
// step toward either pole. For a row outside [0, diameter) min > max.
func (l *Layout) RowBounds(row int, rowAxis, colAxis Axis) (min, max int) {
	if row < 0 || row >= l.diameter {
		return 0, -1
	}
	if rowAxis == AxisI || colAxis == AxisI {
		if row < l.layers {
			min = 0
		} else {
			min = row - l.layers + 1
		}
		if row >= l.layers {
			max = l.diameter - 1
		} else {
			max = row + l.layers - 1
		}
		return min, max
	}

	if row < l.layers {
		min = l.layers - row - 1
	} else {
		min = 0
	}
	if row >= l.layers {
		max = l.diameter + l.layers - row - 2
	} else {
		max = l.diameter - 1
	}
	return min, max
}

// RowMin returns the lowest B value on the row fixed by c.A.
func (l *Layout) RowMin(c Coord) int {
	min, _ := l.RowBounds(c.A, c.AAxis, c.BAxis)
	return min
}

// RowMax returns the highest B value on the row fixed by c.A.
func (l *Layout) RowMax(c Coord) int {
	_, max := l.RowBounds(c.A, c.AAxis, c.BAxis)
	return max
}

// Third returns the value of the axis c does not mention.
// The three values satisfy j = i - h + layers - 1.
func (l *Layout) Third(c Coord) int {
	switch {
	case c.AAxis == AxisI:
		return c.A - c.B + l.layers - 1
	case c.BAxis == AxisI:
		return c.B - c.A + l.layers - 1
	default:
		return c.A + c.B - l.layers + 1
	}
}

// Contains reports whether c names a cell on the board.
func (l *Layout) Contains(c Coord) bool {
	if !validAxes(c) {
		return false
	}
	if c.A < 0 || c.A >= l.diameter {
		return false
	}
	min, max := l.RowBounds(c.A, c.AAxis, c.BAxis)
	return c.B >= min && c.B <= max
}

// Canonical re-expresses c on the H/I axis pair.
func (l *Layout) Canonical(c Coord) (Coord, error) {
	if !l.Contains(c) {
		if !validAxes(c) {
			return Coord{}, fmt.Errorf("%w: %v", ErrInvalidAxes, c)
		}
		return Coord{}, fmt.Errorf("%w: %v", ErrIndexOutOfRange, c)
	}
	return l.canonical(c), nil
}

// canonical assumes c is valid.
func (l *Layout) canonical(c Coord) Coord {
	switch {
	case c.AAxis == AxisJ:
		c.A = l.Third(c)
		c.AAxis = otherOf(c.BAxis)
	case c.BAxis == AxisJ:
		c.B = l.Third(c)
		c.BAxis = otherOf(c.AAxis)
	}
	if c.AAxis > c.BAxis {
		c = c.Swap()
	}
	return c
}

// Convert re-expresses c on the requested axis pair. The cell is unchanged.
func (l *Layout) Convert(c Coord, aAxis, bAxis Axis) (Coord, error) {
	target := Coord{AAxis: aAxis, BAxis: bAxis}
	if !validAxes(target) {
		return Coord{}, fmt.Errorf("%w: %s/%s", ErrInvalidAxes, aAxis, bAxis)
	}
	hi, err := l.Canonical(c)
	if err != nil {
		return Coord{}, err
	}
	values := [3]int{hi.A, hi.B, l.Third(hi)}
	target.A = values[aAxis]
	target.B = values[bAxis]
	return target, nil
}

// ToK converts a coordinate to its linear index.
func (l *Layout) ToK(c Coord) (int, error) {
	hi, err := l.Canonical(c)
	if err != nil {
		return 0, err
	}
	return l.hiToK(hi.A, hi.B), nil
}

// hiToK applies the closed-form index for a valid H/I pair. The bottom half is
// the top half rotated by 180 degrees, so it is mirrored onto the top half.
func (l *Layout) hiToK(h, i int) int {
	start, flip := 0, 1
	if h >= l.layers {
		start, flip = l.size-1, -1
		h = l.diameter - 1 - h
		i = l.diameter - 1 - i
	}
	return start + flip*((h+l.layers-1)*(h+l.layers)/2-l.missingCorner+i)
}

// FromK converts a linear index to its canonical H/I coordinate.
func (l *Layout) FromK(k int) (Coord, error) {
	if k < 0 || k >= l.size {
		return Coord{}, fmt.Errorf("%w: k=%d size=%d", ErrIndexOutOfRange, k, l.size)
	}
	return l.mirror(k, l.topRow), nil
}

// fromKScan is the O(diameter) reference for FromK.
func (l *Layout) fromKScan(k int) Coord {
	return l.mirror(k, func(k int) int {
		h := 0
		for h+1 < l.layers && l.rowStart(h+1) <= k {
			h++
		}
		return h
	})
}

// mirror resolves k in the top half (centre row included) with rowOf and
// maps indices past the centre through the 180 degree symmetry.
func (l *Layout) mirror(k int, rowOf func(int) int) Coord {
	flipped := k > l.size/2
	if flipped {
		k = l.size - 1 - k
	}
	h := rowOf(k)
	i := k - l.rowStart(h)
	if flipped {
		h = l.diameter - 1 - h
		i = l.diameter - 1 - i
	}
	return HI(h, i)
}

// rowStart returns the K index of the first cell of top-half row h.
func (l *Layout) rowStart(h int) int {
	return (h+l.layers-1)*(h+l.layers)/2 - l.missingCorner
}

// topRow finds the top-half row holding k with integer arithmetic only.
// rowStart(h) = T(h+layers-1) - T(layers-1) with T the triangular numbers, so
// the row is the largest n with T(n) <= k + T(layers-1), shifted by layers-1.
func (l *Layout) topRow(k int) int {
	m := k + l.missingCorner
	n := (isqrt(8*m+1) - 1) / 2
	return n - (l.layers - 1)
}

// Position returns the centre of the cell in world units: one unit between
// neighbours on a row, rows sqrt(3)/2 apart, y growing downward.
func (l *Layout) Position(c Coord) (x, y float64, err error) {
	hi, err := l.Canonical(c)
	if err != nil {
		return 0, 0, err
	}
	x = float64(hi.B) + 0.5*float64(l.layers-hi.A-1)
	y = float64(hi.A) * math.Sqrt(3) / 2
	return x, y, nil
}

// Distance returns the Chebyshev distance between two cells on a's axis pair,
// divided by the diameter. It is in [0, 1) for cells on the same row.
func (l *Layout) Distance(a, b Coord) float64 {
	if !a.SameAxes(b) {
		conv, err := l.Convert(b, a.AAxis, a.BAxis)
		if err != nil {
			return 0
		}
		b = conv
	}
	d := abs(a.A - b.A)
	if db := abs(a.B - b.B); db > d {
		d = db
	}
	return float64(d) / float64(l.diameter)
}

func validAxes(c Coord) bool {
	return c.AAxis.Valid() && c.BAxis.Valid() && c.AAxis != c.BAxis
}

// otherOf returns the member of {H, I} that is not a.
func otherOf(a Axis) Axis {
	if a == AxisH {
		return AxisI
	}
	return AxisH
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
