package hex

import "fmt"

// Axis names one of the three skew axes of the board.
//
//	H - | rows counted top to bottom
//	I - \ rows counted from top left to bottom right
//	J - / rows counted from bottom left to top right
type Axis int

const (
	AxisH Axis = iota
	AxisI
	AxisJ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisH:
		return "H"
	case AxisI:
		return "I"
	case AxisJ:
		return "J"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of H, I or J.
func (a Axis) Valid() bool {
	return a >= AxisH && a <= AxisJ
}

// Coord addresses a cell by its values on two of the three axes.
// A is measured along AAxis and B along BAxis.
type Coord struct {
	A, B         int
	AAxis, BAxis Axis
}

// HI builds a coordinate on the canonical H/I axis pair.
func HI(h, i int) Coord {
	return Coord{A: h, B: i, AAxis: AxisH, BAxis: AxisI}
}

// On builds a coordinate on an arbitrary axis pair.
func On(aAxis Axis, a int, bAxis Axis, b int) Coord {
	return Coord{A: a, B: b, AAxis: aAxis, BAxis: bAxis}
}

// SameAxes reports whether both coordinates use the same axis pair in the same order.
func (c Coord) SameAxes(o Coord) bool {
	return c.AAxis == o.AAxis && c.BAxis == o.BAxis
}

// Swap returns the same cell with the axis order reversed.
func (c Coord) Swap() Coord {
	return Coord{A: c.B, B: c.A, AAxis: c.BAxis, BAxis: c.AAxis}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%s: %d, %s: %d)", c.AAxis, c.A, c.BAxis, c.B)
}

// hasI reports whether the coordinate uses the I axis.
func (c Coord) hasI() bool {
	return c.AAxis == AxisI || c.BAxis == AxisI
}
