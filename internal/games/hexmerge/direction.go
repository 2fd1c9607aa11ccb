package hexmerge

import (
	"fmt"

	"github.com/vovakirdan/hexthree/internal/hex"
)

// Direction is one of the six ways pieces can slide.
type Direction int

const (
	UpRight Direction = iota
	Right
	DownRight
	DownLeft
	Left
	UpLeft
)

// Directions lists every direction in declaration order.
var Directions = []Direction{UpRight, Right, DownRight, DownLeft, Left, UpLeft}

// slide describes how a direction walks the board: every row of RowAxis is
// scanned along ColAxis starting at the end the pieces travel toward.
// Step is the scan step; the destination edge is RowMin when Step is +1.
type slide struct {
	RowAxis hex.Axis
	ColAxis hex.Axis
	Step    int
}

var slides = map[Direction]slide{
	UpRight:   {RowAxis: hex.AxisI, ColAxis: hex.AxisJ, Step: -1},
	Right:     {RowAxis: hex.AxisH, ColAxis: hex.AxisI, Step: -1},
	DownRight: {RowAxis: hex.AxisJ, ColAxis: hex.AxisI, Step: -1},
	DownLeft:  {RowAxis: hex.AxisI, ColAxis: hex.AxisJ, Step: 1},
	Left:      {RowAxis: hex.AxisH, ColAxis: hex.AxisI, Step: 1},
	UpLeft:    {RowAxis: hex.AxisJ, ColAxis: hex.AxisI, Step: 1},
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	_, ok := slides[d]
	return ok
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	case DownRight:
		return "DownRight"
	case DownLeft:
		return "DownLeft"
	case Left:
		return "Left"
	case UpLeft:
		return "UpLeft"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps a direction name (as printed by String) back to its value.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
