package hex

import "fmt"

// Grid is fixed-size storage with one slot per cell of a Layout.
// It holds no game rules; a slot is empty when it holds the zero value of T.
type Grid[T comparable] struct {
	layout *Layout
	cells  []T
}

// NewGrid allocates an empty grid for the layout.
func NewGrid[T comparable](layout *Layout) *Grid[T] {
	return &Grid[T]{
		layout: layout,
		cells:  make([]T, layout.Size()),
	}
}

// Layout returns the addressing scheme of the grid.
func (g *Grid[T]) Layout() *Layout { return g.layout }

// Size returns the number of slots.
func (g *Grid[T]) Size() int { return len(g.cells) }

// At returns the value stored at linear index k.
func (g *Grid[T]) At(k int) (T, error) {
	var zero T
	if k < 0 || k >= len(g.cells) {
		return zero, fmt.Errorf("%w: k=%d size=%d", ErrIndexOutOfRange, k, len(g.cells))
	}
	return g.cells[k], nil
}

// Set stores v at linear index k.
func (g *Grid[T]) Set(k int, v T) error {
	if k < 0 || k >= len(g.cells) {
		return fmt.Errorf("%w: k=%d size=%d", ErrIndexOutOfRange, k, len(g.cells))
	}
	g.cells[k] = v
	return nil
}

// Clear empties the slot at linear index k.
func (g *Grid[T]) Clear(k int) error {
	var zero T
	return g.Set(k, zero)
}

// AtCoord returns the value stored at c.
func (g *Grid[T]) AtCoord(c Coord) (T, error) {
	k, err := g.layout.ToK(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[k], nil
}

// SetCoord stores v at c.
func (g *Grid[T]) SetCoord(c Coord, v T) error {
	k, err := g.layout.ToK(c)
	if err != nil {
		return err
	}
	g.cells[k] = v
	return nil
}

// Occupied counts the non-empty slots.
func (g *Grid[T]) Occupied() int {
	var zero T
	n := 0
	for _, v := range g.cells {
		if v != zero {
			n++
		}
	}
	return n
}

// Empty returns the linear indices of all empty slots in ascending order.
func (g *Grid[T]) Empty() []int {
	var zero T
	var empty []int
	for k, v := range g.cells {
		if v == zero {
			empty = append(empty, k)
		}
	}
	return empty
}

// Full reports whether every slot is occupied.
func (g *Grid[T]) Full() bool {
	return g.Occupied() == len(g.cells)
}

// Each calls fn for every slot in K order.
func (g *Grid[T]) Each(fn func(k int, v T)) {
	for k, v := range g.cells {
		fn(k, v)
	}
}

// Clone returns a shallow copy of the grid sharing the layout.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{
		layout: g.layout,
		cells:  make([]T, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}
