package hex

import (
	"errors"
	"testing"
)

func TestGridReadWrite(t *testing.T) {
	g := NewGrid[int](MustNew(5))

	for k := 0; k < g.Size(); k++ {
		if err := g.Set(k, k+1); err != nil {
			t.Fatalf("Set(%d) failed: %v", k, err)
		}
	}
	for k := 0; k < g.Size(); k++ {
		v, err := g.At(k)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", k, err)
		}
		if v != k+1 {
			t.Errorf("At(%d) = %d, want %d", k, v, k+1)
		}
	}
}

func TestGridCoordinatesFollowK(t *testing.T) {
	l := MustNew(4)
	g := NewGrid[int](l)
	for k := 0; k < g.Size(); k++ {
		g.Set(k, k+1)
	}

	for _, pair := range allPairs {
		for row := 0; row < l.Diameter(); row++ {
			min, max := l.RowBounds(row, pair[0], pair[1])
			for col := min; col <= max; col++ {
				c := On(pair[0], row, pair[1], col)
				v, err := g.AtCoord(c)
				if err != nil {
					t.Fatalf("AtCoord(%v) failed: %v", c, err)
				}
				k, _ := l.ToK(c)
				if v != k+1 {
					t.Errorf("AtCoord(%v) = %d, want %d", c, v, k+1)
				}
			}
		}
	}
}

func TestGridBoundsChecked(t *testing.T) {
	g := NewGrid[*int](MustNew(2))
	one := 1

	if err := g.Set(7, &one); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Set(7) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := g.At(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(-1) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := g.SetCoord(HI(0, 2), &one); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SetCoord(cut corner) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := g.AtCoord(HI(5, 5)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("AtCoord(outside) error = %v, want ErrIndexOutOfRange", err)
	}
	if g.Occupied() != 0 {
		t.Errorf("failed writes changed the grid: Occupied() = %d", g.Occupied())
	}
}

func TestGridOccupancy(t *testing.T) {
	g := NewGrid[*int](MustNew(2))
	one, two := 1, 2

	g.Set(0, &one)
	g.SetCoord(HI(2, 2), &two)

	if g.Occupied() != 2 {
		t.Errorf("Occupied() = %d, want 2", g.Occupied())
	}
	empty := g.Empty()
	if len(empty) != 5 {
		t.Fatalf("len(Empty()) = %d, want 5", len(empty))
	}
	for _, k := range empty {
		if k == 0 || k == 6 {
			t.Errorf("Empty() contains occupied cell %d", k)
		}
	}

	clone := g.Clone()
	g.Clear(0)
	if g.Occupied() != 1 {
		t.Errorf("Occupied() after Clear = %d, want 1", g.Occupied())
	}
	if clone.Occupied() != 2 {
		t.Errorf("clone shares storage with original: Occupied() = %d", clone.Occupied())
	}
	if g.Full() {
		t.Error("Full() = true for a partly filled grid")
	}
}
