package lineclear

import (
	"github.com/zyedidia/generic/mapset"

	"kektris/pkg/engine/world"
)

// InRegion reports whether a cell in the given quadrant lies on the arrival
// side of the centre divide for figures travelling in dir. Collapse never
// moves a cell out of this region.
func InRegion(place world.Place, dir world.Direction) bool {
	switch dir {
	case world.Right:
		return place.IsLeft()
	case world.Left:
		return !place.IsLeft()
	case world.Down:
		return place.IsTop()
	case world.Up:
		return !place.IsTop()
	default:
		return false
	}
}

// Collapse pulls settled cells one step at a time in dir into the vacated
// positions ahead of them. A cell that moves leaves its old position vacated,
// so runs behind a cleared line follow it in, and a cell keeps advancing
// while the position ahead of it is vacated. Settled cells that no cleared
// position reaches stay where they are. It returns the number of
// single-step moves made.
func Collapse(grid *world.Grid, dir world.Direction, vacated []world.Pos) int {
	if !dir.IsValid() || len(vacated) == 0 {
		return 0
	}

	open := mapset.New[world.Pos]()
	work := make([]world.Pos, 0, len(vacated))
	for _, p := range vacated {
		open.Put(p)
		work = append(work, p)
	}

	moved := 0
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		if !open.Has(p) {
			continue
		}
		dest := grid.CellAt(p)
		if dest == nil || !dest.IsClear() || !InRegion(dest.Place(), dir) {
			continue
		}
		src := grid.CellAt(p.Step(dir.Opposite()))
		if src == nil || !src.IsFrozen() {
			continue
		}

		dest.Freeze()
		src.Clear()
		moved++

		open.Remove(p)
		open.Put(src.Pos())
		work = append(work, src.Pos(), p.Step(dir))
	}
	return moved
}
