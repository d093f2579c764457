package figure

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"kektris/pkg/engine/world"
)

// PosSet is a set of board positions
type PosSet = mapset.Set[world.Pos]

// Zones holds the precomputed coordinate sets for one board size
type Zones struct {
	size int

	// arrival bands indexed by the edge they sit beyond
	arrive [world.Down + 1]PosSet

	// freeze zones indexed by the side of the centre divide they belong to
	freeze [world.Down + 1]PosSet
}

var (
	zonesMu    sync.Mutex
	zonesCache = make(map[int]*Zones)
)

// ZonesFor returns the zones for a board of the given side length.
// Results are cached per size.
func ZonesFor(size int) *Zones {
	zonesMu.Lock()
	defer zonesMu.Unlock()

	if z, ok := zonesCache[size]; ok {
		return z
	}
	z := buildZones(size)
	zonesCache[size] = z
	return z
}

func buildZones(size int) *Zones {
	z := &Zones{size: size}
	for _, d := range world.AllDirections() {
		z.arrive[d] = mapset.New[world.Pos]()
		z.freeze[d] = mapset.New[world.Pos]()
	}

	// Window origins one full window beyond each edge, with the window
	// spanning the board on the other axis.
	for i := 0; i <= size-WindowSize; i++ {
		z.arrive[world.Left].Put(world.Pos{X: -WindowSize, Y: i})
		z.arrive[world.Right].Put(world.Pos{X: size, Y: i})
		z.arrive[world.Up].Put(world.Pos{X: i, Y: -WindowSize})
		z.arrive[world.Down].Put(world.Pos{X: i, Y: size})
	}

	half := size / 2
	for i := 0; i < size; i++ {
		z.freeze[world.Left].Put(world.Pos{X: half - 1, Y: i})
		z.freeze[world.Right].Put(world.Pos{X: half, Y: i})
		z.freeze[world.Up].Put(world.Pos{X: i, Y: half - 1})
		z.freeze[world.Down].Put(world.Pos{X: i, Y: half})
	}
	return z
}

// Size returns the board side length the zones were built for
func (z *Zones) Size() int {
	return z.size
}

// ArrivalBand returns the band beyond the given edge.
// Up is the band above the top edge, Down the one below the bottom edge.
func (z *Zones) ArrivalBand(edge world.Direction) PosSet {
	return z.arrive[edge]
}

// FreezeZone returns the centre line on the given side of the divide
func (z *Zones) FreezeZone(side world.Direction) PosSet {
	return z.freeze[side]
}

// TravelFrom derives the travel direction of a figure spawned at origin.
// A figure arriving beyond the left edge travels Right, and so on.
func (z *Zones) TravelFrom(origin world.Pos) (world.Direction, bool) {
	for _, edge := range world.AllDirections() {
		if z.arrive[edge].Has(origin) {
			return edge.Opposite(), true
		}
	}
	return world.None, false
}

// InFreezeZone reports whether p lies on the freeze line a figure
// travelling in dir must reach before it settles.
func (z *Zones) InFreezeZone(dir world.Direction, p world.Pos) bool {
	if !dir.IsValid() {
		return false
	}
	return z.freeze[dir.Opposite()].Has(p)
}

// Origins returns every legal spawn origin beyond the given edge, ordered
func (z *Zones) Origins(edge world.Direction) []world.Pos {
	var origins []world.Pos
	for i := 0; i <= z.size-WindowSize; i++ {
		switch edge {
		case world.Left:
			origins = append(origins, world.Pos{X: -WindowSize, Y: i})
		case world.Right:
			origins = append(origins, world.Pos{X: z.size, Y: i})
		case world.Up:
			origins = append(origins, world.Pos{X: i, Y: -WindowSize})
		case world.Down:
			origins = append(origins, world.Pos{X: i, Y: z.size})
		}
	}
	return origins
}
