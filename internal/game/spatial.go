package game

type OccupantKind int

const (
	OccupantSnake OccupantKind = iota
	OccupantFood
	OccupantPowerUp
	OccupantObstacle
)

// Occupant identifies one entity at a cell. Index is the snake segment,
// power-up, or obstacle slot in the store; always 0 for food.
type Occupant struct {
	Kind  OccupantKind
	Index int
}

// SpatialIndex maps cells to their occupants. It is cleared and fully
// repopulated from the store after every mutation; nothing maintains it
// incrementally, so a stale entry is a bug rather than a performance detail.
type SpatialIndex struct {
	cells map[Position][]Occupant
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{cells: make(map[Position][]Occupant)}
}

func (si *SpatialIndex) Rebuild(st *Store) {
	clear(si.cells)
	for i, seg := range st.snake.Segments {
		si.cells[seg] = append(si.cells[seg], Occupant{Kind: OccupantSnake, Index: i})
	}
	if st.food != nil {
		p := st.food.Pos
		si.cells[p] = append(si.cells[p], Occupant{Kind: OccupantFood})
	}
	for i := range st.powerUps {
		p := st.powerUps[i].Pos
		si.cells[p] = append(si.cells[p], Occupant{Kind: OccupantPowerUp, Index: i})
	}
	for i := range st.obstacles {
		p := st.obstacles[i].Pos
		si.cells[p] = append(si.cells[p], Occupant{Kind: OccupantObstacle, Index: i})
	}
}

// At returns the occupants of a single cell. The returned slice aliases the
// index and is only valid until the next Rebuild.
func (si *SpatialIndex) At(p Position) []Occupant {
	return si.cells[p]
}

func (si *SpatialIndex) Occupied(p Position) bool {
	return len(si.cells[p]) > 0
}

// QueryBox scans the Chebyshev box of the given radius around center and
// returns every occupied cell inside it, center included.
func (si *SpatialIndex) QueryBox(center Position, radius int) []Position {
	var out []Position
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := Position{X: center.X + dx, Y: center.Y + dy}
			if len(si.cells[p]) > 0 {
				out = append(out, p)
			}
		}
	}
	return out
}
