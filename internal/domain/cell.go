package domain

import "fmt"

// Type of a single map cell.
type CellType int

const (
	CellWall CellType = iota
	CellRoad
	CellClient
	CellRestaurant
	CellAgentCar
	CellAgentBike
)

var cellSymbols = map[CellType]rune{
	CellWall:       '#',
	CellRoad:       '.',
	CellClient:     'C',
	CellRestaurant: 'R',
	CellAgentCar:   'A',
	CellAgentBike:  'B',
}

var cellNames = map[CellType]string{
	CellWall:       "wall",
	CellRoad:       "road",
	CellClient:     "client",
	CellRestaurant: "restaurant",
	CellAgentCar:   "agent_car",
	CellAgentBike:  "agent_bike",
}

// ParseCellType maps a layout symbol to its CellType.
func ParseCellType(symbol rune) (CellType, error) {
	for t, s := range cellSymbols {
		if s == symbol {
			return t, nil
		}
	}
	return 0, fmt.Errorf("parse cell type: unknown symbol %q: %w", symbol, ErrMalformedLayout)
}

// Symbol returns the single-character layout form of t.
func (t CellType) Symbol() rune { return cellSymbols[t] }

func (t CellType) String() string {
	if n, ok := cellNames[t]; ok {
		return n
	}
	return fmt.Sprintf("CellType(%d)", int(t))
}

func (t CellType) IsAgent() bool { return t == CellAgentCar || t == CellAgentBike }

// TransportClass reports the agent class for agent cells.
func (t CellType) TransportClass() (TransportClass, bool) {
	switch t {
	case CellAgentCar:
		return TransportCar, true
	case CellAgentBike:
		return TransportBike, true
	default:
		return "", false
	}
}

// One grid position and what occupies it.
type Cell struct {
	Location Location
	Type     CellType
}
