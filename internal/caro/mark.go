package caro

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the mark of the other side. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Side tags the player to move inside the search: the computer (O) maximizes, X minimizes.
type Side uint8

const (
	Maximizer Side = iota
	Minimizer
)

func (that Side) Mark() Mark {
	if that == Maximizer {
		return O
	}
	return X
}

func (that Side) Other() Side {
	if that == Maximizer {
		return Minimizer
	}
	return Maximizer
}

func (that Side) String() string {
	if that == Maximizer {
		return "maximizer"
	}
	return "minimizer"
}

// Cell is a board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
