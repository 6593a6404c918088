package caro

// history is the placement queue of one side: oldest placement first.
type history struct {
	cells []Cell
}

func newHistory(capacity int) *history {
	return &history{cells: make([]Cell, 0, capacity)}
}

func (that *history) len() int {
	return len(that.cells)
}

func (that *history) front() (Cell, bool) {
	if len(that.cells) == 0 {
		return Cell{}, false
	}
	return that.cells[0], true
}

func (that *history) pushBack(cell Cell) {
	that.cells = append(that.cells, cell)
}

func (that *history) popFront() Cell {
	cell := that.cells[0]
	copy(that.cells, that.cells[1:])
	that.cells = that.cells[:len(that.cells)-1]
	return cell
}

// pushFront restores a cell taken by popFront.
func (that *history) pushFront(cell Cell) {
	that.cells = append(that.cells, Cell{})
	copy(that.cells[1:], that.cells)
	that.cells[0] = cell
}

func (that *history) popBack() Cell {
	cell := that.cells[len(that.cells)-1]
	that.cells = that.cells[:len(that.cells)-1]
	return cell
}

func (that *history) snapshot() []Cell {
	out := make([]Cell, len(that.cells))
	copy(out, that.cells)
	return out
}
