package caro

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrGameStarted = errors.New("game has already started")

// Game is the state of one match. It is not safe for concurrent use:
// callers serialize access per match.
type Game struct {
	settings Settings
	lines    [][]Cell

	board     [][]Mark
	histories [3]*history
	players   [3]string
	isPvP     bool

	turn     Mark
	finished bool
	winner   Mark
	moves    int
}

// NewGame - creates an empty match with X to move.
func NewGame(settings Settings, playerX, playerO string, isPvP bool) *Game {
	board := make([][]Mark, settings.BoardSize)
	for row := range board {
		board[row] = make([]Mark, settings.BoardSize)
	}

	game := &Game{
		settings: settings,
		lines:    winLines(settings.BoardSize),
		board:    board,
		isPvP:    isPvP,
		turn:     X,
	}

	game.histories[X] = newHistory(settings.MaxPieces)
	game.histories[O] = newHistory(settings.MaxPieces)
	game.players[X] = playerX
	game.players[O] = playerO

	return game
}

// SetTurn - overrides the side to move. Only allowed before the first placement.
func (that *Game) SetTurn(mark Mark) error {
	if that.moves > 0 || that.finished {
		return ErrGameStarted
	}

	if mark != X && mark != O {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSettings, mark)
	}

	that.turn = mark

	return nil
}

// MakeTurn - places the mark of the side to move at (row, col), recycling its oldest
// mark when the side already holds MaxPieces marks. The state is untouched on error.
func (that *Game) MakeTurn(row, col int) error {
	if that.finished {
		return apperror.ErrGameFinished
	}

	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if that.board[row][col] != Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	mark := that.turn
	that.put(mark, Cell{Row: row, Col: col})
	that.moves++

	if that.CheckWin(mark) {
		that.finished = true
		that.winner = mark
		return nil
	}

	that.turn = mark.Opponent()

	return nil
}

// Place - boolean form of MakeTurn.
func (that *Game) Place(row, col int) bool {
	return that.MakeTurn(row, col) == nil
}

// CheckWin - reports whether a full row, column or main diagonal holds only mark.
func (that *Game) CheckWin(mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range that.lines {
		if that.lineOwnedBy(line, mark) {
			return true
		}
	}

	return false
}

func (that *Game) lineOwnedBy(line []Cell, mark Mark) bool {
	for _, cell := range line {
		if that.board[cell.Row][cell.Col] != mark {
			return false
		}
	}
	return true
}

// Stop - finishes the match without a winner. Used by the session layer on timeouts.
func (that *Game) Stop() {
	that.finished = true
}

func (that *Game) CurrentPlayer() string {
	return that.players[that.turn]
}

// Player - returns the identity bound to mark.
func (that *Game) Player(mark Mark) string {
	if mark != X && mark != O {
		return ""
	}
	return that.players[mark]
}

// MarkOf - returns the mark bound to the identity, or Empty.
func (that *Game) MarkOf(player string) Mark {
	switch player {
	case that.players[X]:
		return X
	case that.players[O]:
		return O
	default:
		return Empty
	}
}

func (that *Game) Board() [][]Mark {
	out := make([][]Mark, len(that.board))
	for row := range that.board {
		out[row] = make([]Mark, len(that.board[row]))
		copy(out[row], that.board[row])
	}
	return out
}

func (that *Game) At(row, col int) Mark {
	if !that.inBounds(row, col) {
		return Empty
	}
	return that.board[row][col]
}

// History - returns the placements of mark still on the board, oldest first.
func (that *Game) History(mark Mark) []Cell {
	if mark != X && mark != O {
		return nil
	}
	return that.histories[mark].snapshot()
}

// PendingRemoval - returns the cell the side to move will lose on its next placement.
func (that *Game) PendingRemoval() (Cell, bool) {
	if that.finished {
		return Cell{}, false
	}

	h := that.histories[that.turn]
	if h.len() < that.settings.MaxPieces {
		return Cell{}, false
	}

	return h.front()
}

// EmptyCells - lists the free cells in row-major order.
func (that *Game) EmptyCells() []Cell {
	cells := make([]Cell, 0, len(that.board)*len(that.board))
	for row := range that.board {
		for col := range that.board[row] {
			if that.board[row][col] == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

func (that *Game) Turn() Mark {
	return that.turn
}

func (that *Game) IsFinished() bool {
	return that.finished
}

// Winner - returns the winning mark, if any.
func (that *Game) Winner() (Mark, bool) {
	return that.winner, that.winner != Empty
}

func (that *Game) Status() string {
	switch {
	case that.finished:
		return StatusFinished
	case that.moves == 0:
		return StatusWaiting
	default:
		return StatusOngoing
	}
}

func (that *Game) IsPvP() bool {
	return that.isPvP
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) Size() int {
	return that.settings.BoardSize
}

func (that *Game) Settings() Settings {
	return that.settings
}

func (that *Game) inBounds(row, col int) bool {
	return row >= 0 && row < len(that.board) && col >= 0 && col < len(that.board)
}

// put - writes mark at cell, first clearing the oldest mark of the same side when
// it is at capacity. Returns the recycled cell, if any.
func (that *Game) put(mark Mark, cell Cell) (Cell, bool) {
	h := that.histories[mark]

	var (
		recycled Cell
		ok       bool
	)

	if h.len() >= that.settings.MaxPieces {
		recycled = h.popFront()
		that.board[recycled.Row][recycled.Col] = Empty
		ok = true
	}

	that.board[cell.Row][cell.Col] = mark
	h.pushBack(cell)

	return recycled, ok
}

// simulate - applies put and returns the function restoring the previous board and history.
func (that *Game) simulate(mark Mark, cell Cell) func() {
	recycled, ok := that.put(mark, cell)

	return func() {
		h := that.histories[mark]
		h.popBack()
		that.board[cell.Row][cell.Col] = Empty

		if ok {
			that.board[recycled.Row][recycled.Col] = mark
			h.pushFront(recycled)
		}
	}
}

// winLines - all full rows, columns and the two main diagonals of a size x size board.
func winLines(size int) [][]Cell {
	lines := make([][]Cell, 0, 2*size+2)

	for i := 0; i < size; i++ {
		row := make([]Cell, size)
		col := make([]Cell, size)
		for j := 0; j < size; j++ {
			row[j] = Cell{Row: i, Col: j}
			col[j] = Cell{Row: j, Col: i}
		}
		lines = append(lines, row, col)
	}

	diagonal := make([]Cell, size)
	antiDiagonal := make([]Cell, size)
	for i := 0; i < size; i++ {
		diagonal[i] = Cell{Row: i, Col: i}
		antiDiagonal[i] = Cell{Row: i, Col: size - 1 - i}
	}

	return append(lines, diagonal, antiDiagonal)
}
