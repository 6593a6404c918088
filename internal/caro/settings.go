package caro

import (
	"fmt"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
)

const (
	DefaultBoardSize    = 3
	DefaultMaxPieces    = 3
	DefaultMinimaxDepth = 9

	minBoardSize = 3

	// MaxSearchSpace bounds cells^depth, the unpruned size of one bot search.
	// The default 3x3 board at depth 9 sits exactly on it.
	MaxSearchSpace = 387_420_489
)

// FirstMover decides which side opens a match against the computer.
type FirstMover string

const (
	FirstMoverX      FirstMover = "x"
	FirstMoverO      FirstMover = "o"
	FirstMoverRandom FirstMover = "random"
)

// Settings are fixed for the lifetime of a match.
type Settings struct {
	BoardSize      int
	MaxPieces      int
	MinimaxDepth   int
	MistakeEnabled bool
	MistakeChance  int
	FirstMover     FirstMover
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:    DefaultBoardSize,
		MaxPieces:    DefaultMaxPieces,
		MinimaxDepth: DefaultMinimaxDepth,
		FirstMover:   FirstMoverX,
	}
}

func (that Settings) Validate() error {
	if that.BoardSize < minBoardSize {
		return fmt.Errorf("%w: board size %d is less than %d", apperror.ErrInvalidSettings, that.BoardSize, minBoardSize)
	}

	if that.MaxPieces < 1 {
		return fmt.Errorf("%w: max pieces must be positive, got %d", apperror.ErrInvalidSettings, that.MaxPieces)
	}

	if that.MinimaxDepth < 0 {
		return fmt.Errorf("%w: minimax depth must not be negative, got %d", apperror.ErrInvalidSettings, that.MinimaxDepth)
	}

	if !that.searchFits() {
		return fmt.Errorf("%w: a %dx%d board at minimax depth %d exceeds the search space of %d",
			apperror.ErrInvalidSettings, that.BoardSize, that.BoardSize, that.MinimaxDepth, MaxSearchSpace)
	}

	if that.MistakeChance < 0 || that.MistakeChance > 100 {
		return fmt.Errorf("%w: mistake chance %d is out of [0, 100]", apperror.ErrInvalidSettings, that.MistakeChance)
	}

	switch that.FirstMover {
	case FirstMoverX, FirstMoverO, FirstMoverRandom:
	default:
		return fmt.Errorf("%w: unknown first mover %q", apperror.ErrInvalidSettings, that.FirstMover)
	}

	return nil
}

// searchFits - cells^depth <= MaxSearchSpace, stopping before the product overflows.
func (that Settings) searchFits() bool {
	cells := that.BoardSize * that.BoardSize
	space := 1

	for i := 0; i < that.MinimaxDepth; i++ {
		if space > MaxSearchSpace/cells {
			return false
		}
		space *= cells
	}

	return true
}
