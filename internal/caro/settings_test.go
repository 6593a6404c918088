package caro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
)

func TestSettings_Validate(t *testing.T) {
	t.Run("Defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultSettings().Validate())
	})

	tests := []struct {
		name   string
		mutate func(settings *Settings)
	}{
		{name: "board too small", mutate: func(s *Settings) { s.BoardSize = 2 }},
		{name: "no pieces", mutate: func(s *Settings) { s.MaxPieces = 0 }},
		{name: "negative depth", mutate: func(s *Settings) { s.MinimaxDepth = -1 }},
		{name: "search too large", mutate: func(s *Settings) { s.BoardSize = 4 }},
		{name: "huge depth", mutate: func(s *Settings) { s.MinimaxDepth = 1000 }},
		{name: "negative chance", mutate: func(s *Settings) { s.MistakeChance = -5 }},
		{name: "chance above 100", mutate: func(s *Settings) { s.MistakeChance = 101 }},
		{name: "unknown first mover", mutate: func(s *Settings) { s.FirstMover = "bot" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: settings with one bad field
			settings := DefaultSettings()
			tt.mutate(&settings)

			// When: they are validated
			err := settings.Validate()

			// Then: ErrInvalidSettings is returned
			assert.ErrorIs(t, err, apperror.ErrInvalidSettings)
		})
	}

	t.Run("Bounds are inclusive", func(t *testing.T) {
		settings := DefaultSettings()
		settings.MaxPieces = 1
		settings.MinimaxDepth = 0
		settings.MistakeChance = 100
		settings.FirstMover = FirstMoverRandom

		assert.NoError(t, settings.Validate())
	})

	t.Run("Search space is capped", func(t *testing.T) {
		// Given: boards larger than the default
		tests := []struct {
			size, depth int
			valid       bool
		}{
			{size: 3, depth: 9, valid: true},
			{size: 3, depth: 10, valid: false},
			{size: 4, depth: 7, valid: true},
			{size: 4, depth: 8, valid: false},
			{size: 4, depth: 9, valid: false},
			{size: 10, depth: 4, valid: true},
			{size: 10, depth: 5, valid: false},
			{size: 100, depth: 0, valid: true},
		}

		for _, tt := range tests {
			settings := DefaultSettings()
			settings.BoardSize = tt.size
			settings.MinimaxDepth = tt.depth

			// When: they are validated
			err := settings.Validate()

			// Then: only searches within MaxSearchSpace pass
			if tt.valid {
				assert.NoError(t, err, "%dx%d at depth %d", tt.size, tt.size, tt.depth)
			} else {
				assert.ErrorIs(t, err, apperror.ErrInvalidSettings, "%dx%d at depth %d", tt.size, tt.size, tt.depth)
			}
		}
	})
}

func TestHistory(t *testing.T) {
	// Given: a history with three placements
	h := newHistory(3)
	h.pushBack(Cell{Row: 0, Col: 0})
	h.pushBack(Cell{Row: 0, Col: 1})
	h.pushBack(Cell{Row: 0, Col: 2})

	// When: the oldest is popped and pushed back to the front
	oldest := h.popFront()
	assert.Equal(t, Cell{Row: 0, Col: 0}, oldest)
	assert.Equal(t, 2, h.len())
	h.pushFront(oldest)

	// Then: the order is restored
	assert.Equal(t, []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, h.snapshot())

	newest := h.popBack()
	assert.Equal(t, Cell{Row: 0, Col: 2}, newest)

	front, ok := h.front()
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 0, Col: 0}, front)

	_, ok = newHistory(1).front()
	assert.False(t, ok)
}
