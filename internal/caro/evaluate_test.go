package caro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		size int
		rows []string
		want int
	}{
		{name: "empty board", size: 3, rows: []string{"...", "...", "..."}, want: 0},
		{name: "O in the center", size: 3, rows: []string{"...", ".O.", "..."}, want: 4},
		{name: "X in the center", size: 3, rows: []string{"...", ".X.", "..."}, want: -4},
		{name: "X corner against O center", size: 3, rows: []string{"X..", ".O.", "..."}, want: 1},
		{name: "mixed lines", size: 3, rows: []string{"OO.", "...", "X.."}, want: 2},
		{name: "O edge on 4x4", size: 4, rows: []string{".O..", "....", "....", "...."}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a position
			game := newPosition(t, settingsWith(tt.size, tt.size*tt.size, 0), X, tt.rows...)

			// When: it is evaluated
			score := Evaluate(game)

			// Then: the heuristic matches
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestEvaluate_Symmetric(t *testing.T) {
	// Given: a position and its color-swapped copy
	game := newPosition(t, settingsWith(3, 3, 0), X, "XO.", ".X.", "O..")
	swapped := newPosition(t, settingsWith(3, 3, 0), X, "OX.", ".O.", "X..")

	// Then: the scores are negated
	assert.Equal(t, -Evaluate(game), Evaluate(swapped))
}
