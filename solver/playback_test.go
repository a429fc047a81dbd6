package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-megaman/levelsolver/course"
	"github.com/go-megaman/levelsolver/move"
	"github.com/go-megaman/levelsolver/solver"
)

func TestPlayback(t *testing.T) {
	c := course.MustParse("x2.x")
	res := solver.New(c).Run()
	moves, err := res.Moves()
	require.NoError(t, err)

	frames := solver.Playback(c, moves)
	require.Len(t, frames, 3)

	tests := []struct {
		from, to int
		move     move.Move
		open     []bool
		drawn    string
	}{
		{0, 0, move.W, []bool{true, false, false, true}, "@_ #"},
		{0, 1, move.R1, []bool{true, true, false, true}, "#@ #"},
		{1, 3, move.R2, []bool{true, false, false, true}, "#_ @"},
	}

	for i, test := range tests {
		f := frames[i]
		assert.Equal(t, i, f.Tick)
		assert.Equal(t, test.from, f.From, "frame %d", i)
		assert.Equal(t, test.to, f.To, "frame %d", i)
		assert.Equal(t, test.move, f.Move, "frame %d", i)
		assert.Equal(t, test.open, f.Open, "frame %d", i)
		assert.Equal(t, test.drawn, f.String(), "frame %d", i)
		assert.Equal(t, i == len(tests)-1, f.Final, "frame %d", i)
	}
}

func TestPlayback_Empty(t *testing.T) {
	assert.Empty(t, solver.Playback(course.MustParse("xx"), nil))
}
