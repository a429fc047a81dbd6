package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-megaman/levelsolver/course"
	"github.com/go-megaman/levelsolver/solver"
)

func TestSolveAll(t *testing.T) {
	specs := []string{"xx", "x..x", "bogus", "x1.x", "x2.x", "x.x..x", ""}

	for _, workers := range []int{0, 1, 3, 16} {
		outcomes, sum := solver.SolveAll(context.Background(), specs, solver.WithWorkers(workers))
		require.Len(t, outcomes, len(specs))

		for i, out := range outcomes {
			assert.Equal(t, specs[i], out.Spec)
			assert.True(t, (out.Result == nil) != (out.Err == nil), "spec %q", out.Spec)
		}

		assert.Equal(t, "R1", outcomes[0].Result.Tokens())
		assert.Equal(t, 1, outcomes[1].Result.Progress())
		assert.ErrorIs(t, outcomes[2].Err, course.ErrInvalidSpec)
		assert.Equal(t, "R1R2", outcomes[3].Result.Tokens())
		assert.Equal(t, "WR1R2", outcomes[4].Result.Tokens())
		assert.Equal(t, 3, outcomes[5].Result.Progress())
		assert.ErrorIs(t, outcomes[6].Err, course.ErrInvalidSpec)

		assert.Equal(t, solver.Summary{Solved: 3, Unreachable: 2, Invalid: 2}, sum)
		assert.Equal(t, len(specs), sum.Total())
	}
}

func TestSolveAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	specs := []string{"xx", "x1.x", "x..x"}
	outcomes, sum := solver.SolveAll(ctx, specs, solver.WithWorkers(2))
	for _, out := range outcomes {
		assert.Nil(t, out.Result)
		assert.ErrorIs(t, out.Err, context.Canceled)
	}
	assert.Equal(t, solver.Summary{Canceled: 3}, sum)
}

func TestSolveAll_Empty(t *testing.T) {
	outcomes, sum := solver.SolveAll(context.Background(), nil)
	assert.Empty(t, outcomes)
	assert.Zero(t, sum.Total())
}
