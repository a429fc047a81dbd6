package course_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-megaman/levelsolver/course"
)

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		spec string
	}{
		{""},
		{"x"},
		{"y0x"},
		{"x0"},
		{"0x"},
		{"x6x"},
		{"x0 x"},
		{"X0X"},
		{"x-x"},
	}

	for _, test := range tests {
		c, err := course.Parse(test.spec)
		assert.Nil(t, c, "spec %q", test.spec)
		assert.ErrorIs(t, err, course.ErrInvalidSpec, "spec %q", test.spec)

		var specErr *course.InvalidSpecError
		if assert.True(t, errors.As(err, &specErr), "spec %q", test.spec) {
			assert.Equal(t, test.spec, specErr.Spec)
			assert.NotEmpty(t, specErr.Reason)
		}
		assert.False(t, course.IsValidSpec(test.spec))
	}
}

func TestParse_Decodes(t *testing.T) {
	tests := []struct {
		spec string
		want []course.Obstacle
	}{
		{"xx", []course.Obstacle{0, 0}},
		{"x0x", []course.Obstacle{0, 0, 0}},
		{"x.x", []course.Obstacle{0, -1, 0}},
		{"x12345x", []course.Obstacle{0, 1, 2, 3, 4, 5, 0}},
		{"x1.x3x", []course.Obstacle{0, 1, -1, 0, 3, 0}},
	}

	for _, test := range tests {
		c, err := course.Parse(test.spec)
		require.NoError(t, err, "spec %q", test.spec)
		assert.Equal(t, test.want, c.Obstacles())
		assert.Equal(t, len(test.spec), c.Len())
		assert.Equal(t, len(test.spec)-1, c.Goal())
		assert.Equal(t, test.spec, c.Spec())
		assert.Equal(t, course.Checkpoint, c.At(0))
		assert.Equal(t, course.Checkpoint, c.At(c.Goal()))

		for i, o := range c.Obstacles() {
			want := rune(test.spec[i])
			if want == '0' { // '0' decodes to a checkpoint
				want = 'x'
			}
			assert.Equal(t, want, o.Rune())
		}
	}
}

func TestCourse_ObstaclesIsCopy(t *testing.T) {
	c := course.MustParse("x1x")
	obs := c.Obstacles()
	obs[1] = course.Gap
	assert.Equal(t, course.Obstacle(1), c.At(1))
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { course.MustParse("y") })
}

func TestCanTraverse_Checkpoint(t *testing.T) {
	for tick := 0; tick <= course.TickWrapsAt; tick++ {
		assert.True(t, course.Checkpoint.CanTraverse(tick), "tick %d", tick)
	}
}

func TestCanTraverse_Gap(t *testing.T) {
	for tick := 0; tick <= course.TickWrapsAt; tick++ {
		assert.False(t, course.Gap.CanTraverse(tick), "tick %d", tick)
	}
}

func TestCanTraverse_Periodic(t *testing.T) {
	for n := course.Obstacle(1); n <= course.MaxPeriod; n++ {
		open := 0
		for tick := 0; tick < course.TickWrapsAt; tick++ {
			want := (tick+1)%(int(n)+1) == 0
			assert.Equal(t, want, n.CanTraverse(tick), "n %d tick %d", n, tick)
			if n.CanTraverse(tick) {
				open++
			}
		}
		assert.Equal(t, course.TickWrapsAt/(int(n)+1), open, "n %d", n)
	}
}

func TestCourse_CanTraverse(t *testing.T) {
	c := course.MustParse("x2.x")

	assert.False(t, c.CanTraverse(-1, 0))
	assert.False(t, c.CanTraverse(4, 0))
	assert.True(t, c.CanTraverse(0, 17))
	assert.False(t, c.CanTraverse(1, 1))
	assert.True(t, c.CanTraverse(1, 2))
	assert.False(t, c.CanTraverse(2, 2))
	assert.True(t, c.CanTraverse(3, 59))
}

func TestNextTick(t *testing.T) {
	assert.Equal(t, 1, course.NextTick(0))
	assert.Equal(t, 59, course.NextTick(58))
	assert.Equal(t, 0, course.NextTick(59))
}
