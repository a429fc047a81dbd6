package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-megaman/levelsolver/internal/packed"
)

func TestTable(t *testing.T) {
	tbl := New[string](packed.NumStates(2))
	assert.Equal(t, 120, tbl.Cap())

	k := packed.Pack(1, 7)
	assert.Equal(t, Unvisited, tbl.Status(k))

	_, ok := tbl.Load(k)
	assert.False(t, ok)

	assert.True(t, tbl.Begin(k))
	assert.False(t, tbl.Begin(k), "re-entry")
	assert.Equal(t, InProgress, tbl.Status(k))
	assert.Equal(t, 0, tbl.Size())

	tbl.Finish(k, "R1")
	v, ok := tbl.Load(k)
	assert.True(t, ok)
	assert.Equal(t, "R1", v)
	assert.Equal(t, Done, tbl.Status(k))
	assert.Equal(t, 1, tbl.Size())
	assert.False(t, tbl.Begin(k))

	assert.Panics(t, func() { tbl.Finish(k, "W") })
	assert.Panics(t, func() { tbl.Finish(packed.Pack(0, 0), "W") })
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "unvisited", Unvisited.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
