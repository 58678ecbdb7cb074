package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAssignsStableIndices(t *testing.T) {
	reg := NewRegistry()
	a := reg.Register("main.dt")
	b := reg.Register("lib.dt")

	assert.Equal(t, uint32(0), a)
	assert.Equal(t, uint32(1), b)
	assert.Equal(t, "main.dt", reg.Path(a))
	assert.Equal(t, "lib.dt", reg.Path(b))
}

func TestRegistry_PathUnknownIndex(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, "?", reg.Path(7))
}

func TestError_SyntaxFormatsNearLine(t *testing.T) {
	reg := NewRegistry()
	idx := reg.Register("main.dt")
	err := New(reg, Syntax, Pos{Line: 3, Col: 9, FileIndex: idx}, ";")

	assert.Equal(t, "SyntaxException at main.dt:3:9\nNear: ;", err.Error())
}

func TestError_UnclosedGroupHasNoDetailLine(t *testing.T) {
	reg := NewRegistry()
	idx := reg.Register("main.dt")
	err := New(reg, UnclosedGroup, Pos{Line: 1, Col: 1, FileIndex: idx}, "(")

	assert.Equal(t, "UnclosedGroupException at main.dt:1:1", err.Error())
}
