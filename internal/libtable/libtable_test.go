package libtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternEmptyName(t *testing.T) {
	tbl := New()
	assert.Equal(t, int32(-1), tbl.Intern("", 0x1000, 16))
	assert.Len(t, tbl.Libraries(), 0)
}

func TestInternFirstSight(t *testing.T) {
	tbl := New()
	idx := tbl.Intern("libfoo.so", 0x1000, 0x100)
	require.Equal(t, int32(0), idx)

	libs := tbl.Libraries()
	require.Len(t, libs, 1)
	assert.Equal(t, "libfoo.so", libs[0].Name)
	assert.Equal(t, uint64(0x1000), libs[0].Start)
	assert.Equal(t, uint64(0x1100), libs[0].End)
}

func TestInternWidensRange(t *testing.T) {
	tbl := New()
	tbl.Intern("libfoo.so", 0x2000, 0x100)
	tbl.Intern("libfoo.so", 0x1000, 0x50) // widens start down, end stays 0x2100
	tbl.Intern("libfoo.so", 0x2500, 0x200) // widens end up

	libs := tbl.Libraries()
	require.Len(t, libs, 1)
	assert.Equal(t, uint64(0x1000), libs[0].Start)
	assert.Equal(t, uint64(0x2700), libs[0].End)
}

func TestInternDedupesByName(t *testing.T) {
	tbl := New()
	a := tbl.Intern("libfoo.so", 0x1000, 0x10)
	b := tbl.Intern("libfoo.so", 0x3000, 0x10)
	c := tbl.Intern("libbar.so", 0x4000, 0x10)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, tbl.Libraries(), 2)
}

func TestInternZeroAddrDoesNotTouchRange(t *testing.T) {
	tbl := New()
	tbl.Intern("libfoo.so", 0x1000, 0x10)
	idx := tbl.Intern("libfoo.so", 0, 0)
	libs := tbl.Libraries()
	assert.Equal(t, int32(0), idx)
	assert.Equal(t, uint64(0x1000), libs[0].Start)
	assert.Equal(t, uint64(0x1010), libs[0].End)
}
