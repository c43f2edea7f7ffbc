package strtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIdempotent(t *testing.T) {
	st := New()

	a := st.Intern("work")
	b := st.Intern("work")
	require.Equal(t, a, b)

	c := st.Intern("idle")
	assert.NotEqual(t, a, c)

	strs := st.Strings()
	require.Len(t, strs, 2)
	assert.Equal(t, "work", strs[a])
	assert.Equal(t, "idle", strs[c])
}

func TestInternEmptyString(t *testing.T) {
	st := New()
	idx := st.Intern("")
	assert.Equal(t, "", st.Strings()[idx])
}

func TestStringsEmptyTableIsNotNil(t *testing.T) {
	st := New()
	assert.NotNil(t, st.Strings())
	assert.Len(t, st.Strings(), 0)
}
