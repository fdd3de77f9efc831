package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPadsLastRow(t *testing.T) {
	rows := group([]string{"a", "b", "c", "d", "e"}, 3)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"d", "e", ""}, rows[1])
}

func TestGroupExactMultiple(t *testing.T) {
	rows := group([]int{1, 2, 3, 4, 5, 6}, 3)

	require.Len(t, rows, 2)
	assert.Equal(t, []int{1, 2, 3}, rows[0])
	assert.Equal(t, []int{4, 5, 6}, rows[1])
}

func TestGroupSingleElement(t *testing.T) {
	rows := group([]string{"only"}, 3)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"only", "", ""}, rows[0])
}

func TestGroupEmpty(t *testing.T) {
	assert.Nil(t, group([]string{}, 3))
	assert.Nil(t, group[string](nil, 3))
}
