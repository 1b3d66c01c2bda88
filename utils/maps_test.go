package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssel/utils"
)

func TestShallowCopy(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2}

	got := utils.ShallowCopy(src)
	require.Equal(t, src, got)

	got["a"] = 99
	assert.Equal(t, 1, src["a"], "copy must not alias the source")

	assert.Nil(t, utils.ShallowCopy[string, int](nil))
}

func TestMergeWithSum(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]int
		want map[string]int
	}{
		{
			name: "overlapping keys are summed",
			a:    map[string]int{"a": 1, "b": 2},
			b:    map[string]int{"b": 3, "c": 4},
			want: map[string]int{"a": 1, "b": 5, "c": 4},
		},
		{
			name: "disjoint keys",
			a:    map[string]int{"x": 1},
			b:    map[string]int{"y": 2},
			want: map[string]int{"x": 1, "y": 2},
		},
		{
			name: "nil operands",
			a:    nil,
			b:    map[string]int{"z": 7},
			want: map[string]int{"z": 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.MergeWithSum(tt.a, tt.b))
		})
	}
}

func TestRemoveKeys(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2, "c": 3}

	got := utils.RemoveKeys(src, "b", "missing")
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, got)
	assert.Len(t, src, 3, "source must stay intact")
}

func TestEqualMaps(t *testing.T) {
	assert.True(t, utils.EqualMaps(map[string]int{"a": 1}, map[string]int{"a": 1}))
	assert.False(t, utils.EqualMaps(map[string]int{"a": 1}, map[string]int{"a": 2}))
	assert.False(t, utils.EqualMaps(map[string]int{"a": 1}, map[string]int{"b": 1}))
	assert.True(t, utils.EqualMaps[string, int](nil, map[string]int{}))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, utils.IsEmpty[string, int](nil))
	assert.True(t, utils.IsEmpty(map[string]int{}))
	assert.False(t, utils.IsEmpty(map[string]int{"a": 0}))
}

func TestFrozen(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2}
	view := utils.Frozen(src)

	// snapshot semantics: later mutation of the source is invisible
	src["a"] = 99
	src["c"] = 3

	v, ok := view.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = view.Get("c")
	assert.False(t, ok)

	assert.Equal(t, 2, view.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, view.Keys())
}
