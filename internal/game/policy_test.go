package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMove(t *testing.T) {
	cases := []struct {
		name    string
		pos     int
		dice    int
		pathLen int
		want    int
		blocked bool
	}{
		{name: "leaves home", pos: Home, dice: 4, pathLen: 30, want: 3},
		{name: "plain advance", pos: 3, dice: 6, pathLen: 30, want: 9},
		{name: "lands one short of the end", pos: 25, dice: 4, pathLen: 30, want: 29},
		{name: "blocked when overshooting", pos: 27, dice: 5, pathLen: 30, blocked: true},
		{name: "blocked on exact landing", pos: 26, dice: 4, pathLen: 30, blocked: true},
		{name: "blocked from last cell", pos: 29, dice: 1, pathLen: 30, blocked: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeMove(tc.pos, tc.dice, tc.pathLen)
			if tc.blocked {
				require.ErrorIs(t, err, ErrMoveBlocked)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanRoll(t *testing.T) {
	assert.True(t, CanRoll(true, true))
	assert.False(t, CanRoll(false, true), "not my turn")
	assert.False(t, CanRoll(true, false), "no color assigned yet")
	assert.False(t, CanRoll(false, false))
}

func TestRollValue_StaysInRange(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := RollValue()
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 6, "every face should come up over 1000 rolls")
}

func TestColorPaths_AllColorsShareOnePath(t *testing.T) {
	require.Len(t, ColorPaths, 4)
	for _, c := range Colors {
		assert.Equal(t, ColorPaths[Red], ColorPaths[c])
		assert.Equal(t, 30, PathLen(c))
	}
}
