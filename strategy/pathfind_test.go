package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPathNoObstaclesIsManhattanOptimal(t *testing.T) {
	start := GridPos{X: 0, Y: 0}
	goal := GridPos{X: 5, Y: 5}

	result := FindPath(start, goal, NewBlockedSet(nil), 10, 10)

	require.True(t, result.Found)
	require.Equal(t, 10, result.TotalCost)
	require.Len(t, result.Path, 11)
	require.Equal(t, start, result.Path[0])
	require.Equal(t, goal, result.Path[len(result.Path)-1])
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	p := GridPos{X: 3, Y: 4}
	result := FindPath(p, p, NewBlockedSet(nil), 10, 10)

	require.True(t, result.Found)
	require.Equal(t, 0, result.TotalCost)
	require.Equal(t, []GridPos{p}, result.Path)
}

func TestFindPathBlockedGoalIsNotFound(t *testing.T) {
	goal := GridPos{X: 5, Y: 5}
	obstacles := NewBlockedSet([]GridPos{goal})

	result := FindPath(GridPos{X: 0, Y: 0}, goal, obstacles, 10, 10)

	require.False(t, result.Found)
	require.Equal(t, -1, result.TotalCost)
	require.Empty(t, result.Path)
}

func TestFindPathDetoursAroundAWall(t *testing.T) {
	start := GridPos{X: 0, Y: 5}
	goal := GridPos{X: 9, Y: 5}

	var wall []GridPos
	for y := 0; y < 9; y++ {
		wall = append(wall, GridPos{X: 5, Y: y})
	}
	obstacles := NewBlockedSet(wall)

	result := FindPath(start, goal, obstacles, 10, 10)

	require.True(t, result.Found)
	require.Greater(t, result.TotalCost, start.ManhattanDistance(goal))
	for _, p := range result.Path {
		require.False(t, obstacles.has(p))
	}
}

func TestFindPathUnreachableGoalBehindSealedWall(t *testing.T) {
	start := GridPos{X: 0, Y: 0}
	goal := GridPos{X: 9, Y: 0}

	var wall []GridPos
	for y := 0; y < 10; y++ {
		wall = append(wall, GridPos{X: 5, Y: y})
	}
	obstacles := NewBlockedSet(wall)

	result := FindPath(start, goal, obstacles, 10, 10)
	require.False(t, result.Found)
}

func TestFindPath8DirUsesDiagonalSteps(t *testing.T) {
	start := GridPos{X: 0, Y: 0}
	goal := GridPos{X: 5, Y: 5}

	result := FindPath8Dir(start, goal, NewBlockedSet(nil), 10, 10)

	require.True(t, result.Found)
	require.Equal(t, 70, result.TotalCost) // 5 diagonal steps * 14
	require.Len(t, result.Path, 6)
}

func TestFindPath8DirForbidsCuttingCorners(t *testing.T) {
	start := GridPos{X: 0, Y: 0}
	goal := GridPos{X: 4, Y: 4}
	// Blocks the diagonal step from (1,1) to (2,2); neither cell
	// itself is blocked, only the corner between them.
	obstacles := NewBlockedSet([]GridPos{{X: 2, Y: 1}, {X: 1, Y: 2}})

	result := FindPath8Dir(start, goal, obstacles, 10, 10)

	require.True(t, result.Found)
	for i := 0; i+1 < len(result.Path); i++ {
		a, b := result.Path[i], result.Path[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		if dx != 0 && dy != 0 {
			adj1 := GridPos{X: a.X + dx, Y: a.Y}
			adj2 := GridPos{X: a.X, Y: a.Y + dy}
			require.False(t, obstacles.has(adj1) && obstacles.has(adj2))
		}
	}
}

func TestFindSafePositionRespectsMinDistanceFromAllEnemies(t *testing.T) {
	current := GridPos{X: 0, Y: 0}
	enemies := []GridPos{{X: 1, Y: 0}, {X: 0, Y: 1}}

	pos, ok := FindSafePosition(current, enemies, NewBlockedSet(nil), 20, 20, 5)
	require.True(t, ok)
	for _, e := range enemies {
		require.GreaterOrEqual(t, pos.ManhattanDistance(e), 5)
	}
}

func TestFindSafePositionReturnsCurrentIfAlreadySafe(t *testing.T) {
	current := GridPos{X: 0, Y: 0}
	enemies := []GridPos{{X: 10, Y: 10}}

	pos, ok := FindSafePosition(current, enemies, NewBlockedSet(nil), 20, 20, 3)
	require.True(t, ok)
	require.Equal(t, current, pos)
}

func TestFindSafePositionNoneReachable(t *testing.T) {
	current := GridPos{X: 0, Y: 0}
	var blocked []GridPos
	blocked = append(blocked, GridPos{X: 1, Y: 0}, GridPos{X: 0, Y: 1})
	obstacles := NewBlockedSet(blocked)

	// current is boxed in by the two obstacles and the grid edge, and the
	// enemy standing on current makes it unsafe for minDistance 100, so
	// no safe cell is reachable.
	pos, ok := FindSafePosition(current, []GridPos{{X: 0, Y: 0}}, obstacles, 10, 10, 100)
	require.False(t, ok)
	require.Equal(t, GridPos{}, pos)
}

func TestManhattanDistance(t *testing.T) {
	a := GridPos{X: 0, Y: 0}
	b := GridPos{X: 3, Y: 4}
	require.Equal(t, 7, a.ManhattanDistance(b))
}

func TestCalculateKitePositionReturnsSelfWhenAlreadyAtRange(t *testing.T) {
	self := GridPos{X: 0, Y: 5}
	target := GridPos{X: 0, Y: 0}

	pos, ok := CalculateKitePosition(self, target, 5, NewBlockedSet(nil), 20, 20)
	require.True(t, ok)
	require.Equal(t, self, pos)
}

func TestCalculateKitePositionMovesCloserToDesiredRange(t *testing.T) {
	self := GridPos{X: 0, Y: 0}
	target := GridPos{X: 0, Y: 10}

	pos, ok := CalculateKitePosition(self, target, 5, NewBlockedSet(nil), 20, 20)
	require.True(t, ok)
	before := self.ManhattanDistance(target)
	after := pos.ManhattanDistance(target)
	require.Less(t, absInt(after-5), absInt(before-5))
}
