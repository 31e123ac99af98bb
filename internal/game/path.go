package game

type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
)

// Colors in palette order, matching the relay's join-order assignment.
var Colors = []Color{Red, Blue, Green, Yellow}

const (
	TokensPerColor = 4
	GridSize       = 15

	// Home marks a token that has not entered the track yet.
	Home = -1
)

// trackPath is the linear track a token advances through, home to goal.
var trackPath = []int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 30, 45, 60, 75, 90,
	91, 92, 93, 94, 95, 96, 97, 98, 99, 100,
}

// ColorPaths keys each color to its path. All four currently share the
// one sequence; distinct per-color paths slot in here without touching
// the callers.
var ColorPaths = map[Color][]int{
	Red:    trackPath,
	Blue:   trackPath,
	Green:  trackPath,
	Yellow: trackPath,
}

func PathLen(c Color) int { return len(ColorPaths[c]) }
