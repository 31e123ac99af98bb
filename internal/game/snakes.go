package game

import "fmt"

// BoardSize is the final cell of the snake-and-ladder board; reaching it
// wins the game.
const BoardSize = 100

var Ladders = map[int]int{
	4:  14,
	9:  31,
	20: 38,
	28: 84,
	40: 59,
	51: 67,
	63: 81,
	71: 91,
}

var Snakes = map[int]int{
	17: 7,
	54: 34,
	62: 19,
	64: 60,
	87: 24,
	93: 73,
	95: 75,
	99: 78,
}

type Outcome int

const (
	OutcomePlain Outcome = iota
	OutcomeClimbed
	OutcomeSlid
)

type AdvanceResult struct {
	Pos     int
	Outcome Outcome
	Won     bool
}

// Advance applies a dice roll on the snake-and-ladder board: step
// forward, resolve a ladder or snake on the landing cell, then clamp at
// the final cell, which wins. The ladder/snake lookup happens before the
// win check, so a ladder can carry a token past the goal.
func Advance(pos, steps int) AdvanceResult {
	next := pos + steps
	res := AdvanceResult{Outcome: OutcomePlain}

	if to, ok := Ladders[next]; ok {
		next = to
		res.Outcome = OutcomeClimbed
	} else if to, ok := Snakes[next]; ok {
		next = to
		res.Outcome = OutcomeSlid
	}

	if next >= BoardSize {
		next = BoardSize
		res.Won = true
	}
	res.Pos = next
	return res
}

// Message renders the outcome the way the game screen shows it. player
// is 1-based.
func (r AdvanceResult) Message(player int) string {
	switch {
	case r.Won:
		return fmt.Sprintf("Player %d wins!", player)
	case r.Outcome == OutcomeClimbed:
		return fmt.Sprintf("Player %d climbed a ladder to %d!", player, r.Pos)
	case r.Outcome == OutcomeSlid:
		return fmt.Sprintf("Oh no! Player %d slid down a snake to %d!", player, r.Pos)
	default:
		return ""
	}
}
