package game

import (
	"errors"
	"math/rand"
)

var ErrMoveBlocked = errors.New("move blocked")

// CanRoll: only the player holding the turn may roll, and only once the
// relay has assigned them a color.
func CanRoll(isMyTurn, haveColor bool) bool {
	return isMyTurn && haveColor
}

// RollValue returns a uniform dice value in [1,6].
func RollValue() int {
	return rand.Intn(6) + 1
}

// ComputeMove returns the track index reached from currentPos with the
// rolled value. A move that would reach or pass the path length is
// blocked, never wrapped or clamped; landing exactly on the final index
// counts as an overshoot too.
func ComputeMove(currentPos, diceValue, pathLength int) (int, error) {
	if currentPos+diceValue >= pathLength {
		return 0, ErrMoveBlocked
	}
	return currentPos + diceValue, nil
}
