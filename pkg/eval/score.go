// Package eval contains position evaluation logic: the Score contract, the
// pluggable Evaluator interface, and a handful of concrete evaluators.
package eval

import (
	"fmt"

	"github.com/dylanagreen/chrysaora/pkg/board"
)

// Score is a position score. An Evaluator returns it from White's point of
// view; search converts it to the side to move's point of view. A plain
// (non-mate) Evaluator must return a value in [-1, 1]; values outside that
// range are reserved for checkmate so that any forced mate always outranks
// any non-mate evaluation, however lopsided.
type Score float32

const (
	// LossScore and WinScore bound the ordinary evaluator range. A mate
	// score is always strictly outside [-1, 1].
	LossScore Score = -1
	WinScore  Score = 1

	// mateBase is added on top of WinScore/LossScore for a discovered
	// mate, with a depth bonus/penalty so that shallower mates sort ahead
	// of deeper ones on both sides, while staying clear of the [-1, 1]
	// evaluator range.
	mateBase Score = 2

	// Inf and NegInf bound alpha-beta search windows; they sit strictly
	// outside any mate score, however deep.
	Inf    Score = 1000
	NegInf Score = -1000
)

func (s Score) String() string {
	return fmt.Sprintf("%.4f", s)
}

// Mate returns the score for a checkmate discovered pliesToMate plies from
// the current node, from the mated side's opponent's point of view
// (i.e. a positive, winning score). Shallower mates score higher.
func Mate(pliesToMate int) Score {
	return WinScore + mateBase - Score(pliesToMate)/1000
}

// IsMateScore reports whether s was produced by Mate or -Mate, as opposed
// to an ordinary evaluator output.
func IsMateScore(s Score) bool {
	return s > WinScore || s < LossScore
}

// IncrementMateDistance adjusts a mate score by one ply as it is propagated
// up the search tree, so a mate found deeper in the tree always scores
// strictly worse (for the side delivering it) than the same mate found one
// ply shallower. Non-mate scores pass through unchanged.
func IncrementMateDistance(s Score) Score {
	switch {
	case s > WinScore:
		return s - 1.0/1000
	case s < LossScore:
		return s + 1.0/1000
	default:
		return s
	}
}

// Unit returns the signed unit for a color: 1 for White, -1 for Black. Used
// to turn an absolute (White-relative) score into a side-to-move-relative
// one, and back.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// Clamp confines s to the ordinary evaluator range, leaving mate scores
// alone.
func Clamp(s Score) Score {
	if IsMateScore(s) {
		return s
	}
	switch {
	case s > WinScore:
		return WinScore
	case s < LossScore:
		return LossScore
	default:
		return s
	}
}

func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
