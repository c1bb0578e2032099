package board

import "errors"

// ErrIllegalMove is returned by Game.Push when the move does not appear in
// the current position's legal move list.
var ErrIllegalMove = errors.New("illegal move")
