package eval

import (
	"context"
	"math/rand"

	"github.com/dylanagreen/chrysaora/pkg/board"
)

// Random adds a small amount of noise to break ties between otherwise
// identically-scored positions. limit bounds the noise to [-limit, limit].
// The zero value always returns zero.
type Random struct {
	rand  *rand.Rand
	limit float64
}

func NewRandom(limit float64, seed int64) Random {
	return Random{
		rand:  rand.New(rand.NewSource(seed)),
		limit: limit,
	}
}

func (n Random) Evaluate(ctx context.Context, pos *board.Position) Score {
	if n.limit <= 0 || n.rand == nil {
		return 0
	}
	return Score((n.rand.Float64()*2 - 1) * n.limit)
}
