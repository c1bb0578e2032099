package eval_test

import (
	"context"
	"testing"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestRandomZeroValueIsDeterministic(t *testing.T) {
	var r eval.Random
	assert.Equal(t, eval.Score(0), r.Evaluate(context.Background(), board.NewInitialPosition()))
}

func TestRandomStaysWithinLimit(t *testing.T) {
	r := eval.NewRandom(0.1, 42)
	pos := board.NewInitialPosition()
	for i := 0; i < 100; i++ {
		score := r.Evaluate(context.Background(), pos)
		assert.True(t, score >= -0.1 && score <= 0.1)
	}
}
