package engine_test

import (
	"context"
	"testing"

	"github.com/dylanagreen/chrysaora/pkg/board/fen"
	"github.com/dylanagreen/chrysaora/pkg/engine"
	"github.com/dylanagreen/chrysaora/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineDefaults(t *testing.T) {
	e := engine.New(context.Background(), "chrysaora", "dylanagreen")
	assert.Equal(t, "dylanagreen", e.Author())
	assert.Equal(t, engine.DefaultMaxDepth, e.Options().MaxDepth)
	assert.Equal(t, fen.Initial, e.Position())
}

func TestSetMaxDepthClamps(t *testing.T) {
	e := engine.New(context.Background(), "chrysaora", "dylanagreen")

	e.SetMaxDepth(engine.MaxMaxDepth + 10)
	assert.Equal(t, engine.MaxMaxDepth, e.Options().MaxDepth)

	e.SetMaxDepth(engine.MinMaxDepth - 10)
	assert.Equal(t, engine.MinMaxDepth, e.Options().MaxDepth)
}

func TestEngineMoveAndTakeBack(t *testing.T) {
	e := engine.New(context.Background(), "chrysaora", "dylanagreen")
	ctx := context.Background()

	require.NoError(t, e.Move(ctx, "e2e4"))
	assert.NotEqual(t, fen.Initial, e.Position())

	require.NoError(t, e.TakeBack(ctx))
	assert.Equal(t, fen.Initial, e.Position())
}

func TestEngineMoveRejectsIllegal(t *testing.T) {
	e := engine.New(context.Background(), "chrysaora", "dylanagreen")
	assert.Error(t, e.Move(context.Background(), "e2e5"))
}

func TestEngineResetToArbitraryFEN(t *testing.T) {
	e := engine.New(context.Background(), "chrysaora", "dylanagreen")
	black := "4k3/8/8/8/8/8/8/4K3 b - - 0 1"

	require.NoError(t, e.Reset(context.Background(), black))
	assert.Equal(t, black, e.Position())
	assert.Equal(t, "b", e.Game().SideToMove().String())
}

func TestEngineResetRejectsMalformedFEN(t *testing.T) {
	e := engine.New(context.Background(), "chrysaora", "dylanagreen")
	assert.Error(t, e.Reset(context.Background(), "not a fen"))
}

func TestBestMoveRunsSearch(t *testing.T) {
	e := engine.New(context.Background(), "chrysaora", "dylanagreen",
		engine.WithEvaluator(eval.Material{}),
		engine.WithOptions(engine.Options{MaxDepth: 1}))

	result, err := e.BestMove(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, result.Nodes)
}
