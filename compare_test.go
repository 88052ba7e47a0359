package gridpath_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
)

func TestCompare_MatchesSequentialRuns(t *testing.T) {
	base, _ := gridgraph.NewUniform(20, 30)
	src, dst := co{Row: 0, Col: 0}, co{Row: 19, Col: 29}
	g, err := maze.Generate(base, maze.WithSeed(5), maze.WithWeights(0.3), maze.WithKeep(src, dst))
	require.NoError(t, err)

	got, err := gridpath.Compare(context.Background(), g, src, dst)
	require.NoError(t, err)
	require.Len(t, got, len(gridpath.Algorithms()))

	for i, alg := range gridpath.Algorithms() {
		assert.Equal(t, alg, got[i].Algorithm)
		want := mustRun(t, alg, g, src, dst)
		if diff := cmp.Diff(want, got[i].Result); diff != "" {
			t.Errorf("%v concurrent result differs (-seq +conc):\n%s", alg, diff)
		}
	}
}

func TestCompare_Subset(t *testing.T) {
	g, _ := gridgraph.NewUniform(4, 4)
	got, err := gridpath.Compare(context.Background(), g, co{Row: 0, Col: 0}, co{Row: 3, Col: 3}, gridpath.AStar, gridpath.BFS)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, gridpath.AStar, got[0].Algorithm)
	assert.Equal(t, gridpath.BFS, got[1].Algorithm)
}

func TestCompare_Errors(t *testing.T) {
	g, _ := gridgraph.NewUniform(2, 2)
	_, err := gridpath.Compare(context.Background(), g, co{Row: 0, Col: 0}, co{Row: 5, Col: 5})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = gridpath.Compare(context.Background(), g, co{}, co{}, gridpath.Algorithm(42))
	assert.ErrorIs(t, err, gridpath.ErrUnknownAlgorithm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gridpath.Compare(ctx, g, co{}, co{Row: 1, Col: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
