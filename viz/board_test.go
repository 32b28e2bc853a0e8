package viz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeviz/maze"
	"github.com/katalvlaran/mazeviz/search"
	"github.com/katalvlaran/mazeviz/viz"
)

func TestBoard_AnimatesCorridor(t *testing.T) {
	g, err := maze.FromRows([]string{"S..G"})
	require.NoError(t, err)
	b := viz.NewBoard(g)
	assert.Equal(t, "S  G\n", b.String())

	s, err := search.New(g, search.BFS)
	require.NoError(t, err)

	var frames []string
	for step := range s.Steps() {
		b.Apply(step)
		frames = append(frames, b.String())
	}
	assert.Equal(t, []string{
		"SF G\n", // start stays Start while current
		"SCFG\n",
		"SECG\n",
		"S**G\n",
	}, frames)
	assert.Equal(t, search.Found, b.Status())
	assert.Len(t, b.Path(), 4)
	assert.Equal(t, []string{"(0, 1)", "(0, 2)", "(0, 3)"}, b.ExploredLabels())
	assert.Empty(t, b.FrontierLabels())
}

func TestBoard_NoPathKeepsExploration(t *testing.T) {
	g, err := maze.FromRows([]string{
		"S.X",
		"XXG",
	})
	require.NoError(t, err)
	b := viz.NewBoard(g)
	s, err := search.New(g, search.DFS)
	require.NoError(t, err)
	for step := range s.Steps() {
		b.Apply(step)
	}
	assert.Equal(t, search.NoPath, b.Status())
	assert.Nil(t, b.Path())
	assert.Equal(t, maze.Current, b.At(maze.Location{Row: 0, Column: 1}))
	assert.Equal(t, maze.Blocked, b.At(maze.Location{Row: 0, Column: 2}))
}

func TestBoard_Reset(t *testing.T) {
	g, err := maze.FromRows([]string{"S.G"})
	require.NoError(t, err)
	b := viz.NewBoard(g)
	res, err := search.New(g, search.DFS)
	require.NoError(t, err)
	step, ok := res.Next()
	require.True(t, ok)
	b.Apply(step)
	assert.NotEqual(t, "S G\n", b.String())

	b.Reset()
	assert.Equal(t, "S G\n", b.String())
	assert.Empty(t, b.FrontierLabels())
	assert.Equal(t, search.InProgress, b.Status())
}

func TestPalette(t *testing.T) {
	p := viz.DefaultPalette()
	for _, c := range []maze.Cell{
		maze.Empty, maze.Blocked, maze.Start, maze.Goal,
		maze.Explored, maze.Current, maze.Frontier, maze.Path,
	} {
		_, ok := p[c]
		assert.True(t, ok, "no color for %q", c)
	}
	assert.Equal(t, p[maze.Empty], p.Color(maze.Cell('?')))
}
