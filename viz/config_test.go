package viz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeviz/maze"
	"github.com/katalvlaran/mazeviz/viz"
)

func TestDefaultConfig(t *testing.T) {
	cfg := viz.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Maze Solving", cfg.Title)
	assert.Equal(t, 2*time.Second, cfg.DefaultInterval)
	assert.Len(t, cfg.Intervals, 5)

	g, err := maze.New(cfg.MazeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, maze.Location{Row: 9, Column: 9}, g.Goal())
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*viz.Config){
		"NoIntervals":      func(c *viz.Config) { c.Intervals = nil },
		"NegativeInterval": func(c *viz.Config) { c.Intervals = append(c.Intervals, -time.Second) },
		"DefaultMissing":   func(c *viz.Config) { c.DefaultInterval = 7 * time.Second },
		"CellSize":         func(c *viz.Config) { c.CellSize = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := viz.DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), viz.ErrConfig)
		})
	}
}
