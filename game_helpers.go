package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/render"
	"github.com/sheikhrachel/torus-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*render.Animation,
	*model.TextRenderer,
	*utils.Stats,
	error,
) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err = grid.MakeAlive(config.Alive); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed live cells")
	}

	animation := render.NewAnimation(config.CellSize, config.FrameDelay)
	animation.Workers = config.Workers

	var printer *model.TextRenderer
	if config.Print {
		printer = &model.TextRenderer{Out: os.Stdout}
	}

	return grid, animation, printer, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Frames: %d\n",
		grid.Width(), grid.Height(), grid.CountLivingCells(), config.Frames)
	fmt.Printf("Output: %s\n", config.Output)
	fmt.Println("Press Ctrl+C to stop early and keep the frames recorded so far")
	fmt.Println()
}

// updateGameState records the current frame and returns status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string) {
	livingCells := grid.CountLivingCells()
	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	status := "Active"
	if history.IsStagnant(grid) {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	history.Update(grid)

	return livingCells, status
}

// displayFinalStats shows the summary after the run
func displayFinalStats(stats *utils.Stats, frames int) {
	fmt.Printf("Recorded %d frames in %.1f seconds\n",
		frames, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average population: %.1f | Peak population: %d\n",
		stats.AveragePopulation, stats.PeakPopulation)
}
